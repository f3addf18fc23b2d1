package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func newStatsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show balance, P/L, win rate and trade count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.open(cmd, views{dashboard: true})
			if err != nil {
				return err
			}
			defer a.Close()

			a.sess.Refresh()
			return nil
		},
	}
}

func newCurveCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "curve",
		Short: "Show the equity curve in date order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.open(cmd, views{curve: true})
			if err != nil {
				return err
			}
			defer a.Close()

			a.sess.Refresh()
			return nil
		},
	}
}

func newBacktestCmd(o *rootOptions) *cobra.Command {
	var org bool

	cmd := &cobra.Command{
		Use:   "backtest <keyword>",
		Short: "Analyze trades whose entry reason mentions a keyword",
		Long: `Filter trades by a keyword in their entry notes (case-insensitive) and
report how that setup performed.

Example:
  jurnal backtest breakout
  jurnal backtest "double top" --org`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.open(cmd, views{org: org})
			if err != nil {
				return err
			}
			defer a.Close()

			_, err = a.sess.Backtest(strings.Join(args, " "))
			return reported(err)
		},
	}

	cmd.Flags().BoolVar(&org, "org", false, "render the report as an Org-mode section")
	return cmd
}
