package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	ConfigPath string
	DBPath     string
	LogLevel   string
	Yes        bool
}

// reportedError marks an error the session already showed to the user.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

func NewRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "jurnal",
		Short: "A personal forex trading journal",
		Long: `Jurnal records your trades, deposits and withdrawals, and derives your
balance, P/L, win rate and equity curve from them.

It provides tools for:
  - Logging trades with entry reasons and lessons learned
  - Tracking deposits and withdrawals
  - Dashboard statistics and a date-ordered equity curve
  - Keyword backtests over your entry notes
  - Exporting and importing the whole journal as JSON`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&o.ConfigPath, "config", "", "path to config file (optional)")
	cmd.PersistentFlags().StringVarP(&o.DBPath, "db", "d", "", "storage path (overrides config)")
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
	cmd.PersistentFlags().BoolVarP(&o.Yes, "yes", "y", false, "answer yes to confirmation prompts")

	cmd.AddCommand(
		newTradeCmd(o),
		newCashCmd(o),
		newStatsCmd(o),
		newCurveCmd(o),
		newBacktestCmd(o),
		newExportCmd(o),
		newImportCmd(o),
		newResetCmd(o),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

// Execute runs the root command. Errors the session already reported are
// not printed again.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		var re reportedError
		if !errors.As(err, &re) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	}
	return err
}
