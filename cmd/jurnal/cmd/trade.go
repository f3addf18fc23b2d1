package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/yayangurayan/jurnalforex/journal"
)

func newTradeCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Record, list, view and delete trades",
		Long: `Manage the trades in your journal.

Subcommands:
  add     - Record a completed trade
  list    - List all trades
  view    - Show one or more trades with their notes
  delete  - Delete a trade

Examples:
  jurnal trade add --symbol eurusd --type Buy --lot 1 --outcome Profit --amount 50
  jurnal trade view 1704153600000`,
	}

	cmd.AddCommand(
		newTradeAddCmd(o),
		newTradeListCmd(o),
		newTradeViewCmd(o),
		newTradeDeleteCmd(o),
	)
	return cmd
}

func newTradeAddCmd(o *rootOptions) *cobra.Command {
	var in journal.TradeInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a completed trade",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.open(cmd, views{})
			if err != nil {
				return err
			}
			defer a.Close()

			t, err := a.sess.AddTrade(in)
			if err != nil {
				return reported(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  id: %d\n", t.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.Date, "date", time.Now().Format(journal.DateLayout), "trade date (YYYY-MM-DD)")
	f.StringVarP(&in.Symbol, "symbol", "s", "", "instrument, e.g. eurusd (required)")
	f.StringVarP(&in.Type, "type", "t", "Buy", "Buy or Sell")
	f.StringVarP(&in.Lot, "lot", "l", "", "position size (required)")
	f.StringVarP(&in.Outcome, "outcome", "o", "Profit", "Profit or Loss")
	f.StringVarP(&in.Amount, "amount", "a", "", "P/L magnitude, non-negative (required)")
	f.StringVar(&in.NotesEntry, "entry", "", "reason for entering the trade")
	f.StringVar(&in.NotesMistakes, "mistakes", "", "mistakes or lessons learned")
	cmd.MarkFlagRequired("symbol")
	cmd.MarkFlagRequired("lot")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func newTradeListCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all trades",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.open(cmd, views{trades: true})
			if err != nil {
				return err
			}
			defer a.Close()

			a.sess.Refresh()
			return nil
		},
	}
}

func newTradeViewCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "view <trade-id>...",
		Short: "Show trades with their notes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tradeIDs := make([]int64, 0, len(args))
			for _, arg := range args {
				tradeID, err := parseID(arg)
				if err != nil {
					return err
				}
				tradeIDs = append(tradeIDs, tradeID)
			}
			a, err := o.open(cmd, views{})
			if err != nil {
				return err
			}
			defer a.Close()

			_, err = a.sess.ViewTrades(tradeIDs...)
			return reported(err)
		},
	}
}

func newTradeDeleteCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <trade-id>",
		Short: "Delete a trade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tradeID, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := o.open(cmd, views{})
			if err != nil {
				return err
			}
			defer a.Close()

			a.sess.DeleteTrade(tradeID)
			return a.resolve()
		},
	}
}

func parseID(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return v, nil
}
