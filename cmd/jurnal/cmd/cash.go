package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yayangurayan/jurnalforex/journal"
)

func newCashCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cash",
		Short: "Record, list and delete deposits and withdrawals",
		Long: `Manage deposits and withdrawals.

Subcommands:
  add     - Record a deposit or withdrawal
  list    - List all entries
  delete  - Delete an entry

Examples:
  jurnal cash add --type Deposit --amount 1000
  jurnal cash delete 1704067200000`,
	}

	cmd.AddCommand(
		newCashAddCmd(o),
		newCashListCmd(o),
		newCashDeleteCmd(o),
	)
	return cmd
}

func newCashAddCmd(o *rootOptions) *cobra.Command {
	var in journal.CashFlowInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a deposit or withdrawal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.open(cmd, views{})
			if err != nil {
				return err
			}
			defer a.Close()

			c, err := a.sess.AddCashFlow(in)
			if err != nil {
				return reported(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  id: %d\n", c.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.Date, "date", time.Now().Format(journal.DateLayout), "entry date (YYYY-MM-DD)")
	f.StringVarP(&in.Type, "type", "t", "Deposit", "Deposit or Withdrawal")
	f.StringVarP(&in.Amount, "amount", "a", "", "amount (required)")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func newCashListCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all deposits and withdrawals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.open(cmd, views{cashFlows: true})
			if err != nil {
				return err
			}
			defer a.Close()

			a.sess.Refresh()
			return nil
		},
	}
}

func newCashDeleteCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <entry-id>",
		Short: "Delete a deposit or withdrawal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryID, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := o.open(cmd, views{})
			if err != nil {
				return err
			}
			defer a.Close()

			a.sess.DeleteCashFlow(entryID)
			return a.resolve()
		},
	}
}
