package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(o *rootOptions) *cobra.Command {
	var (
		dir     string
		withCSV bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal to a dated JSON file",
		Long: `Write every trade and deposit/withdrawal, as last saved, to
jurnal-forex-data-YYYY-MM-DD.json. The file can be imported again.

Example:
  jurnal export --dir ~/backups --csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.open(cmd, views{})
			if err != nil {
				return err
			}
			defer a.Close()

			if dir != "" {
				a.term.exportDir = dir
			}
			if err := a.sess.Export(); err != nil {
				return reported(err)
			}
			if !withCSV {
				return nil
			}

			tradesPath, flowsPath, err := a.sess.ExportCSV(a.term.exportDir)
			if err != nil {
				return reported(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\nWrote %s\n", tradesPath, flowsPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "output directory (overrides config)")
	cmd.Flags().BoolVar(&withCSV, "csv", false, "also write trades and cash flows as CSV")
	return cmd
}

func newImportCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the journal with an exported JSON file",
		Long: `Validate an exported JSON file and, after confirmation, replace every
trade and deposit/withdrawal with its contents.

Example:
  jurnal import jurnal-forex-data-2024-01-31.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			a, err := o.open(cmd, views{})
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.sess.Import(f); err != nil {
				return reported(err)
			}
			return a.resolve()
		},
	}
}

func newResetCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Permanently delete all journal data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.open(cmd, views{})
			if err != nil {
				return err
			}
			defer a.Close()

			a.sess.DeleteAll()
			return a.resolve()
		},
	}
}
