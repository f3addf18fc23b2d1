package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/yayangurayan/jurnalforex/journal"
)

// views selects which projections a command prints when the session
// re-renders.
type views struct {
	trades    bool
	cashFlows bool
	dashboard bool
	curve     bool
	org       bool
}

// terminal is the journal presentation layer for the CLI.
type terminal struct {
	out, errOut io.Writer
	in          *bufio.Reader

	currency  string
	exportDir string
	assumeYes bool
	show      views
}

func newTerminal(out, errOut io.Writer, in io.Reader, currency, exportDir string) *terminal {
	return &terminal{
		out:       out,
		errOut:    errOut,
		in:        bufio.NewReader(in),
		currency:  currency,
		exportDir: exportDir,
	}
}

func (t *terminal) money(d decimal.Decimal) string {
	return journal.FormatCurrency(d, t.currency)
}

func (t *terminal) Notify(msg string, sev journal.Severity) {
	if sev == journal.SeverityError {
		fmt.Fprintf(t.errOut, "✗ %s\n", msg)
		return
	}
	fmt.Fprintf(t.out, "✓ %s\n", msg)
}

func (t *terminal) RequestConfirmation(title, body string) {
	if t.assumeYes {
		return
	}
	fmt.Fprintf(t.out, "%s\n%s [y/N]: ", title, body)
}

// answer reads the reply to the last confirmation request.
func (t *terminal) answer() bool {
	if t.assumeYes {
		return true
	}
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(t.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func (t *terminal) RenderTrades(trades []journal.Trade) {
	if !t.show.trades {
		return
	}
	if len(trades) == 0 {
		fmt.Fprintln(t.out, "No trades yet.")
		return
	}
	tw := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tSYMBOL\tTYPE\tLOT\tP/L")
	for _, tr := range trades {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			tr.ID, tr.Date, strings.ToUpper(tr.Symbol), tr.Type,
			strconv.FormatFloat(tr.Lot, 'f', -1, 64),
			t.money(decimal.NewFromFloat(tr.PnL)))
	}
	tw.Flush()
}

func (t *terminal) RenderCashFlows(flows []journal.CashFlow) {
	if !t.show.cashFlows {
		return
	}
	if len(flows) == 0 {
		fmt.Fprintln(t.out, "No entries yet.")
		return
	}
	tw := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tTYPE\tAMOUNT")
	for _, c := range flows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.ID, c.Date, c.Type, t.money(decimal.NewFromFloat(c.Amount)))
	}
	tw.Flush()
}

func (t *terminal) RenderDashboard(balance, pnl decimal.Decimal, winRate float64, count int) {
	if !t.show.dashboard {
		return
	}
	fmt.Fprintf(t.out, "Total Balance:  %s\n", t.money(balance))
	fmt.Fprintf(t.out, "Total P/L:      %s\n", t.money(pnl))
	fmt.Fprintf(t.out, "Win Rate:       %s\n", journal.FormatPercent(winRate))
	fmt.Fprintf(t.out, "Total Trades:   %d\n", count)
}

func (t *terminal) RenderEquityCurve(points []journal.CurvePoint) {
	if !t.show.curve {
		return
	}
	tw := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, p := range points {
		fmt.Fprintf(tw, "%s\t%s\t\n", p.Label, t.money(p.Balance))
	}
	tw.Flush()
}

func (t *terminal) RenderTradeDetail(trades []journal.Trade) {
	fmt.Fprint(t.out, journal.FormatTradesOrg(trades, t.currency))
}

func (t *terminal) RenderBacktest(r journal.BacktestReport) {
	if t.show.org {
		if err := r.WriteOrg(t.out, t.currency); err != nil {
			fmt.Fprintf(t.errOut, "✗ render report: %v\n", err)
		}
		return
	}
	if r.Empty() {
		fmt.Fprintf(t.out, "No trades found with keyword '%s'.\n", r.Keyword)
		return
	}
	fmt.Fprintf(t.out, "Total Trades:   %d\n", r.Total)
	fmt.Fprintf(t.out, "Won:            %d | Lost: %d\n", r.Wins, r.Losses)
	fmt.Fprintf(t.out, "Win Rate:       %s\n", journal.FormatPercent(r.WinRate))
	fmt.Fprintf(t.out, "Total P/L:      %s\n", t.money(r.TotalPnL))
}

func (t *terminal) DeliverExport(filename string, doc []byte) error {
	if err := os.MkdirAll(t.exportDir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(t.exportDir, filename)
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Fprintf(t.out, "Wrote %s\n", path)
	return nil
}
