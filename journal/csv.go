package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var (
	tradeCSVHeader    = []string{"id", "date", "symbol", "type", "lot", "pnl", "notes_entry", "notes_mistakes"}
	cashFlowCSVHeader = []string{"id", "date", "type", "amount"}
)

// CSVWriter writes trades and cash flow entries to two CSV files.
type CSVWriter struct {
	trades *csv.Writer
	flows  *csv.Writer
	tf, ff *os.File
}

func NewCSV(tradesPath, cashFlowsPath string) (*CSVWriter, error) {
	tf, err := os.Create(tradesPath)
	if err != nil {
		return nil, err
	}
	ff, err := os.Create(cashFlowsPath)
	if err != nil {
		tf.Close()
		return nil, err
	}

	tw := csv.NewWriter(tf)
	fw := csv.NewWriter(ff)

	if err := tw.Write(tradeCSVHeader); err != nil {
		tf.Close()
		ff.Close()
		return nil, err
	}
	if err := fw.Write(cashFlowCSVHeader); err != nil {
		tf.Close()
		ff.Close()
		return nil, err
	}

	return &CSVWriter{tw, fw, tf, ff}, nil
}

func (w *CSVWriter) WriteTrade(t Trade) error {
	return w.trades.Write([]string{
		strconv.FormatInt(t.ID, 10),
		t.Date,
		t.Symbol,
		string(t.Type),
		strconv.FormatFloat(t.Lot, 'f', -1, 64),
		money(t.PnL),
		t.NotesEntry,
		t.NotesMistakes,
	})
}

func (w *CSVWriter) WriteCashFlow(c CashFlow) error {
	return w.flows.Write([]string{
		strconv.FormatInt(c.ID, 10),
		c.Date,
		string(c.Type),
		money(c.Amount),
	})
}

func (w *CSVWriter) Close() error {
	w.trades.Flush()
	if err := w.trades.Error(); err != nil {
		return err
	}
	w.flows.Flush()
	if err := w.flows.Error(); err != nil {
		return err
	}

	if err := w.tf.Close(); err != nil {
		return err
	}
	if err := w.ff.Close(); err != nil {
		return err
	}
	return nil
}

// ExportCSV writes doc into dir as two dated CSV files and returns their paths.
func ExportCSV(dir string, doc Document, now time.Time) (string, string, error) {
	base := strings.TrimSuffix(ExportFilename(now), ".json")
	tradesPath := filepath.Join(dir, base+"-trades.csv")
	flowsPath := filepath.Join(dir, base+"-cashflows.csv")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create export dir: %w", err)
	}
	w, err := NewCSV(tradesPath, flowsPath)
	if err != nil {
		return "", "", fmt.Errorf("create csv: %w", err)
	}
	for _, t := range doc.Trades {
		if err := w.WriteTrade(t); err != nil {
			w.Close()
			return "", "", fmt.Errorf("write trade %d: %w", t.ID, err)
		}
	}
	for _, c := range doc.CashFlows {
		if err := w.WriteCashFlow(c); err != nil {
			w.Close()
			return "", "", fmt.Errorf("write cash flow %d: %w", c.ID, err)
		}
	}
	if err := w.Close(); err != nil {
		return "", "", err
	}
	return tradesPath, flowsPath, nil
}

func money(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
