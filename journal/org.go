package journal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const noNotes = "No notes."

// FormatTradeOrg renders a Trade as an Org-mode block for the detail view.
// Structured facts go in the PROPERTIES drawer; the two free-text notes get
// their own sections.
func FormatTradeOrg(t Trade, currency string) string {
	symbol := strings.ToUpper(t.Symbol)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("** Detail: %s (%s)\n", symbol, t.Date))
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":ID: %d\n", t.ID))
	b.WriteString(fmt.Sprintf(":DATE: %s\n", t.Date))
	b.WriteString(fmt.Sprintf(":SYMBOL: %s\n", symbol))
	b.WriteString(fmt.Sprintf(":TYPE: %s\n", t.Type))
	b.WriteString(fmt.Sprintf(":LOT: %s\n", strconv.FormatFloat(t.Lot, 'f', -1, 64)))
	b.WriteString(fmt.Sprintf(":PNL: %s\n", FormatCurrency(decimal.NewFromFloat(t.PnL), currency)))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Entry Reason\n")
	b.WriteString(orNoNotes(t.NotesEntry))
	b.WriteString("\n\n")
	b.WriteString("*** Mistakes / Lessons\n")
	b.WriteString(orNoNotes(t.NotesMistakes))
	b.WriteString("\n")

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []Trade, currency string) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t, currency))
	}
	return b.String()
}

func orNoNotes(s string) string {
	if strings.TrimSpace(s) == "" {
		return noNotes
	}
	return s
}
