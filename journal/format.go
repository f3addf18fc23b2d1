package journal

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is the account currency label.
const DefaultCurrency = "AUC"

var printer = message.NewPrinter(language.English)

// FormatCurrency renders v with two decimals and en-US digit grouping,
// followed by the currency symbol: "1,050.00 AUC".
func FormatCurrency(v decimal.Decimal, symbol string) string {
	f, _ := v.Round(2).Float64()
	s := printer.Sprintf("%.2f", f)
	if symbol == "" {
		return s
	}
	return s + " " + symbol
}

// FormatPercent renders a win rate with one decimal: "50.0%".
func FormatPercent(rate float64) string {
	return printer.Sprintf("%.1f%%", rate)
}
