package journal

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"
)

// BacktestReport summarizes the trades whose entry notes mention a keyword.
type BacktestReport struct {
	Keyword string
	Trades  []Trade

	Total  int
	Wins   int
	Losses int

	WinRate  float64
	TotalPnL decimal.Decimal
}

// FilterByKeyword selects trades whose NotesEntry contains keyword,
// ignoring case, and summarizes them. The keyword is trimmed first; an empty
// keyword is a validation error. No matches yields a zero report.
func FilterByKeyword(trades []Trade, keyword string) (BacktestReport, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return BacktestReport{}, fmt.Errorf("%w: enter a keyword to analyze", ErrValidation)
	}

	needle := strings.ToLower(keyword)
	matched := []Trade{}
	for _, t := range trades {
		if t.NotesEntry != "" && strings.Contains(strings.ToLower(t.NotesEntry), needle) {
			matched = append(matched, t)
		}
	}

	wins := Wins(matched)
	return BacktestReport{
		Keyword:  keyword,
		Trades:   matched,
		Total:    len(matched),
		Wins:     wins,
		Losses:   len(matched) - wins,
		WinRate:  WinRate(matched),
		TotalPnL: TotalPnL(matched),
	}, nil
}

// Empty reports whether no trade matched.
func (r BacktestReport) Empty() bool {
	return r.Total == 0
}

// WriteOrg renders the report as an Org-mode section.
func (r BacktestReport) WriteOrg(w io.Writer, currency string) error {
	t, err := template.New("backtest").Funcs(template.FuncMap{
		"money": func(d decimal.Decimal) string { return FormatCurrency(d, currency) },
		"upper": strings.ToUpper,
		"pnl":   func(v float64) string { return FormatCurrency(decimal.NewFromFloat(v), currency) },
	}).Parse(BacktestOrgTemplate)
	if err != nil {
		return err
	}
	return t.Execute(w, r)
}

const BacktestOrgTemplate = `* BACKTEST: "{{.Keyword}}"
:PROPERTIES:
:KEYWORD:   {{.Keyword}}
:TRADES:    {{.Total}}
:WINS:      {{.Wins}}
:LOSSES:    {{.Losses}}
:WIN_RATE:  {{printf "%.1f" .WinRate}}
:TOTAL_PL:  {{.TotalPnL.StringFixed 2}}
:END:
{{- if .Empty }}

No trades found with keyword '{{.Keyword}}'.
{{- else }}

** Performance Summary
- Total Trades:  *{{.Total}}*
- Won / Lost:    *{{.Wins}}* / *{{.Losses}}*
- Win Rate:      *{{printf "%.1f" .WinRate}}%*
- Total P/L:     *{{money .TotalPnL}}*

** Matching Trades
| Date | Symbol | Type | Lot | P/L |
|------+--------+------+-----+-----|
{{- range .Trades }}
| {{.Date}} | {{upper .Symbol}} | {{.Type}} | {{.Lot}} | {{pnl .PnL}} |
{{- end }}
{{- end }}
`
