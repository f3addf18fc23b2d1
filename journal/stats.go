package journal

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// StartingBalanceLabel labels the first point of every equity curve.
const StartingBalanceLabel = "Starting Balance"

// Summary is the dashboard view of the two collections.
type Summary struct {
	NetCashFlow  decimal.Decimal
	TotalPnL     decimal.Decimal
	TotalBalance decimal.Decimal

	TradeCount int
	Wins       int
	Losses     int

	// WinRate is a percentage in [0, 100]; 0 when there are no trades.
	WinRate float64
}

// CurvePoint is one labelled balance on the equity curve.
type CurvePoint struct {
	Label   string
	Balance decimal.Decimal
}

// NetCashFlow is deposits minus withdrawals.
func NetCashFlow(flows []CashFlow) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range flows {
		sum = sum.Add(decimal.NewFromFloat(c.Signed()))
	}
	return sum
}

// TotalPnL sums the signed P/L of every trade.
func TotalPnL(trades []Trade) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range trades {
		sum = sum.Add(decimal.NewFromFloat(t.PnL))
	}
	return sum
}

// Wins counts trades with a strictly positive P/L.
func Wins(trades []Trade) int {
	n := 0
	for _, t := range trades {
		if t.PnL > 0 {
			n++
		}
	}
	return n
}

// WinRate returns 100*wins/len(trades), or 0 for no trades.
func WinRate(trades []Trade) float64 {
	if len(trades) == 0 {
		return 0
	}
	return 100 * float64(Wins(trades)) / float64(len(trades))
}

// Summarize computes the dashboard figures. TotalBalance is always
// NetCashFlow + TotalPnL.
func Summarize(trades []Trade, flows []CashFlow) Summary {
	net := NetCashFlow(flows)
	pnl := TotalPnL(trades)
	wins := Wins(trades)

	return Summary{
		NetCashFlow:  net,
		TotalPnL:     pnl,
		TotalBalance: net.Add(pnl),
		TradeCount:   len(trades),
		Wins:         wins,
		Losses:       len(trades) - wins,
		WinRate:      WinRate(trades),
	}
}

// SortedByDate returns a copy of trades in ascending date order. Trades on
// the same date keep their relative order. The input is not modified.
func SortedByDate(trades []Trade) []Trade {
	out := make([]Trade, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// EquityCurve starts at the net cash flow and adds each trade's P/L in date
// order. The result has len(trades)+1 points.
func EquityCurve(trades []Trade, flows []CashFlow) []CurvePoint {
	balance := NetCashFlow(flows)

	out := make([]CurvePoint, 0, len(trades)+1)
	out = append(out, CurvePoint{Label: StartingBalanceLabel, Balance: balance})

	for _, t := range SortedByDate(trades) {
		balance = balance.Add(decimal.NewFromFloat(t.PnL))
		out = append(out, CurvePoint{
			Label:   fmt.Sprintf("%s (%s)", t.Symbol, t.Date),
			Balance: balance,
		})
	}
	return out
}
