package journal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTradeOrg(t *testing.T) {
	t.Parallel()

	trade := Trade{
		ID:            1704153600000,
		Date:          "2024-01-02",
		Symbol:        "eurusd",
		Type:          Buy,
		Lot:           0.25,
		PnL:           1250,
		NotesEntry:    "Breakout above the Asian range",
		NotesMistakes: "Moved stop too early",
	}

	result := FormatTradeOrg(trade, "AUC")

	assert.Contains(t, result, "** Detail: EURUSD (2024-01-02)")
	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":ID: 1704153600000")
	assert.Contains(t, result, ":SYMBOL: EURUSD")
	assert.Contains(t, result, ":TYPE: Buy")
	assert.Contains(t, result, ":LOT: 0.25")
	assert.Contains(t, result, ":PNL: 1,250.00 AUC")
	assert.Contains(t, result, ":END:")
	assert.Contains(t, result, "*** Entry Reason\nBreakout above the Asian range")
	assert.Contains(t, result, "*** Mistakes / Lessons\nMoved stop too early")
}

func TestFormatTradeOrgNoNotes(t *testing.T) {
	t.Parallel()

	result := FormatTradeOrg(Trade{Date: "2024-01-02", Symbol: "gbpusd", Type: Sell, Lot: 1, PnL: -3}, "AUC")

	assert.Equal(t, 2, strings.Count(result, "No notes."))
	assert.Contains(t, result, ":PNL: -3.00 AUC")
}

func TestFormatTradesOrg(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{ID: 1, Date: "2024-01-02", Symbol: "eurusd"},
		{ID: 2, Date: "2024-01-03", Symbol: "gbpusd"},
	}

	result := FormatTradesOrg(trades, "AUC")
	assert.Equal(t, 2, strings.Count(result, "** Detail:"))
	assert.Contains(t, result, "\n\n\n** Detail: GBPUSD")
	assert.Empty(t, FormatTradesOrg(nil, "AUC"))
}
