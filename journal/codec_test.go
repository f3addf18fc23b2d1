package journal

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFilename(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 7, 9, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "jurnal-forex-data-2024-07-09.json", ExportFilename(now))
}

func TestEncodeDocumentFieldNames(t *testing.T) {
	t.Parallel()

	data, err := EncodeDocument(Document{})
	require.NoError(t, err)

	var top map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &top))
	assert.JSONEq(t, `[]`, string(top["trades"]))
	assert.JSONEq(t, `[]`, string(top["transactions_dw"]))
	assert.Len(t, top, 2)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	doc := Document{
		Trades: []Trade{
			{ID: 1718000000000, Date: "2024-06-10", Symbol: "eurusd", Type: Buy, Lot: 0.1, PnL: -7.25, NotesEntry: "breakout", NotesMistakes: "late entry"},
		},
		CashFlows: []CashFlow{
			{ID: 1717000000000, Date: "2024-05-29", Type: Deposit, Amount: 500},
		},
	}

	data, err := EncodeDocument(doc)
	require.NoError(t, err)

	got, err := DecodeDocument(data)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestDecodeDocumentAcceptsBrowserExport(t *testing.T) {
	t.Parallel()

	data := []byte(`{
  "trades": [
    {"id": 1704153600000, "date": "2024-01-02", "symbol": "eurusd", "type": "Buy", "lot": 1, "pnl": 50, "notes_entry": "", "notes_mistakes": ""}
  ],
  "transactions_dw": [
    {"id": 1704067200000, "date": "2024-01-01", "type": "Deposit", "amount": 1000}
  ]
}`)

	doc, err := DecodeDocument(data)
	require.NoError(t, err)
	require.Len(t, doc.Trades, 1)
	require.Len(t, doc.CashFlows, 1)
	assert.Equal(t, 50.0, doc.Trades[0].PnL)
	assert.Equal(t, Deposit, doc.CashFlows[0].Type)
}

func TestDecodeDocumentErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want error
	}{
		{"not json", `{"trades": [`, ErrParse},
		{"empty", ``, ErrParse},
		{"top-level array", `[]`, ErrFormat},
		{"null", `null`, ErrFormat},
		{"missing trades", `{"transactions_dw": []}`, ErrFormat},
		{"missing cash flows", `{"trades": []}`, ErrFormat},
		{"camel case cash flows", `{"trades": [], "cashFlows": []}`, ErrFormat},
		{"trades not array", `{"trades": {}, "transactions_dw": []}`, ErrFormat},
		{"cash flows null", `{"trades": [], "transactions_dw": null}`, ErrFormat},
		{"bad trade element", `{"trades": ["x"], "transactions_dw": []}`, ErrFormat},
		{"bad cash flow element", `{"trades": [], "transactions_dw": [{"amount": "lots"}]}`, ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := DecodeDocument([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, doc.Trades)
			assert.Empty(t, doc.CashFlows)
		})
	}
}
