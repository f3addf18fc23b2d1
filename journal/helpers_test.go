package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yayangurayan/jurnalforex/pkg/id"
	"github.com/yayangurayan/jurnalforex/storage"
)

var testClock = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, storage.KV) {
	t.Helper()

	kv := storage.NewMemory()
	s := Open(kv, WithIDs(id.NewGeneratorWithClock(func() time.Time { return testClock })))
	return s, kv
}

// requireInSync fails unless the KV holds exactly what the store holds in memory.
func requireInSync(t *testing.T, s *Store, kv storage.KV) {
	t.Helper()

	trades, err := loadRecords[Trade](kv, TradesKey)
	require.NoError(t, err)
	flows, err := loadRecords[CashFlow](kv, CashFlowsKey)
	require.NoError(t, err)

	require.Equal(t, s.Trades(), trades)
	require.Equal(t, s.CashFlows(), flows)
}

func win(date, symbol string, amount, note string) TradeInput {
	return TradeInput{Date: date, Symbol: symbol, Type: "Buy", Lot: "1", Outcome: "Profit", Amount: amount, NotesEntry: note}
}

func loss(date, symbol string, amount, note string) TradeInput {
	return TradeInput{Date: date, Symbol: symbol, Type: "Sell", Lot: "0.5", Outcome: "Loss", Amount: amount, NotesEntry: note}
}
