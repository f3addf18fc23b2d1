package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yayangurayan/jurnalforex/storage"
)

func TestLoadRecordsAbsentKey(t *testing.T) {
	t.Parallel()

	got, err := loadRecords[Trade](storage.NewMemory(), TradesKey)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadRecordsCorrupt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{"not json", `{{{`},
		{"object", `{"id":1}`},
		{"wrong element", `["x"]`},
		{"number", `5`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := storage.NewMemory()
			require.NoError(t, kv.Put(TradesKey, []byte(tt.value)))

			got, err := loadRecords[Trade](kv, TradesKey)
			assert.ErrorIs(t, err, ErrCorrupt)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestLoadRecordsNull(t *testing.T) {
	t.Parallel()

	kv := storage.NewMemory()
	require.NoError(t, kv.Put(CashFlowsKey, []byte(`null`)))

	got, err := loadRecords[CashFlow](kv, CashFlowsKey)
	require.NoError(t, err)
	assert.Equal(t, []CashFlow{}, got)
}

func TestSaveRecordsNilIsEmptyArray(t *testing.T) {
	t.Parallel()

	kv := storage.NewMemory()
	require.NoError(t, saveRecords[Trade](kv, TradesKey, nil))

	raw, err := kv.Get(TradesKey)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(raw))
}

func TestSaveRecordsRoundTrip(t *testing.T) {
	t.Parallel()

	kv := storage.NewMemory()
	in := []CashFlow{
		{ID: 1, Date: "2024-01-01", Type: Deposit, Amount: 1000},
		{ID: 2, Date: "2024-01-05", Type: Withdrawal, Amount: 250.5},
	}
	require.NoError(t, saveRecords(kv, CashFlowsKey, in))

	got, err := loadRecords[CashFlow](kv, CashFlowsKey)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}
