package journal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00 AUC"},
		{"1050", "1,050.00 AUC"},
		{"-20", "-20.00 AUC"},
		{"1234567.891", "1,234,567.89 AUC"},
		{"0.005", "0.01 AUC"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(decimal.RequireFromString(tt.in), "AUC"), tt.in)
	}

	assert.Equal(t, "12.50", FormatCurrency(decimal.RequireFromString("12.5"), ""))
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "50.0%", FormatPercent(50))
	assert.Equal(t, "33.3%", FormatPercent(100.0/3))
	assert.Equal(t, "0.0%", FormatPercent(0))
}
