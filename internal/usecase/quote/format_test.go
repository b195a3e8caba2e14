package quote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/remitflow/wallet-backend/internal/domain"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   string
		currency domain.Currency
		want     string
	}{
		{"1234.5", domain.CurrencyUSD, "$1,234.50"},
		{"3700000", domain.CurrencyUGX, "USh3,700,000.00"},
		{"0", domain.CurrencyCNY, "¥0.00"},
		{"99.999", domain.CurrencyUSD, "$100.00"},
		{"-12.3", domain.CurrencyUSD, "-$12.30"},
		{"5", "EUR", "EUR5.00"},
		{"1019999999999998.98", domain.CurrencyUSD, "$1,019,999,999,999,998.98"},
		{"10000000000000000000", domain.CurrencyUSD, "$10,000,000,000,000,000,000.00"},
		{"-123456789012345678901.5", domain.CurrencyUGX, "-USh123,456,789,012,345,678,901.50"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.amount), tt.currency))
		})
	}
}

func TestFormatSummary(t *testing.T) {
	calc := &Calculator{FeeRate: DefaultFeeRate}
	summary := calc.ComputeSummary(decimal.NewFromInt(100), domain.CurrencyUSD)

	lines := FormatSummary(summary)

	assert.Equal(t, []SummaryLine{
		{Label: "Transfer Amount", Value: "100.00 USD"},
		{Label: "Transfer Fee (2%)", Value: "2.00 USD"},
		{Label: "Total Amount", Value: "102.00 USD"},
	}, lines)
}

func TestFormatSummary_ZeroAmount(t *testing.T) {
	calc := &Calculator{FeeRate: DefaultFeeRate}
	lines := FormatSummary(calc.SummaryFromInput("", domain.CurrencyUGX))

	for _, line := range lines {
		assert.Equal(t, "0.00 UGX", line.Value, line.Label)
	}
}
