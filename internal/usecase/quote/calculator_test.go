package quote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remitflow/wallet-backend/internal/domain"
)

func newDefaultCalculator(t *testing.T) *Calculator {
	t.Helper()
	c, err := NewCalculator(DefaultFeeRate)
	require.NoError(t, err)
	return c
}

func TestComputeSummary(t *testing.T) {
	calc := newDefaultCalculator(t)

	tests := []struct {
		name      string
		amount    string
		wantFee   string
		wantTotal string
	}{
		{name: "Round hundred", amount: "100", wantFee: "2.00", wantTotal: "102.00"},
		{name: "Zero amount", amount: "0", wantFee: "0.00", wantTotal: "0.00"},
		{name: "Negative amount", amount: "-50", wantFee: "0.00", wantTotal: "0.00"},
		{name: "Fee rounds half up", amount: "0.25", wantFee: "0.01", wantTotal: "0.26"},
		{name: "Fee rounds down", amount: "10.10", wantFee: "0.20", wantTotal: "10.30"},
		{name: "Cents", amount: "12.34", wantFee: "0.25", wantTotal: "12.59"},
		{name: "Large UGX amount", amount: "3700000", wantFee: "74000.00", wantTotal: "3774000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)

			summary := calc.ComputeSummary(amount, domain.CurrencyUSD)

			assert.Equal(t, tt.wantFee, summary.Fee.StringFixed(2))
			assert.Equal(t, tt.wantTotal, summary.Total.StringFixed(2))
			assert.Equal(t, domain.CurrencyUSD, summary.Currency)
			assert.True(t, summary.FeeRate.Equal(DefaultFeeRate))
		})
	}
}

func TestComputeSummary_Idempotent(t *testing.T) {
	calc := newDefaultCalculator(t)
	amount := decimal.RequireFromString("250.75")

	first := calc.ComputeSummary(amount, domain.CurrencyUGX)
	second := calc.ComputeSummary(amount, domain.CurrencyUGX)

	assert.True(t, first.Fee.Equal(second.Fee))
	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, first.Amount.Equal(second.Amount))
}

func TestComputeSummary_TotalIsAmountPlusFeeForCentAmounts(t *testing.T) {
	calc := newDefaultCalculator(t)

	for _, raw := range []string{"1", "99.99", "1000", "5000.50"} {
		amount := decimal.RequireFromString(raw)
		summary := calc.ComputeSummary(amount, domain.CurrencyCNY)
		assert.True(t, summary.Total.Equal(amount.Add(summary.Fee)), "amount %s", raw)
	}
}

func TestSummaryFromInput_NonNumericIsZero(t *testing.T) {
	calc := newDefaultCalculator(t)

	for _, raw := range []string{"", "abc", "12,50", "  "} {
		summary := calc.SummaryFromInput(raw, domain.CurrencyUSD)
		assert.True(t, summary.Fee.IsZero(), "input %q", raw)
		assert.True(t, summary.Total.IsZero(), "input %q", raw)
		assert.True(t, summary.Amount.IsZero(), "input %q", raw)
	}

	summary := calc.SummaryFromInput(" 100 ", domain.CurrencyUSD)
	assert.Equal(t, "102.00", summary.Total.StringFixed(2))
}

func TestNewCalculator_RejectsNegativeRate(t *testing.T) {
	c, err := NewCalculator(decimal.NewFromFloat(-0.01))

	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestNewCalculator_CustomRate(t *testing.T) {
	c, err := NewCalculator(decimal.RequireFromString("0.015"))
	require.NoError(t, err)

	summary := c.ComputeSummary(decimal.NewFromInt(100), domain.CurrencyUSD)
	assert.Equal(t, "1.50", summary.Fee.StringFixed(2))
	assert.Equal(t, "101.50", summary.Total.StringFixed(2))
}

func TestPackageQuote(t *testing.T) {
	q := domain.ExchangeQuote{
		SourceCurrency: domain.CurrencyUSD,
		TargetCurrency: domain.CurrencyUGX,
		Rate:           decimal.RequireFromString("3700.1234"),
		SourceAmount:   decimal.NewFromInt(10),
		TargetAmount:   decimal.RequireFromString("37001.234"),
	}

	presentable := PackageQuote(q)

	assert.Equal(t, "1 USD = 3700.1234 UGX", presentable.RateLine)
	assert.Equal(t, "37001.23 UGX", presentable.TargetAmount)
	assert.Equal(t, domain.CurrencyUSD, presentable.SourceCurrency)
	assert.Equal(t, domain.CurrencyUGX, presentable.TargetCurrency)
}

func TestPackageQuote_PadsPrecision(t *testing.T) {
	q := domain.ExchangeQuote{
		SourceCurrency: domain.CurrencyUGX,
		TargetCurrency: domain.CurrencyUSD,
		Rate:           decimal.RequireFromString("0.00027"),
		TargetAmount:   decimal.NewFromInt(27),
	}

	presentable := PackageQuote(q)

	assert.Equal(t, "1 UGX = 0.0003 USD", presentable.RateLine)
	assert.Equal(t, "27.00 USD", presentable.TargetAmount)
}

func TestSummaryFromInput_OutOfRangeIsZero(t *testing.T) {
	calc := newDefaultCalculator(t)

	for _, raw := range []string{"1e400000000", "1E2", "1000000000000000", "0.000000001"} {
		summary := calc.SummaryFromInput(raw, domain.CurrencyUSD)
		assert.True(t, summary.Amount.IsZero(), "input %q", raw)
		assert.True(t, summary.Total.IsZero(), "input %q", raw)
	}

	summary := calc.SummaryFromInput("999999999999999", domain.CurrencyUSD)
	assert.Equal(t, "19999999999999.98", summary.Fee.StringFixed(2))
	assert.Equal(t, "1019999999999998.98", summary.Total.StringFixed(2))
}
