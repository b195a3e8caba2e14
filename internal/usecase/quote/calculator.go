package quote

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/remitflow/wallet-backend/internal/domain"
)

// DefaultFeeRate is the transfer fee applied on top of the sent amount (2%)
var DefaultFeeRate = decimal.NewFromFloat(0.02)

// Display precision
const (
	amountPlaces = 2
	ratePlaces   = 4
)

// Calculator derives the fee breakdown of a transfer under a fixed fee policy
type Calculator struct {
	FeeRate decimal.Decimal
}

// NewCalculator creates a new Calculator with the given fee rate
func NewCalculator(feeRate decimal.Decimal) (*Calculator, error) {
	if feeRate.IsNegative() {
		return nil, errors.New("fee rate must not be negative")
	}
	return &Calculator{FeeRate: feeRate}, nil
}

// ComputeSummary calculates the fee and total debit for an amount
// Logic:
//   - Fee = round2(Amount * FeeRate)
//   - Total = round2(Amount * (1 + FeeRate))
//
// Rounding is half-up to 2 places. Non-positive amounts yield a zero summary,
// they are rejected by request validation before submission.
func (c *Calculator) ComputeSummary(amount decimal.Decimal, currency domain.Currency) domain.TransferSummary {
	summary := domain.TransferSummary{
		Amount:   decimal.Zero,
		Currency: currency,
		FeeRate:  c.FeeRate,
		Fee:      decimal.Zero,
		Total:    decimal.Zero,
	}

	if !amount.IsPositive() {
		return summary
	}

	summary.Amount = amount
	summary.Fee = amount.Mul(c.FeeRate).Round(amountPlaces)
	summary.Total = amount.Mul(decimal.NewFromInt(1).Add(c.FeeRate)).Round(amountPlaces)

	return summary
}

// SummaryFromInput computes a summary from raw form input
// Non-numeric input is treated as zero so the summary can always be displayed
func (c *Calculator) SummaryFromInput(raw string, currency domain.Currency) domain.TransferSummary {
	amount, err := domain.ParseAmount(raw)
	if err != nil {
		amount = decimal.Zero
	}
	return c.ComputeSummary(amount, currency)
}

// PresentableQuote is an exchange quote formatted for display
type PresentableQuote struct {
	SourceCurrency domain.Currency
	TargetCurrency domain.Currency
	RateLine       string // "1 USD = 3700.1234 UGX"
	TargetAmount   string // "37001.23 UGX"
}

// PackageQuote formats an externally supplied quote for display
// The rate and target amount are trusted as-is
func PackageQuote(q domain.ExchangeQuote) PresentableQuote {
	return PresentableQuote{
		SourceCurrency: q.SourceCurrency,
		TargetCurrency: q.TargetCurrency,
		RateLine:       fmt.Sprintf("1 %s = %s %s", q.SourceCurrency, q.Rate.StringFixed(ratePlaces), q.TargetCurrency),
		TargetAmount:   fmt.Sprintf("%s %s", q.TargetAmount.StringFixed(amountPlaces), q.TargetCurrency),
	}
}
