package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeQuote represents a rate quote supplied by the external exchange-rate service.
// It is trusted as-is: nothing in this service recomputes the rate or the target amount.
type ExchangeQuote struct {
	SourceCurrency Currency
	TargetCurrency Currency
	Rate           decimal.Decimal // Units of TargetCurrency per 1 SourceCurrency
	SourceAmount   decimal.Decimal
	TargetAmount   decimal.Decimal
	FetchedAt      time.Time
}

// TransferSummary represents the fee breakdown shown before submission.
// Derived from the amount on every input change, never stored.
type TransferSummary struct {
	Amount   decimal.Decimal
	Currency Currency
	FeeRate  decimal.Decimal
	Fee      decimal.Decimal
	Total    decimal.Decimal
}
