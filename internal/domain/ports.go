package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the lifecycle status reported by the payment service
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// PaymentInstruction is what gets handed to the payment service once a
// TransferRequest passed validation
type PaymentInstruction struct {
	RequestID          uuid.UUID
	IdempotencyKey     string
	SourceCountry      Country
	DestinationCountry Country
	RecipientEmail     string
	RecipientName      string
	Amount             decimal.Decimal
	Currency           Currency
	Description        string
	Summary            TransferSummary // Advisory only, the payment service computes the real charge
}

// PaymentReceipt is the payment service's acknowledgement of a submitted transfer
type PaymentReceipt struct {
	Reference   string
	Status      PaymentStatus
	Message     string
	SubmittedAt time.Time
}

// ExchangeRateProvider defines the interface for the external exchange-rate service
type ExchangeRateProvider interface {
	// Quote returns the rate from one currency to another and the converted amount
	// Returns an error wrapping ErrRateUnavailable when no rate is known for the pair
	Quote(ctx context.Context, from, to Currency, amount decimal.Decimal) (*ExchangeQuote, error)
}

// PaymentGateway defines the interface for the external payment submission service
// The gateway re-validates the corridor server-side
type PaymentGateway interface {
	// Submit performs the transfer described by the instruction
	Submit(ctx context.Context, instruction PaymentInstruction) (*PaymentReceipt, error)
}
