package transfer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/remitflow/wallet-backend/internal/domain"
	"github.com/remitflow/wallet-backend/internal/usecase/corridor"
	"github.com/remitflow/wallet-backend/internal/usecase/quote"
)

// Observer receives outcome notifications for metrics
type Observer interface {
	ObserveCorridor(status domain.CorridorStatus)
	ObserveQuote(outcome string)
	ObserveTransfer(outcome string)
}

type noopObserver struct{}

func (noopObserver) ObserveCorridor(domain.CorridorStatus) {}
func (noopObserver) ObserveQuote(string)                   {}
func (noopObserver) ObserveTransfer(string)                {}

// Quote and transfer outcomes reported to the Observer
const (
	OutcomeOK              = "ok"
	OutcomeRejected        = "rejected"
	OutcomeRateUnavailable = "rate_unavailable"
	OutcomeFailed          = "failed"
)

// QuoteInput represents the current state of the send-money form
type QuoteInput struct {
	SourceCountry      domain.Country
	DestinationCountry domain.Country
	Amount             string // Raw user input
	Currency           domain.Currency
}

// QuoteResult is everything shown to the user before submission
type QuoteResult struct {
	Corridor        domain.CorridorValidation
	Summary         domain.TransferSummary
	SummaryLines    []quote.SummaryLine
	Exchange        *domain.ExchangeQuote // nil when no rate could be fetched
	Presentable     *quote.PresentableQuote
	RateUnavailable bool
}

// Destinations lists the corridors open and closed from a source country
type Destinations struct {
	Source  domain.Country
	Allowed []domain.Country
	Blocked []domain.Country
}

// TransferService validates corridors, prepares quotes and submits transfers
type TransferService struct {
	Registry   *corridor.Registry
	Calculator *quote.Calculator
	Rates      domain.ExchangeRateProvider
	Payments   domain.PaymentGateway
	Observer   Observer
	Log        *logrus.Entry
}

// NewTransferService creates a new TransferService instance
// A nil observer disables outcome reporting
func NewTransferService(
	registry *corridor.Registry,
	calculator *quote.Calculator,
	rates domain.ExchangeRateProvider,
	payments domain.PaymentGateway,
	observer Observer,
	log *logrus.Entry,
) *TransferService {
	if observer == nil {
		observer = noopObserver{}
	}
	return &TransferService{
		Registry:   registry,
		Calculator: calculator,
		Rates:      rates,
		Payments:   payments,
		Observer:   observer,
		Log:        log.WithField("component", "transfer"),
	}
}

// ValidateCorridor classifies a route and reports the outcome
func (s *TransferService) ValidateCorridor(from, to domain.Country) domain.CorridorValidation {
	result := s.Registry.ValidateCorridor(from, to)
	s.Observer.ObserveCorridor(result.Status)
	return result
}

// Destinations returns allowed and blocked destinations for a source country
func (s *TransferService) Destinations(from domain.Country) Destinations {
	return Destinations{
		Source:  from,
		Allowed: s.Registry.AllowedDestinations(from),
		Blocked: s.Registry.BlockedDestinations(from),
	}
}

// PrepareQuote builds the advisory quote shown while the user fills the form
// Logic:
//  1. Classify the corridor, a rejected corridor stops here
//  2. Compute the fee summary (non-numeric amounts display as zero)
//  3. For a positive amount, fetch a rate toward the destination's home currency
//
// A failed rate fetch is not an error: the summary is still shown without a rate.
func (s *TransferService) PrepareQuote(ctx context.Context, input QuoteInput) (*QuoteResult, error) {
	validation := s.ValidateCorridor(input.SourceCountry, input.DestinationCountry)
	if !validation.Valid {
		s.Observer.ObserveQuote(OutcomeRejected)
		return nil, validation.Err()
	}

	if !input.Currency.Valid() {
		s.Observer.ObserveQuote(OutcomeRejected)
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCurrency, input.Currency)
	}

	summary := s.Calculator.SummaryFromInput(input.Amount, input.Currency)
	result := &QuoteResult{
		Corridor:     validation,
		Summary:      summary,
		SummaryLines: quote.FormatSummary(summary),
	}

	if !summary.Amount.IsPositive() {
		s.Observer.ObserveQuote(OutcomeOK)
		return result, nil
	}

	target := input.DestinationCountry.HomeCurrency()
	exchange, err := s.Rates.Quote(ctx, input.Currency, target, summary.Amount)
	if err != nil {
		s.Log.WithFields(logrus.Fields{
			"from":  input.Currency,
			"to":    target,
			"error": err,
		}).Warn("failed to fetch exchange rate")
		result.RateUnavailable = true
		s.Observer.ObserveQuote(OutcomeRateUnavailable)
		return result, nil
	}

	presentable := quote.PackageQuote(*exchange)
	result.Exchange = exchange
	result.Presentable = &presentable

	s.Observer.ObserveQuote(OutcomeOK)
	return result, nil
}

// SendMoney submits a transfer after validating it again
// The request, amount and corridor are re-checked here because the form state
// may have changed since the quote was prepared
func (s *TransferService) SendMoney(ctx context.Context, req domain.TransferRequest) (*domain.PaymentReceipt, error) {
	req.Normalize()
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	log := s.Log.WithFields(logrus.Fields{
		"request_id":  req.ID,
		"source":      req.SourceCountry,
		"destination": req.DestinationCountry,
		"currency":    req.Currency,
	})

	if err := req.Validate(); err != nil {
		s.Observer.ObserveTransfer(OutcomeRejected)
		return nil, err
	}

	validation := s.ValidateCorridor(req.SourceCountry, req.DestinationCountry)
	if !validation.Valid {
		log.WithField("status", validation.Status).Info("transfer rejected by corridor rules")
		s.Observer.ObserveTransfer(OutcomeRejected)
		return nil, validation.Err()
	}

	amount, err := req.ParsedAmount()
	if err != nil {
		s.Observer.ObserveTransfer(OutcomeRejected)
		return nil, err
	}

	key, err := IdempotencyKey(req)
	if err != nil {
		s.Observer.ObserveTransfer(OutcomeFailed)
		return nil, fmt.Errorf("failed to derive idempotency key: %w", err)
	}

	instruction := domain.PaymentInstruction{
		RequestID:          req.ID,
		IdempotencyKey:     key,
		SourceCountry:      req.SourceCountry,
		DestinationCountry: req.DestinationCountry,
		RecipientEmail:     req.RecipientEmail,
		RecipientName:      req.RecipientName,
		Amount:             amount,
		Currency:           req.Currency,
		Description:        req.Description,
		Summary:            s.Calculator.ComputeSummary(amount, req.Currency),
	}

	receipt, err := s.Payments.Submit(ctx, instruction)
	if err != nil {
		log.WithError(err).Error("payment submission failed")
		s.Observer.ObserveTransfer(OutcomeFailed)
		return nil, fmt.Errorf("failed to submit transfer: %w", err)
	}

	log.WithField("reference", receipt.Reference).Info("transfer submitted")
	s.Observer.ObserveTransfer(OutcomeOK)
	return receipt, nil
}
