package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/remitflow/wallet-backend/internal/domain"
)

// Precision kept when inverting a stored rate
const inverseRatePlaces = 8

// rateRepository implements domain.ExchangeRateProvider over the exchange_rates table
type rateRepository struct {
	db  *DB
	now func() time.Time
}

// NewRateRepository creates a new rate repository
func NewRateRepository(db *DB) domain.ExchangeRateProvider {
	return &rateRepository{db: db, now: time.Now}
}

// Quote returns the latest stored rate for the pair and converts the amount
// Logic:
//   - Same currency: rate 1, no lookup
//   - Direct pair stored: latest row wins
//   - Only the reverse pair stored: 1 / reverse rate
func (r *rateRepository) Quote(ctx context.Context, from, to domain.Currency, amount decimal.Decimal) (*domain.ExchangeQuote, error) {
	rate, err := r.lookup(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &domain.ExchangeQuote{
		SourceCurrency: from,
		TargetCurrency: to,
		Rate:           rate,
		SourceAmount:   amount,
		TargetAmount:   amount.Mul(rate),
		FetchedAt:      r.now(),
	}, nil
}

func (r *rateRepository) lookup(ctx context.Context, from, to domain.Currency) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	rate, err := r.latest(ctx, from, to)
	if err == nil {
		return rate, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, err
	}

	reverse, err := r.latest(ctx, to, from)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("no rate stored for %s/%s: %w", from, to, domain.ErrRateUnavailable)
		}
		return decimal.Zero, err
	}

	return decimal.NewFromInt(1).DivRound(reverse, inverseRatePlaces), nil
}

// latest returns the most recent rate for a directed pair
// Returns an error wrapping sql.ErrNoRows when the pair is not stored
func (r *rateRepository) latest(ctx context.Context, from, to domain.Currency) (decimal.Decimal, error) {
	query := `
		SELECT rate, effective_at
		FROM exchange_rates
		WHERE source_currency = $1 AND target_currency = $2
		ORDER BY effective_at DESC
		LIMIT 1
	`

	var rateStr string
	var effectiveAt time.Time

	err := r.db.QueryRowContext(ctx, query, string(from), string(to)).Scan(&rateStr, &effectiveAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, err
		}
		return decimal.Zero, fmt.Errorf("failed to query exchange rate %s/%s: %w", from, to, err)
	}

	// Parse rate (NUMERIC)
	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse rate: %w", err)
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("stored rate %s/%s is not positive: %w", from, to, domain.ErrRateUnavailable)
	}

	return rate, nil
}
