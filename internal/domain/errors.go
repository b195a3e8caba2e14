package domain

import "errors"

var (
	// Corridor classification failures
	ErrSameCountryRoute = errors.New("same country route")
	ErrBlockedRoute     = errors.New("blocked route")
	ErrUnspecifiedRoute = errors.New("route not available")

	ErrInvalidAmount   = errors.New("amount must be greater than 0")
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrInvalidCountry  = errors.New("invalid country")
	ErrInvalidRequest  = errors.New("invalid transfer request")

	// ErrRateUnavailable is returned by rate providers when no quote can be produced
	ErrRateUnavailable = errors.New("exchange rate unavailable")
)
