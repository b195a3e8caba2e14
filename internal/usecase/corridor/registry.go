package corridor

import (
	"errors"
	"fmt"
	"sync"

	"github.com/remitflow/wallet-backend/internal/domain"
)

// Built-in corridor tables
var (
	DefaultAllowed = []domain.Corridor{
		{From: domain.CountryUganda, To: domain.CountryUSA},
		{From: domain.CountryUSA, To: domain.CountryUganda},
		{From: domain.CountryUganda, To: domain.CountryChina},
		{From: domain.CountryChina, To: domain.CountryUganda},
	}

	// USA <-> China transfers are blocked by policy
	DefaultBlocked = []domain.Corridor{
		{From: domain.CountryUSA, To: domain.CountryChina},
		{From: domain.CountryChina, To: domain.CountryUSA},
	}
)

const validCorridorMessage = "Transfer corridor is valid"

// Registry classifies transfer routes against immutable allow and block tables.
// It holds no mutable state and is safe for concurrent use.
type Registry struct {
	allowed      map[domain.Corridor]struct{}
	blocked      map[domain.Corridor]struct{}
	allowedOrder []domain.Corridor
	blockedOrder []domain.Corridor
}

// NewRegistry builds a registry from the given tables
// Returns an error if a corridor is same-country, references an unsupported
// country, is listed twice, or appears in both tables
func NewRegistry(allowed, blocked []domain.Corridor) (*Registry, error) {
	r := &Registry{
		allowed: make(map[domain.Corridor]struct{}, len(allowed)),
		blocked: make(map[domain.Corridor]struct{}, len(blocked)),
	}

	if err := addAll(r.allowed, &r.allowedOrder, allowed); err != nil {
		return nil, fmt.Errorf("allow-list: %w", err)
	}
	if err := addAll(r.blocked, &r.blockedOrder, blocked); err != nil {
		return nil, fmt.Errorf("block-list: %w", err)
	}

	// The tables must be disjoint
	for c := range r.blocked {
		if _, ok := r.allowed[c]; ok {
			return nil, fmt.Errorf("corridor %s is both allowed and blocked", c)
		}
	}

	return r, nil
}

func addAll(set map[domain.Corridor]struct{}, order *[]domain.Corridor, corridors []domain.Corridor) error {
	for _, c := range corridors {
		if !c.From.Valid() || !c.To.Valid() {
			return fmt.Errorf("corridor %s: %w", c, domain.ErrInvalidCountry)
		}
		if c.From == c.To {
			return fmt.Errorf("corridor %s: %w", c, domain.ErrSameCountryRoute)
		}
		if _, dup := set[c]; dup {
			return fmt.Errorf("corridor %s listed twice", c)
		}
		set[c] = struct{}{}
		*order = append(*order, c)
	}
	return nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry built from the built-in tables
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(DefaultAllowed, DefaultBlocked)
		if err != nil {
			panic(errors.Join(errors.New("built-in corridor tables are invalid"), err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// ValidateCorridor classifies the route from one country to another.
// Precedence: same country, then block-list, then allow-list, then deny.
func (r *Registry) ValidateCorridor(from, to domain.Country) domain.CorridorValidation {
	c := domain.Corridor{From: from, To: to}

	if from == to {
		return domain.CorridorValidation{
			Corridor: c,
			Status:   domain.CorridorStatusSameCountry,
			Message:  "Cannot send money to the same country",
		}
	}

	if _, ok := r.blocked[c]; ok {
		return domain.CorridorValidation{
			Corridor: c,
			Status:   domain.CorridorStatusBlocked,
			Blocked:  true,
			Message: fmt.Sprintf("Transfers between %s and %s are not currently supported",
				from.Name(), to.Name()),
		}
	}

	if _, ok := r.allowed[c]; ok {
		return domain.CorridorValidation{
			Corridor: c,
			Status:   domain.CorridorStatusAllowed,
			Valid:    true,
			Message:  validCorridorMessage,
		}
	}

	return domain.CorridorValidation{
		Corridor: c,
		Status:   domain.CorridorStatusUnspecified,
		Message: fmt.Sprintf("Transfer route from %s to %s is not available",
			from.Name(), to.Name()),
	}
}

// IsCorridorAllowed collapses ValidateCorridor to a boolean
func (r *Registry) IsCorridorAllowed(from, to domain.Country) bool {
	return r.ValidateCorridor(from, to).Valid
}

// AllowedDestinations returns every destination reachable from a country
func (r *Registry) AllowedDestinations(from domain.Country) []domain.Country {
	return destinations(r.allowedOrder, from)
}

// BlockedDestinations returns every destination explicitly blocked from a country
func (r *Registry) BlockedDestinations(from domain.Country) []domain.Country {
	return destinations(r.blockedOrder, from)
}

func destinations(table []domain.Corridor, from domain.Country) []domain.Country {
	out := make([]domain.Country, 0)
	for _, c := range table {
		if c.From == from {
			out = append(out, c.To)
		}
	}
	return out
}
