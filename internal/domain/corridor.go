package domain

import "fmt"

// Corridor represents a directed transfer route between two countries
type Corridor struct {
	From Country `yaml:"from"`
	To   Country `yaml:"to"`
}

func (c Corridor) String() string {
	return fmt.Sprintf("%s->%s", c.From, c.To)
}

// CorridorStatus represents the classification of a corridor
type CorridorStatus string

const (
	CorridorStatusAllowed     CorridorStatus = "ALLOWED"
	CorridorStatusBlocked     CorridorStatus = "BLOCKED"
	CorridorStatusUnspecified CorridorStatus = "UNSPECIFIED"
	CorridorStatusSameCountry CorridorStatus = "SAME_COUNTRY"
)

// CorridorValidation is the result of classifying a corridor.
// Message is user facing and shown as-is by the presentation layer.
type CorridorValidation struct {
	Corridor Corridor
	Status   CorridorStatus
	Valid    bool
	Blocked  bool // Only set for explicit policy blocks
	Message  string
}

// Err converts a failed classification into its sentinel error,
// wrapped with the user facing message. Returns nil for valid corridors.
func (v CorridorValidation) Err() error {
	if v.Valid {
		return nil
	}

	var sentinel error
	switch v.Status {
	case CorridorStatusSameCountry:
		sentinel = ErrSameCountryRoute
	case CorridorStatusBlocked:
		sentinel = ErrBlockedRoute
	default:
		sentinel = ErrUnspecifiedRoute
	}

	return fmt.Errorf("%w: %s", sentinel, v.Message)
}
