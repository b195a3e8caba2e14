package corridor

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remitflow/wallet-backend/internal/domain"
)

var allCountries = []domain.Country{domain.CountryUganda, domain.CountryUSA, domain.CountryChina}

func TestValidateCorridor_SameCountryAlwaysRejected(t *testing.T) {
	r := Default()

	for _, c := range allCountries {
		result := r.ValidateCorridor(c, c)
		assert.False(t, result.Valid, "%s -> %s should be rejected", c, c)
		assert.False(t, result.Blocked)
		assert.Equal(t, domain.CorridorStatusSameCountry, result.Status)
		assert.Equal(t, "Cannot send money to the same country", result.Message)
	}
}

func TestValidateCorridor_SameCountryTakesPrecedenceOverTables(t *testing.T) {
	// Tables cannot contain same-country pairs, so precedence is checked
	// against an unknown code that appears in neither table
	r := Default()

	result := r.ValidateCorridor("KE", "KE")
	assert.Equal(t, domain.CorridorStatusSameCountry, result.Status)
	assert.False(t, result.Valid)
}

func TestValidateCorridor_Table(t *testing.T) {
	r := Default()

	tests := []struct {
		name        string
		from, to    domain.Country
		wantValid   bool
		wantBlocked bool
		wantStatus  domain.CorridorStatus
		wantMessage string
	}{
		{
			name:        "Uganda to USA is allowed",
			from:        domain.CountryUganda,
			to:          domain.CountryUSA,
			wantValid:   true,
			wantStatus:  domain.CorridorStatusAllowed,
			wantMessage: "Transfer corridor is valid",
		},
		{
			name:        "USA to Uganda is allowed",
			from:        domain.CountryUSA,
			to:          domain.CountryUganda,
			wantValid:   true,
			wantStatus:  domain.CorridorStatusAllowed,
			wantMessage: "Transfer corridor is valid",
		},
		{
			name:        "Uganda to China is allowed",
			from:        domain.CountryUganda,
			to:          domain.CountryChina,
			wantValid:   true,
			wantStatus:  domain.CorridorStatusAllowed,
			wantMessage: "Transfer corridor is valid",
		},
		{
			name:        "China to Uganda is allowed",
			from:        domain.CountryChina,
			to:          domain.CountryUganda,
			wantValid:   true,
			wantStatus:  domain.CorridorStatusAllowed,
			wantMessage: "Transfer corridor is valid",
		},
		{
			name:        "USA to China is blocked",
			from:        domain.CountryUSA,
			to:          domain.CountryChina,
			wantBlocked: true,
			wantStatus:  domain.CorridorStatusBlocked,
			wantMessage: "Transfers between USA and China are not currently supported",
		},
		{
			name:        "China to USA is blocked",
			from:        domain.CountryChina,
			to:          domain.CountryUSA,
			wantBlocked: true,
			wantStatus:  domain.CorridorStatusBlocked,
			wantMessage: "Transfers between China and USA are not currently supported",
		},
		{
			name:        "Unknown destination is not available",
			from:        domain.CountryUganda,
			to:          "KE",
			wantStatus:  domain.CorridorStatusUnspecified,
			wantMessage: "Transfer route from Uganda to KE is not available",
		},
		{
			name:        "Unknown source is not available",
			from:        "GB",
			to:          domain.CountryUSA,
			wantStatus:  domain.CorridorStatusUnspecified,
			wantMessage: "Transfer route from GB to USA is not available",
		},
		{
			name:        "Empty codes are not available",
			from:        "",
			to:          domain.CountryUSA,
			wantStatus:  domain.CorridorStatusUnspecified,
			wantMessage: "Transfer route from  to USA is not available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := r.ValidateCorridor(tt.from, tt.to)

			assert.Equal(t, tt.wantValid, result.Valid)
			assert.Equal(t, tt.wantBlocked, result.Blocked)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantMessage, result.Message)
			assert.Equal(t, domain.Corridor{From: tt.from, To: tt.to}, result.Corridor)
		})
	}
}

func TestValidateCorridor_UnspecifiedRouteIsNotBlocked(t *testing.T) {
	// A registry where UG -> CN is simply missing from both tables
	r, err := NewRegistry(
		[]domain.Corridor{{From: domain.CountryUganda, To: domain.CountryUSA}},
		[]domain.Corridor{{From: domain.CountryUSA, To: domain.CountryChina}},
	)
	require.NoError(t, err)

	unspecified := r.ValidateCorridor(domain.CountryUganda, domain.CountryChina)
	blocked := r.ValidateCorridor(domain.CountryUSA, domain.CountryChina)

	assert.False(t, unspecified.Valid)
	assert.False(t, unspecified.Blocked)
	assert.Equal(t, "Transfer route from Uganda to China is not available", unspecified.Message)

	assert.False(t, blocked.Valid)
	assert.True(t, blocked.Blocked)
	assert.NotEqual(t, unspecified.Message, blocked.Message)
}

func TestIsCorridorAllowed_MatchesValidateCorridor(t *testing.T) {
	r := Default()

	for _, from := range allCountries {
		for _, to := range allCountries {
			assert.Equal(t, r.ValidateCorridor(from, to).Valid, r.IsCorridorAllowed(from, to),
				"boolean collapse mismatch for %s -> %s", from, to)
		}
	}
}

func TestValidateCorridor_UnknownCodesNeverValid(t *testing.T) {
	r := Default()
	unknown := []domain.Country{"", "KE", "us", "USA", "XX"}

	for _, u := range unknown {
		for _, c := range allCountries {
			assert.False(t, r.ValidateCorridor(u, c).Valid, "%q -> %s", u, c)
			assert.False(t, r.ValidateCorridor(c, u).Valid, "%s -> %q", c, u)
		}
	}
}

func TestValidateCorridor_Idempotent(t *testing.T) {
	r := Default()

	first := r.ValidateCorridor(domain.CountryUSA, domain.CountryChina)
	second := r.ValidateCorridor(domain.CountryUSA, domain.CountryChina)
	assert.Equal(t, first, second)
}

func TestAllowedDestinations(t *testing.T) {
	r := Default()

	assert.ElementsMatch(t, []domain.Country{domain.CountryUSA, domain.CountryChina}, r.AllowedDestinations(domain.CountryUganda))
	assert.ElementsMatch(t, []domain.Country{domain.CountryUganda}, r.AllowedDestinations(domain.CountryUSA))
	assert.ElementsMatch(t, []domain.Country{domain.CountryUganda}, r.AllowedDestinations(domain.CountryChina))
	assert.Empty(t, r.AllowedDestinations("KE"))
}

func TestBlockedDestinations(t *testing.T) {
	r := Default()

	assert.ElementsMatch(t, []domain.Country{domain.CountryChina}, r.BlockedDestinations(domain.CountryUSA))
	assert.ElementsMatch(t, []domain.Country{domain.CountryUSA}, r.BlockedDestinations(domain.CountryChina))
	assert.Empty(t, r.BlockedDestinations(domain.CountryUganda))
	assert.NotNil(t, r.BlockedDestinations(domain.CountryUganda))
}

func TestDestinations_CallerCannotMutateTables(t *testing.T) {
	r := Default()

	dests := r.AllowedDestinations(domain.CountryUganda)
	require.NotEmpty(t, dests)
	dests[0] = "XX"

	assert.ElementsMatch(t, []domain.Country{domain.CountryUSA, domain.CountryChina}, r.AllowedDestinations(domain.CountryUganda))
}

func TestNewRegistry_RejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name    string
		allowed []domain.Corridor
		blocked []domain.Corridor
		wantErr error
		errMsg  string
	}{
		{
			name:    "Overlapping tables",
			allowed: []domain.Corridor{{From: domain.CountryUSA, To: domain.CountryChina}},
			blocked: []domain.Corridor{{From: domain.CountryUSA, To: domain.CountryChina}},
			errMsg:  "both allowed and blocked",
		},
		{
			name:    "Same country corridor",
			allowed: []domain.Corridor{{From: domain.CountryUganda, To: domain.CountryUganda}},
			wantErr: domain.ErrSameCountryRoute,
		},
		{
			name:    "Unsupported country",
			blocked: []domain.Corridor{{From: domain.CountryUganda, To: "KE"}},
			wantErr: domain.ErrInvalidCountry,
		},
		{
			name: "Duplicate entry",
			allowed: []domain.Corridor{
				{From: domain.CountryUganda, To: domain.CountryUSA},
				{From: domain.CountryUganda, To: domain.CountryUSA},
			},
			errMsg: "listed twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegistry(tt.allowed, tt.blocked)

			require.Error(t, err)
			assert.Nil(t, r)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
			}
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestDefault_TablesAreDisjoint(t *testing.T) {
	r := Default()

	for _, c := range DefaultBlocked {
		assert.False(t, r.IsCorridorAllowed(c.From, c.To), "blocked corridor %s must not be allowed", c)
	}
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	r := Default()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = r.ValidateCorridor(domain.CountryUganda, domain.CountryUSA)
				_ = r.AllowedDestinations(domain.CountryUganda)
			}
		}()
	}
	wg.Wait()

	assert.True(t, r.IsCorridorAllowed(domain.CountryUganda, domain.CountryUSA))
}
