package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountry_EveryCountryHasExactlyOneSupportedCurrency(t *testing.T) {
	seen := make(map[Currency]Country)

	for _, info := range Countries() {
		require.True(t, info.Currency.Valid(), "country %s has unsupported currency %s", info.Code, info.Currency)
		other, dup := seen[info.Currency]
		assert.False(t, dup, "currency %s shared by %s and %s", info.Currency, other, info.Code)
		seen[info.Currency] = info.Code
		assert.Equal(t, info.Currency, info.Code.HomeCurrency())
	}

	assert.Len(t, seen, len(Currencies()))
}

func TestCountry_Metadata(t *testing.T) {
	assert.Equal(t, "Uganda", CountryUganda.Name())
	assert.Equal(t, "USA", CountryUSA.Name())
	assert.Equal(t, "China", CountryChina.Name())
	assert.Equal(t, "🇺🇬", CountryUganda.Flag())

	// Unknown codes fall back to the raw code
	assert.Equal(t, "KE", Country("KE").Name())
	assert.Equal(t, Currency(""), Country("KE").HomeCurrency())
	assert.False(t, Country("KE").Valid())
	assert.Empty(t, Country("KE").Flag())
}

func TestCurrency_Symbol(t *testing.T) {
	assert.Equal(t, "$", CurrencyUSD.Symbol())
	assert.Equal(t, "USh", CurrencyUGX.Symbol())
	assert.Equal(t, "¥", CurrencyCNY.Symbol())
	assert.Equal(t, "EUR", Currency("EUR").Symbol())
}

func TestParseCountry(t *testing.T) {
	c, err := ParseCountry(" ug ")
	require.NoError(t, err)
	assert.Equal(t, CountryUganda, c)

	_, err = ParseCountry("KE")
	assert.ErrorIs(t, err, ErrInvalidCountry)

	_, err = ParseCountry("")
	assert.ErrorIs(t, err, ErrInvalidCountry)
}

func TestParseCurrency(t *testing.T) {
	c, err := ParseCurrency("cny")
	require.NoError(t, err)
	assert.Equal(t, CurrencyCNY, c)

	_, err = ParseCurrency("EUR")
	assert.ErrorIs(t, err, ErrInvalidCurrency)
}

func TestCatalogs_AreCopies(t *testing.T) {
	countries := Countries()
	countries[0].Name = "Changed"

	assert.Equal(t, "Uganda", CountryUganda.Name())
}
