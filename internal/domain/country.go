package domain

import "strings"

// Country represents a supported country code (ISO 3166-1 alpha-2)
type Country string

const (
	CountryUganda Country = "UG"
	CountryUSA    Country = "US"
	CountryChina  Country = "CN"
)

// Currency represents a supported currency code (ISO 4217)
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyUGX Currency = "UGX"
	CurrencyCNY Currency = "CNY"
)

// CountryInfo holds the display metadata of a supported country
type CountryInfo struct {
	Code     Country
	Name     string
	Flag     string
	Currency Currency // Exactly one home currency per country
}

// CurrencyInfo holds the display metadata of a supported currency
type CurrencyInfo struct {
	Code   Currency
	Name   string
	Symbol string
}

// Ordered catalogs. The order is the one used when listing options.
var (
	countryCatalog = []CountryInfo{
		{Code: CountryUganda, Name: "Uganda", Flag: "🇺🇬", Currency: CurrencyUGX},
		{Code: CountryUSA, Name: "USA", Flag: "🇺🇸", Currency: CurrencyUSD},
		{Code: CountryChina, Name: "China", Flag: "🇨🇳", Currency: CurrencyCNY},
	}

	currencyCatalog = []CurrencyInfo{
		{Code: CurrencyUSD, Name: "US Dollar", Symbol: "$"},
		{Code: CurrencyUGX, Name: "Ugandan Shilling", Symbol: "USh"},
		{Code: CurrencyCNY, Name: "Chinese Yuan", Symbol: "¥"},
	}
)

// Countries returns the closed set of supported countries
func Countries() []CountryInfo {
	out := make([]CountryInfo, len(countryCatalog))
	copy(out, countryCatalog)
	return out
}

// Currencies returns the closed set of supported currencies
func Currencies() []CurrencyInfo {
	out := make([]CurrencyInfo, len(currencyCatalog))
	copy(out, currencyCatalog)
	return out
}

// ParseCountry normalizes a raw country code and checks it is supported
func ParseCountry(raw string) (Country, error) {
	c := Country(strings.ToUpper(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", ErrInvalidCountry
	}
	return c, nil
}

// ParseCurrency normalizes a raw currency code and checks it is supported
func ParseCurrency(raw string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", ErrInvalidCurrency
	}
	return c, nil
}

// Info returns the catalog entry for the country
func (c Country) Info() (CountryInfo, bool) {
	for _, info := range countryCatalog {
		if info.Code == c {
			return info, true
		}
	}
	return CountryInfo{}, false
}

// Valid reports whether the country belongs to the supported set
func (c Country) Valid() bool {
	_, ok := c.Info()
	return ok
}

// Name returns the display name, or the raw code for unknown countries
func (c Country) Name() string {
	if info, ok := c.Info(); ok {
		return info.Name
	}
	return string(c)
}

// Flag returns the emoji flag, empty for unknown countries
func (c Country) Flag() string {
	info, _ := c.Info()
	return info.Flag
}

// HomeCurrency returns the currency of the country, empty if unknown
func (c Country) HomeCurrency() Currency {
	info, _ := c.Info()
	return info.Currency
}

// Info returns the catalog entry for the currency
func (c Currency) Info() (CurrencyInfo, bool) {
	for _, info := range currencyCatalog {
		if info.Code == c {
			return info, true
		}
	}
	return CurrencyInfo{}, false
}

// Valid reports whether the currency belongs to the supported set
func (c Currency) Valid() bool {
	_, ok := c.Info()
	return ok
}

// Symbol returns the display symbol, or the raw code for unknown currencies
func (c Currency) Symbol() string {
	if info, ok := c.Info(); ok {
		return info.Symbol
	}
	return string(c)
}
