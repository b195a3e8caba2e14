package quote

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/remitflow/wallet-backend/internal/domain"
)

var (
	printer  = message.NewPrinter(language.English)
	thousand = big.NewInt(1000)
)

// FormatAmount renders an amount with its currency symbol and grouped digits
// e.g. $1,234.50 or USh3,700,000.00
func FormatAmount(amount decimal.Decimal, currency domain.Currency) string {
	rounded := amount.Round(amountPlaces)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	fixed := rounded.StringFixed(amountPlaces)
	fraction := fixed[strings.IndexByte(fixed, '.')+1:]

	return fmt.Sprintf("%s%s%s.%s", sign, currency.Symbol(), groupDigits(rounded.BigInt()), fraction)
}

// groupDigits renders a non-negative integer with thousands separators
func groupDigits(n *big.Int) string {
	if n.IsInt64() {
		return printer.Sprintf("%d", n.Int64())
	}
	q, r := new(big.Int).QuoRem(n, thousand, new(big.Int))
	return groupDigits(q) + "," + fmt.Sprintf("%03d", r.Int64())
}

// SummaryLine is one labelled row of the transfer summary
type SummaryLine struct {
	Label string
	Value string
}

// FormatSummary renders the transfer summary rows shown before submission
func FormatSummary(s domain.TransferSummary) []SummaryLine {
	percent := s.FeeRate.Mul(decimal.NewFromInt(100))

	return []SummaryLine{
		{Label: "Transfer Amount", Value: fixedWithCode(s.Amount, s.Currency)},
		{Label: fmt.Sprintf("Transfer Fee (%s%%)", percent.String()), Value: fixedWithCode(s.Fee, s.Currency)},
		{Label: "Total Amount", Value: fixedWithCode(s.Total, s.Currency)},
	}
}

func fixedWithCode(amount decimal.Decimal, currency domain.Currency) string {
	return fmt.Sprintf("%s %s", amount.StringFixed(amountPlaces), currency)
}
