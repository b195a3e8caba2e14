package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferRequest represents a send-money request as built from user input.
// It is validated before submission and never persisted by this service.
type TransferRequest struct {
	ID                 uuid.UUID
	SourceCountry      Country  `validate:"required,oneof=UG US CN"`
	DestinationCountry Country  `validate:"required,oneof=UG US CN"`
	RecipientEmail     string   `validate:"required,email"`
	RecipientName      string   `validate:"required,min=2"`
	Amount             string   `validate:"required,positive_amount,amount_range"` // Raw user input, parsed with ParsedAmount
	Currency           Currency `validate:"required,oneof=USD UGX CNY"`
	Description        string   `validate:"max=200"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("positive_amount", func(fl validator.FieldLevel) bool {
		_, err := parsePositive(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("amount_range", func(fl validator.FieldLevel) bool {
		_, err := ParseAmount(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// Accepted amount shape. Exponent notation is never accepted.
const (
	MaxAmountIntegerDigits = 15
	MaxAmountDecimalPlaces = 8
)

var amountCeiling = decimal.New(1, MaxAmountIntegerDigits)

// fieldMessages maps "Field.tag" to the message shown next to the form field
var fieldMessages = map[string]string{
	"SourceCountry.required":      "Please select source country",
	"SourceCountry.oneof":         "Please select source country",
	"DestinationCountry.required": "Please select recipient country",
	"DestinationCountry.oneof":    "Please select recipient country",
	"RecipientEmail.required":     "Recipient email is required",
	"RecipientEmail.email":        "Invalid email address",
	"RecipientName.required":      "Recipient name must be at least 2 characters",
	"RecipientName.min":           "Recipient name must be at least 2 characters",
	"Amount.required":             "Amount is required",
	"Amount.positive_amount":      "Amount must be greater than 0",
	"Amount.amount_range":         "Amount must have at most 15 digits before and 8 after the decimal point",
	"Currency.required":           "Please select a currency",
	"Currency.oneof":              "Please select a currency",
	"Description.max":             "Description must not exceed 200 characters",
}

// Normalize trims user input and lower-cases the recipient email
func (r *TransferRequest) Normalize() {
	r.RecipientEmail = strings.ToLower(strings.TrimSpace(r.RecipientEmail))
	r.RecipientName = strings.TrimSpace(r.RecipientName)
	r.Amount = strings.TrimSpace(r.Amount)
	r.Description = strings.TrimSpace(r.Description)
	r.SourceCountry = Country(strings.ToUpper(strings.TrimSpace(string(r.SourceCountry))))
	r.DestinationCountry = Country(strings.ToUpper(strings.TrimSpace(string(r.DestinationCountry))))
	r.Currency = Currency(strings.ToUpper(strings.TrimSpace(string(r.Currency))))
}

// Validate ensures the request adheres to the send-money form rules.
// Returns an error wrapping ErrInvalidRequest listing every failing field.
// A non-positive or non-numeric amount also wraps ErrInvalidAmount.
func (r *TransferRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	messages := make([]string, 0, len(fieldErrs))
	amountInvalid := false
	for _, fe := range fieldErrs {
		if fe.StructField() == "Amount" {
			amountInvalid = true
		}
		msg, ok := fieldMessages[fe.StructField()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s failed on %s", fe.StructField(), fe.Tag())
		}
		messages = append(messages, msg)
	}

	joined := strings.Join(messages, "; ")
	if amountInvalid {
		return fmt.Errorf("%w: %w: %s", ErrInvalidRequest, ErrInvalidAmount, joined)
	}
	return fmt.Errorf("%w: %s", ErrInvalidRequest, joined)
}

// ParsedAmount returns the request amount as a decimal
func (r *TransferRequest) ParsedAmount() (decimal.Decimal, error) {
	return ParseAmount(r.Amount)
}

// ParseAmount parses raw user input into a strictly positive decimal amount
// of at most MaxAmountIntegerDigits integer digits and MaxAmountDecimalPlaces decimals
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := parsePositive(raw)
	if err != nil {
		return decimal.Zero, err
	}

	if amount.GreaterThanOrEqual(amountCeiling) || -amount.Exponent() > MaxAmountDecimalPlaces {
		return decimal.Zero, fmt.Errorf("%w: at most %d integer digits and %d decimal places",
			ErrInvalidAmount, MaxAmountIntegerDigits, MaxAmountDecimalPlaces)
	}

	return amount, nil
}

func parsePositive(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.ContainsAny(raw, "eE") {
		return decimal.Zero, ErrInvalidAmount
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidAmount
	}

	return amount, nil
}
