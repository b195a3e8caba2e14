// Package backend talks to the remote wallet backend that owns exchange
// rates and performs the actual money movement.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/remitflow/wallet-backend/internal/domain"
)

const (
	exchangeRatePath = "/payment/exchange-rate"
	sendPath         = "/payment/send"

	// Upper bound on response bodies read from the backend
	maxResponseBytes = 1 << 20
)

// APIError is returned when the backend answers with a failure envelope or a non-2xx status
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend request failed: status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend request failed: status %d: %s", e.StatusCode, e.Message)
}

// Config holds client configuration
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client implements domain.ExchangeRateProvider and domain.PaymentGateway
// against the wallet backend REST API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	now        func() time.Time
}

// New creates a new backend client
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

// sendRequest is the body of POST /payment/send
type sendRequest struct {
	SourceCountry    string      `json:"senderCountry"`
	RecipientEmail   string      `json:"recipientEmail"`
	RecipientName    string      `json:"recipientName"`
	RecipientCountry string      `json:"recipientCountry"`
	Amount           json.Number `json:"amount"`
	Currency         string      `json:"currency"`
	Description      string      `json:"description"`
	Fee              json.Number `json:"fee"`
}

// Quote fetches the rate from one currency to another and the converted amount
func (c *Client) Quote(ctx context.Context, from, to domain.Currency, amount decimal.Decimal) (*domain.ExchangeQuote, error) {
	query := url.Values{}
	query.Set("fromCurrency", string(from))
	query.Set("toCurrency", string(to))
	query.Set("amount", amount.String())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+exchangeRatePath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	envelope, err := c.do(httpReq)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRateUnavailable, apiErr.Error())
		}
		return nil, err
	}

	data := envelope.Get("data")
	rate, err := decimalField(data, "rate")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRateUnavailable, err)
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("%w: backend returned rate %s", domain.ErrRateUnavailable, rate)
	}

	// The backend echoes the amounts, fall back to local math when it does not
	targetAmount, err := decimalField(data, "targetAmount")
	if err != nil {
		targetAmount = amount.Mul(rate)
	}

	return &domain.ExchangeQuote{
		SourceCurrency: currencyField(data, "sourceCurrency", from),
		TargetCurrency: currencyField(data, "targetCurrency", to),
		Rate:           rate,
		SourceAmount:   amount,
		TargetAmount:   targetAmount,
		FetchedAt:      c.now(),
	}, nil
}

// Submit performs the transfer described by the instruction
// The idempotency key lets the backend collapse retried submissions
func (c *Client) Submit(ctx context.Context, instruction domain.PaymentInstruction) (*domain.PaymentReceipt, error) {
	body, err := json.Marshal(sendRequest{
		SourceCountry:    string(instruction.SourceCountry),
		RecipientEmail:   instruction.RecipientEmail,
		RecipientName:    instruction.RecipientName,
		RecipientCountry: string(instruction.DestinationCountry),
		Amount:           json.Number(instruction.Amount.String()),
		Currency:         string(instruction.Currency),
		Description:      instruction.Description,
		Fee:              json.Number(instruction.Summary.Fee.StringFixed(2)),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotency-Key", instruction.IdempotencyKey)
	httpReq.Header.Set("X-Request-ID", instruction.RequestID.String())

	envelope, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	data := envelope.Get("data")
	reference := data.Get("reference").String()
	if reference == "" {
		reference = data.Get("_id").String()
	}
	if reference == "" {
		return nil, errors.New("backend response has no transaction reference")
	}

	status := domain.PaymentStatusPending
	if s := data.Get("status"); s.Exists() {
		status = domain.PaymentStatus(strings.ToLower(s.String()))
	}

	submittedAt := c.now()
	if ts := data.Get("createdAt"); ts.Exists() {
		if parsed, err := time.Parse(time.RFC3339, ts.String()); err == nil {
			submittedAt = parsed
		}
	}

	return &domain.PaymentReceipt{
		Reference:   reference,
		Status:      status,
		Message:     envelope.Get("message").String(),
		SubmittedAt: submittedAt,
	}, nil
}

// do sends the request and checks the {success, message, data} envelope
// Returns the parsed envelope on success
func (c *Client) do(httpReq *http.Request) (gjson.Result, error) {
	httpReq.Header.Set("Accept", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("read response: %w", err)
	}

	if !gjson.ValidBytes(respBody) {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return gjson.Result{}, &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
		}
		return gjson.Result{}, errors.New("backend returned a non-JSON response")
	}

	envelope := gjson.ParseBytes(respBody)
	message := envelope.Get("message").String()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return gjson.Result{}, &APIError{StatusCode: resp.StatusCode, Message: message}
	}
	if success := envelope.Get("success"); success.Exists() && !success.Bool() {
		return gjson.Result{}, &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	return envelope, nil
}

// decimalField reads a JSON number or numeric string without going through float64
func decimalField(data gjson.Result, path string) (decimal.Decimal, error) {
	field := data.Get(path)
	switch field.Type {
	case gjson.Number:
		return decimal.NewFromString(field.Raw)
	case gjson.String:
		return decimal.NewFromString(field.String())
	default:
		return decimal.Zero, fmt.Errorf("field %q missing or not numeric", path)
	}
}

func currencyField(data gjson.Result, path string, fallback domain.Currency) domain.Currency {
	parsed, err := domain.ParseCurrency(data.Get(path).String())
	if err != nil {
		return fallback
	}
	return parsed
}
