package grpc

import "google.golang.org/protobuf/types/known/timestamppb"

// Messages of remitflow.v1.TransferService
// Amounts and rates travel as decimal strings

type ValidateCorridorRequest struct {
	SourceCountry      string `json:"source_country"`
	DestinationCountry string `json:"destination_country"`
}

type ValidateCorridorResponse struct {
	Valid   bool   `json:"valid"`
	Blocked bool   `json:"blocked"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ListDestinationsRequest struct {
	SourceCountry string `json:"source_country"`
}

// Country is a destination option with its display metadata
type Country struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Flag     string `json:"flag"`
	Currency string `json:"currency"`
}

type ListDestinationsResponse struct {
	SourceCountry string     `json:"source_country"`
	Allowed       []*Country `json:"allowed"`
	Blocked       []*Country `json:"blocked"`
}

type GetQuoteRequest struct {
	SourceCountry      string `json:"source_country"`
	DestinationCountry string `json:"destination_country"`
	Amount             string `json:"amount"`
	Currency           string `json:"currency"`
}

type SummaryLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ExchangeRate struct {
	SourceCurrency string                 `json:"source_currency"`
	TargetCurrency string                 `json:"target_currency"`
	Rate           string                 `json:"rate"`
	TargetAmount   string                 `json:"target_amount"`
	RateLine       string                 `json:"rate_line"`
	TargetDisplay  string                 `json:"target_display"`
	FetchedAt      *timestamppb.Timestamp `json:"fetched_at"`
}

type GetQuoteResponse struct {
	Amount          string         `json:"amount"`
	Currency        string         `json:"currency"`
	FeeRate         string         `json:"fee_rate"`
	Fee             string         `json:"fee"`
	Total           string         `json:"total"`
	SummaryLines    []*SummaryLine `json:"summary_lines"`
	Exchange        *ExchangeRate  `json:"exchange,omitempty"`
	RateUnavailable bool           `json:"rate_unavailable"`
}

type SendMoneyRequest struct {
	RequestId          string `json:"request_id"`
	SourceCountry      string `json:"source_country"`
	DestinationCountry string `json:"destination_country"`
	RecipientEmail     string `json:"recipient_email"`
	RecipientName      string `json:"recipient_name"`
	Amount             string `json:"amount"`
	Currency           string `json:"currency"`
	Description        string `json:"description"`
}

type SendMoneyResponse struct {
	Reference   string                 `json:"reference"`
	Status      string                 `json:"status"`
	Message     string                 `json:"message"`
	SubmittedAt *timestamppb.Timestamp `json:"submitted_at"`
}
