package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/remitflow/wallet-backend/internal/adapter/backend"
	"github.com/remitflow/wallet-backend/internal/domain"
	"github.com/remitflow/wallet-backend/internal/usecase/transfer"
)

// Server implements the TransferService gRPC server
type Server struct {
	TransferService *transfer.TransferService
}

var _ TransferServiceServer = (*Server)(nil)

// NewServer creates a new gRPC server instance
func NewServer(transferService *transfer.TransferService) *Server {
	return &Server{TransferService: transferService}
}

// ValidateCorridor handles the ValidateCorridor RPC
// A rejected corridor is a normal answer here, not an error
func (s *Server) ValidateCorridor(ctx context.Context, req *ValidateCorridorRequest) (*ValidateCorridorResponse, error) {
	from, to, err := parseRoute(req.SourceCountry, req.DestinationCountry)
	if err != nil {
		return nil, mapError(err)
	}

	result := s.TransferService.ValidateCorridor(from, to)

	return &ValidateCorridorResponse{
		Valid:   result.Valid,
		Blocked: result.Blocked,
		Status:  string(result.Status),
		Message: result.Message,
	}, nil
}

// ListDestinations handles the ListDestinations RPC
func (s *Server) ListDestinations(ctx context.Context, req *ListDestinationsRequest) (*ListDestinationsResponse, error) {
	from, err := domain.ParseCountry(req.SourceCountry)
	if err != nil {
		return nil, mapError(err)
	}

	destinations := s.TransferService.Destinations(from)

	return &ListDestinationsResponse{
		SourceCountry: string(from),
		Allowed:       countriesToProto(destinations.Allowed),
		Blocked:       countriesToProto(destinations.Blocked),
	}, nil
}

// GetQuote handles the GetQuote RPC
func (s *Server) GetQuote(ctx context.Context, req *GetQuoteRequest) (*GetQuoteResponse, error) {
	from, to, err := parseRoute(req.SourceCountry, req.DestinationCountry)
	if err != nil {
		return nil, mapError(err)
	}

	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		return nil, mapError(err)
	}

	result, err := s.TransferService.PrepareQuote(ctx, transfer.QuoteInput{
		SourceCountry:      from,
		DestinationCountry: to,
		Amount:             req.Amount,
		Currency:           currency,
	})
	if err != nil {
		return nil, mapError(err)
	}

	lines := make([]*SummaryLine, 0, len(result.SummaryLines))
	for _, line := range result.SummaryLines {
		lines = append(lines, &SummaryLine{Label: line.Label, Value: line.Value})
	}

	resp := &GetQuoteResponse{
		Amount:          result.Summary.Amount.StringFixed(2),
		Currency:        string(result.Summary.Currency),
		FeeRate:         result.Summary.FeeRate.String(),
		Fee:             result.Summary.Fee.StringFixed(2),
		Total:           result.Summary.Total.StringFixed(2),
		SummaryLines:    lines,
		RateUnavailable: result.RateUnavailable,
	}

	if result.Exchange != nil && result.Presentable != nil {
		resp.Exchange = &ExchangeRate{
			SourceCurrency: string(result.Exchange.SourceCurrency),
			TargetCurrency: string(result.Exchange.TargetCurrency),
			Rate:           result.Exchange.Rate.String(),
			TargetAmount:   result.Exchange.TargetAmount.String(),
			RateLine:       result.Presentable.RateLine,
			TargetDisplay:  result.Presentable.TargetAmount,
			FetchedAt:      timestamppb.New(result.Exchange.FetchedAt),
		}
	}

	return resp, nil
}

// SendMoney handles the SendMoney RPC
func (s *Server) SendMoney(ctx context.Context, req *SendMoneyRequest) (*SendMoneyResponse, error) {
	// Parse optional client supplied request ID
	var requestID uuid.UUID
	if req.RequestId != "" {
		parsedID, err := uuid.Parse(req.RequestId)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid request_id format: %v", err)
		}
		requestID = parsedID
	}

	// Country and currency codes are checked by request validation
	transferReq := domain.TransferRequest{
		ID:                 requestID,
		SourceCountry:      domain.Country(req.SourceCountry),
		DestinationCountry: domain.Country(req.DestinationCountry),
		RecipientEmail:     req.RecipientEmail,
		RecipientName:      req.RecipientName,
		Amount:             req.Amount,
		Currency:           domain.Currency(req.Currency),
		Description:        req.Description,
	}

	receipt, err := s.TransferService.SendMoney(ctx, transferReq)
	if err != nil {
		return nil, mapError(err)
	}

	return &SendMoneyResponse{
		Reference:   receipt.Reference,
		Status:      string(receipt.Status),
		Message:     receipt.Message,
		SubmittedAt: timestamppb.New(receipt.SubmittedAt),
	}, nil
}

func parseRoute(source, destination string) (domain.Country, domain.Country, error) {
	from, err := domain.ParseCountry(source)
	if err != nil {
		return "", "", err
	}
	to, err := domain.ParseCountry(destination)
	if err != nil {
		return "", "", err
	}
	return from, to, nil
}

// countriesToProto converts country codes to destination options with display metadata
func countriesToProto(countries []domain.Country) []*Country {
	out := make([]*Country, 0, len(countries))
	for _, code := range countries {
		out = append(out, &Country{
			Code:     string(code),
			Name:     code.Name(),
			Flag:     code.Flag(),
			Currency: string(code.HomeCurrency()),
		})
	}
	return out
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	errorMsg := err.Error()

	switch {
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidCountry),
		errors.Is(err, domain.ErrInvalidCurrency):
		return status.Errorf(codes.InvalidArgument, "%s", errorMsg)

	// Corridor rejections: the request is well formed but the route is closed
	case errors.Is(err, domain.ErrSameCountryRoute),
		errors.Is(err, domain.ErrBlockedRoute),
		errors.Is(err, domain.ErrUnspecifiedRoute):
		return status.Errorf(codes.FailedPrecondition, "%s", errorMsg)

	case errors.Is(err, domain.ErrRateUnavailable):
		return status.Errorf(codes.Unavailable, "%s", errorMsg)

	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "%s", errorMsg)
	case errors.Is(err, context.Canceled):
		return status.Errorf(codes.Canceled, "%s", errorMsg)
	}

	// The payment service answered with a refusal
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return status.Errorf(codes.FailedPrecondition, "%s", errorMsg)
		}
		return status.Errorf(codes.Unavailable, "%s", errorMsg)
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", errorMsg)
}
