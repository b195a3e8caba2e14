// Package rest exposes the read-only corridor and fee endpoints over HTTP,
// plus health and Prometheus metrics.
package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/remitflow/wallet-backend/internal/domain"
	"github.com/remitflow/wallet-backend/internal/usecase/quote"
	"github.com/remitflow/wallet-backend/internal/usecase/transfer"
)

// Handler serves the HTTP endpoints
type Handler struct {
	Transfers *transfer.TransferService
	Metrics   http.Handler // Optional
	Log       *logrus.Entry
}

// NewHandler creates a new Handler instance
func NewHandler(transfers *transfer.TransferService, metrics http.Handler, log *logrus.Entry) *Handler {
	return &Handler{
		Transfers: transfers,
		Metrics:   metrics,
		Log:       log.WithField("component", "http"),
	}
}

// envelope is the response shape shared with the wallet backend
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type countryOption struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Flag     string `json:"flag"`
	Currency string `json:"currency"`
}

type destinationsData struct {
	SourceCountry string          `json:"sourceCountry"`
	Allowed       []countryOption `json:"allowed"`
	Blocked       []countryOption `json:"blocked"`
}

type validateCorridorBody struct {
	FromCountry string `json:"fromCountry"`
	ToCountry   string `json:"toCountry"`
}

type corridorData struct {
	Valid   bool   `json:"valid"`
	Blocked bool   `json:"blocked"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type summaryLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type feeSummaryData struct {
	Amount    string            `json:"amount"`
	Currency  string            `json:"currency"`
	FeeRate   string            `json:"feeRate"`
	Fee       string            `json:"fee"`
	Total     string            `json:"total"`
	Lines     []summaryLine     `json:"lines"`
	Formatted map[string]string `json:"formatted"`
}

// Router builds the chi router
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	r.Route("/payment", func(r chi.Router) {
		r.Get("/allowed-destinations/{country}", h.handleAllowedDestinations)
		r.Post("/validate-corridor", h.handleValidateCorridor)
		r.Get("/fee-summary", h.handleFeeSummary)
	})

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleAllowedDestinations(w http.ResponseWriter, r *http.Request) {
	from, err := domain.ParseCountry(chi.URLParam(r, "country"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	destinations := h.Transfers.Destinations(from)

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data: destinationsData{
			SourceCountry: string(from),
			Allowed:       countryOptions(destinations.Allowed),
			Blocked:       countryOptions(destinations.Blocked),
		},
	})
}

// handleValidateCorridor answers 200 for every well formed request,
// a closed corridor is reported in the body
func (h *Handler) handleValidateCorridor(w http.ResponseWriter, r *http.Request) {
	var body validateCorridorBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	from, err := domain.ParseCountry(body.FromCountry)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	to, err := domain.ParseCountry(body.ToCountry)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result := h.Transfers.ValidateCorridor(from, to)

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: result.Message,
		Data: corridorData{
			Valid:   result.Valid,
			Blocked: result.Blocked,
			Status:  string(result.Status),
			Message: result.Message,
		},
	})
}

// handleFeeSummary computes the fee breakdown for ?amount=&currency=
// A missing or non-numeric amount yields a zero summary
func (h *Handler) handleFeeSummary(w http.ResponseWriter, r *http.Request) {
	currency, err := domain.ParseCurrency(r.URL.Query().Get("currency"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	summary := h.Transfers.Calculator.SummaryFromInput(r.URL.Query().Get("amount"), currency)

	lines := make([]summaryLine, 0, 3)
	for _, line := range quote.FormatSummary(summary) {
		lines = append(lines, summaryLine{Label: line.Label, Value: line.Value})
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data: feeSummaryData{
			Amount:   summary.Amount.StringFixed(2),
			Currency: string(summary.Currency),
			FeeRate:  summary.FeeRate.String(),
			Fee:      summary.Fee.StringFixed(2),
			Total:    summary.Total.StringFixed(2),
			Lines:    lines,
			Formatted: map[string]string{
				"amount": quote.FormatAmount(summary.Amount, currency),
				"fee":    quote.FormatAmount(summary.Fee, currency),
				"total":  quote.FormatAmount(summary.Total, currency),
			},
		},
	})
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		h.Log.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"duration":   time.Since(start),
			"request_id": middleware.GetReqID(r.Context()),
		}).Debug("http request")
	})
}

func countryOptions(countries []domain.Country) []countryOption {
	out := make([]countryOption, 0, len(countries))
	for _, c := range countries {
		out = append(out, countryOption{
			Code:     string(c),
			Name:     c.Name(),
			Flag:     c.Flag(),
			Currency: string(c.HomeCurrency()),
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, envelope{Success: false, Message: err.Error()})
}
