package transfer

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/gowebpki/jcs"

	"github.com/remitflow/wallet-backend/internal/domain"
)

// fingerprintPayload is the stable subset of a request used for the idempotency key
type fingerprintPayload struct {
	RequestID          string `json:"request_id"`
	SourceCountry      string `json:"source_country"`
	DestinationCountry string `json:"destination_country"`
	RecipientEmail     string `json:"recipient_email"`
	RecipientName      string `json:"recipient_name"`
	Amount             string `json:"amount"`
	Currency           string `json:"currency"`
	Description        string `json:"description"`
}

// IdempotencyKey hashes the RFC 8785 canonical form of a normalized request.
// Retrying the same request (same ID and payload) yields the same key.
func IdempotencyKey(req domain.TransferRequest) (string, error) {
	amount, err := req.ParsedAmount()
	if err != nil {
		return "", err
	}

	raw, err := json.Marshal(fingerprintPayload{
		RequestID:          req.ID.String(),
		SourceCountry:      string(req.SourceCountry),
		DestinationCountry: string(req.DestinationCountry),
		RecipientEmail:     req.RecipientEmail,
		RecipientName:      req.RecipientName,
		Amount:             amount.String(), // "100", "100.0" and "100.00" fingerprint alike
		Currency:           string(req.Currency),
		Description:        req.Description,
	})
	if err != nil {
		return "", err
	}

	canon, err := jcs.Transform(raw)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(canon)
	return hex.EncodeToString(sum[:]), nil
}
