package domain

import "time"

// AcknowledgmentContext is a read-only view of an asset acknowledgment as
// recorded by the inventory store. This service never writes it; it only
// reads the fields that go into the signature payload.
type AcknowledgmentContext struct {
	ID             int64     `json:"id"`
	AssetID        int64     `json:"asset_id"`
	SerialNumber   string    `json:"serial_number"`
	IssuedTo       string    `json:"issued_to"`
	Station        string    `json:"station"`
	Notes          string    `json:"notes,omitempty"`
	AcknowledgedBy int64     `json:"acknowledged_by"`
	AcknowledgedAt time.Time `json:"acknowledged_at"`
}

// Signer is the authenticated principal on whose behalf signatures are
// generated and validated. It is resolved by the auth layer and treated as
// opaque here: only ID and Email participate in the signature payload.
type Signer struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// VerificationResult is the structured outcome of signature verification.
// Callers always get the full result, never a bare boolean, so that a failed
// verification can be diagnosed.
type VerificationResult struct {
	Valid        bool       `json:"is_valid"`
	AssetID      int64      `json:"asset_id"`
	SignedBy     *Signer    `json:"signed_by,omitempty"`
	SignedAt     *time.Time `json:"signed_at,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
}

// SignatureStatistics aggregates signature counts for one signer.
type SignatureStatistics struct {
	TotalSignatures   int64      `json:"total_signatures"`
	ValidSignatures   int64      `json:"valid_signatures"`
	InvalidSignatures int64      `json:"invalid_signatures"`
	LastSignatureAt   *time.Time `json:"last_signature_at,omitempty"`
	ValidityRate      float64    `json:"validity_rate"` // percentage, 0-100
}
