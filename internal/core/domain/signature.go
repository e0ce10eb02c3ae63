package domain

import (
	"time"

	"github.com/google/uuid"
)

// SignaturePurpose tags why a signature was captured.
type SignaturePurpose string

const (
	PurposeAcknowledgment SignaturePurpose = "ACKNOWLEDGMENT"
	PurposeApproval       SignaturePurpose = "APPROVAL"
	PurposeTransfer       SignaturePurpose = "TRANSFER"
	PurposeReturn         SignaturePurpose = "RETURN"
)

// SignatureAlgorithm identifies the digest primitive used for a record.
type SignatureAlgorithm string

const (
	AlgorithmSHA256     SignatureAlgorithm = "SHA256"
	AlgorithmHMACSHA256 SignatureAlgorithm = "HMAC-SHA256"
)

// SignatureVersion is the current signature format version.
const SignatureVersion = "1.0"

// SignatureRecord is the durable, auditable counterpart to the ephemeral
// acknowledgment token. Unlike the token it has an explicit lifecycle:
// it can be invalidated, it can expire, and it can be archived, each
// independently of the others.
type SignatureRecord struct {
	ID                 uuid.UUID          `json:"id"`
	SignatureData      string             `json:"signature_data"` // base64 token as issued
	SignatureHash      string             `json:"signature_hash"` // unique storage key, never re-derivable
	AssetID            int64              `json:"asset_id"`
	AcknowledgmentID   *int64             `json:"acknowledgment_id,omitempty"`
	SignerID           int64              `json:"signer_id"`
	Purpose            SignaturePurpose   `json:"purpose"`
	Algorithm          SignatureAlgorithm `json:"algorithm"`
	Version            string             `json:"version"`
	SignedAt           time.Time          `json:"signed_at"`
	ExpiresAt          *time.Time         `json:"expires_at,omitempty"`
	IsValid            bool               `json:"is_valid"`
	ValidationAttempts int                `json:"validation_attempts"`
	LastValidatedAt    *time.Time         `json:"last_validated_at,omitempty"`
	RevocationReason   *string            `json:"revocation_reason,omitempty"`
	RevokedAt          *time.Time         `json:"revoked_at,omitempty"`
	IsArchived         bool               `json:"is_archived"`
	ArchiveReason      *string            `json:"archive_reason,omitempty"`
	ArchivedAt         *time.Time         `json:"archived_at,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
}

// NewSignatureRecord returns a fully initialized record. All defaults are
// applied here, not by the persistence layer: a record is valid, unarchived,
// at version 1.0 and with zero validation attempts from the moment it exists.
func NewSignatureRecord(
	signatureData, signatureHash string,
	assetID, signerID int64,
	acknowledgmentID *int64,
	purpose SignaturePurpose,
	algorithm SignatureAlgorithm,
	expiresAt *time.Time,
) *SignatureRecord {
	now := time.Now()
	return &SignatureRecord{
		ID:               uuid.New(),
		SignatureData:    signatureData,
		SignatureHash:    signatureHash,
		AssetID:          assetID,
		AcknowledgmentID: acknowledgmentID,
		SignerID:         signerID,
		Purpose:          purpose,
		Algorithm:        algorithm,
		Version:          SignatureVersion,
		SignedAt:         now,
		ExpiresAt:        expiresAt,
		IsValid:          true,
		IsArchived:       false,
		CreatedAt:        now,
	}
}

// IsExpired reports whether the record has passed its expiration timestamp.
// Expiry is always computed against the clock, never cached in a flag.
func (r *SignatureRecord) IsExpired() bool {
	return r.ExpiresAt != nil && time.Now().After(*r.ExpiresAt)
}

// IsRevoked reports whether the record carries a revocation timestamp.
func (r *SignatureRecord) IsRevoked() bool {
	return r.RevokedAt != nil
}

// IsCurrentlyValid is the single authoritative validity gate: valid flag set,
// not expired, not revoked, not archived. External callers must use this
// predicate for access decisions rather than re-deriving it from the fields.
func (r *SignatureRecord) IsCurrentlyValid() bool {
	return r.IsValid && !r.IsExpired() && !r.IsRevoked() && !r.IsArchived
}

// MarkAsInvalid flips the validity kill switch and records the revocation.
// In-memory transition only; the repository applies the same transition as a
// single guarded UPDATE so concurrent writers cannot lose it.
func (r *SignatureRecord) MarkAsInvalid(reason string) {
	now := time.Now()
	r.IsValid = false
	r.RevocationReason = &reason
	r.RevokedAt = &now
}

// Archive soft-deletes the record. Archival is orthogonal to validity and
// can be applied from any state; records are never physically deleted.
func (r *SignatureRecord) Archive(reason string) {
	now := time.Now()
	r.IsArchived = true
	r.ArchiveReason = &reason
	r.ArchivedAt = &now
}

// RecordValidationAttempt bumps the monotonic attempt counter.
func (r *SignatureRecord) RecordValidationAttempt() {
	now := time.Now()
	r.ValidationAttempts++
	r.LastValidatedAt = &now
}

// AgeInDays returns how many whole days old the signature is.
func (r *SignatureRecord) AgeInDays() int64 {
	return int64(time.Since(r.SignedAt).Hours() / 24)
}

// DaysUntilExpiration returns the whole days remaining before expiry,
// nil when no expiration is set and 0 when already expired.
func (r *SignatureRecord) DaysUntilExpiration() *int64 {
	if r.ExpiresAt == nil {
		return nil
	}
	days := int64(time.Until(*r.ExpiresAt).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return &days
}
