package dto

import (
	"time"

	"asset-signature-service/internal/core/domain"
)

// AcknowledgmentDTO carries the acknowledgment context fields that enter the
// signing payload. Used by generate (sign this) and validate (check against
// this); verify reconstructs the context from the store instead.
type AcknowledgmentDTO struct {
	ID           int64  `json:"id"`
	AssetID      int64  `json:"asset_id" binding:"required,gt=0"`
	SerialNumber string `json:"serial_number" binding:"required,max=100"`
	IssuedTo     string `json:"issued_to" binding:"required,max=200"`
	Station      string `json:"station" binding:"max=200"`
	Notes        string `json:"notes,omitempty" binding:"max=1000"`
}

// ToDomain converts the DTO to the domain acknowledgment context.
func (d *AcknowledgmentDTO) ToDomain() *domain.AcknowledgmentContext {
	return &domain.AcknowledgmentContext{
		ID:           d.ID,
		AssetID:      d.AssetID,
		SerialNumber: d.SerialNumber,
		IssuedTo:     d.IssuedTo,
		Station:      d.Station,
		Notes:        d.Notes,
	}
}

// GenerateRequest is the request body for signature generation.
type GenerateRequest struct {
	Acknowledgment AcknowledgmentDTO `json:"acknowledgment" binding:"required"`
}

// GenerateResponse carries a freshly issued signature token.
type GenerateResponse struct {
	Signature string `json:"signature"`
}

// ValidateRequest is the request body for signature validation.
type ValidateRequest struct {
	Signature      string            `json:"signature" binding:"required"`
	Acknowledgment AcknowledgmentDTO `json:"acknowledgment" binding:"required"`
}

// ValidateResponse is the boolean validation outcome.
type ValidateResponse struct {
	IsValid bool `json:"is_valid"`
}

// VerifyRequest is the request body for full verification against the store.
type VerifyRequest struct {
	Signature string `json:"signature" binding:"required"`
}

// VerificationResponse is the structured verification outcome.
type VerificationResponse struct {
	IsValid      bool            `json:"is_valid"`
	AssetID      int64           `json:"asset_id"`
	SignedBy     *SignerResponse `json:"signed_by,omitempty"`
	SignedAt     *string         `json:"signed_at,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

// SignerResponse identifies the signer in responses.
type SignerResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// HashRequest is the request body for storage hash minting.
type HashRequest struct {
	Signature string `json:"signature" binding:"required"`
	AssetID   int64  `json:"asset_id" binding:"required,gt=0"`
	SignerID  int64  `json:"signer_id" binding:"required,gt=0"`
}

// HashResponse carries the minted storage hash.
type HashResponse struct {
	Hash string `json:"hash"`
}

// CreateRecordRequest is the request body for record creation. The signer is
// the authenticated principal, never part of the body.
type CreateRecordRequest struct {
	AssetID       int64  `json:"asset_id" binding:"required,gt=0"`
	Purpose       string `json:"purpose,omitempty" binding:"omitempty,sig_purpose"`
	ExpiresInDays *int   `json:"expires_in_days,omitempty" binding:"omitempty,gt=0"`
}

// ReasonRequest is the request body for invalidate/archive operations.
type ReasonRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// RecordResponse is the response body for a signature record.
type RecordResponse struct {
	ID                  string  `json:"id"`
	SignatureData       string  `json:"signature_data"`
	SignatureHash       string  `json:"signature_hash"`
	AssetID             int64   `json:"asset_id"`
	AcknowledgmentID    *int64  `json:"acknowledgment_id,omitempty"`
	SignerID            int64   `json:"signer_id"`
	Purpose             string  `json:"purpose"`
	Algorithm           string  `json:"algorithm"`
	Version             string  `json:"version"`
	SignedAt            string  `json:"signed_at"`
	ExpiresAt           *string `json:"expires_at,omitempty"`
	IsValid             bool    `json:"is_valid"`
	IsCurrentlyValid    bool    `json:"is_currently_valid"`
	ValidationAttempts  int     `json:"validation_attempts"`
	LastValidatedAt     *string `json:"last_validated_at,omitempty"`
	RevocationReason    *string `json:"revocation_reason,omitempty"`
	RevokedAt           *string `json:"revoked_at,omitempty"`
	IsArchived          bool    `json:"is_archived"`
	ArchiveReason       *string `json:"archive_reason,omitempty"`
	ArchivedAt          *string `json:"archived_at,omitempty"`
	AgeInDays           int64   `json:"age_in_days"`
	DaysUntilExpiration *int64  `json:"days_until_expiration,omitempty"`
}

// CreateRecordResponse pairs the record with the issued token.
type CreateRecordResponse struct {
	Record RecordResponse `json:"record"`
	Token  string         `json:"token"`
}

// MetadataResponse summarizes the latest signature state of an asset.
type MetadataResponse struct {
	AssetID        int64           `json:"asset_id"`
	Record         *RecordResponse `json:"record,omitempty"`
	CurrentlyValid bool            `json:"currently_valid"`
}

// StatisticsResponse is the per-signer aggregate.
type StatisticsResponse struct {
	TotalSignatures   int64   `json:"total_signatures"`
	ValidSignatures   int64   `json:"valid_signatures"`
	InvalidSignatures int64   `json:"invalid_signatures"`
	LastSignatureAt   *string `json:"last_signature_at,omitempty"`
	ValidityRate      float64 `json:"validity_rate"`
}

// ToRecordResponse converts a domain record to its response form.
func ToRecordResponse(rec *domain.SignatureRecord) RecordResponse {
	resp := RecordResponse{
		ID:                  rec.ID.String(),
		SignatureData:       rec.SignatureData,
		SignatureHash:       rec.SignatureHash,
		AssetID:             rec.AssetID,
		AcknowledgmentID:    rec.AcknowledgmentID,
		SignerID:            rec.SignerID,
		Purpose:             string(rec.Purpose),
		Algorithm:           string(rec.Algorithm),
		Version:             rec.Version,
		SignedAt:            formatTime(rec.SignedAt),
		ExpiresAt:           formatTimePtr(rec.ExpiresAt),
		IsValid:             rec.IsValid,
		IsCurrentlyValid:    rec.IsCurrentlyValid(),
		ValidationAttempts:  rec.ValidationAttempts,
		LastValidatedAt:     formatTimePtr(rec.LastValidatedAt),
		RevocationReason:    rec.RevocationReason,
		RevokedAt:           formatTimePtr(rec.RevokedAt),
		IsArchived:          rec.IsArchived,
		ArchiveReason:       rec.ArchiveReason,
		ArchivedAt:          formatTimePtr(rec.ArchivedAt),
		AgeInDays:           rec.AgeInDays(),
		DaysUntilExpiration: rec.DaysUntilExpiration(),
	}
	return resp
}

// ToVerificationResponse converts a domain verification result.
func ToVerificationResponse(r *domain.VerificationResult) VerificationResponse {
	resp := VerificationResponse{
		IsValid:      r.Valid,
		AssetID:      r.AssetID,
		SignedAt:     formatTimePtr(r.SignedAt),
		ErrorMessage: r.ErrorMessage,
	}
	if r.SignedBy != nil {
		resp.SignedBy = &SignerResponse{
			ID:        r.SignedBy.ID,
			Email:     r.SignedBy.Email,
			FirstName: r.SignedBy.FirstName,
			LastName:  r.SignedBy.LastName,
		}
	}
	return resp
}

// ToStatisticsResponse converts domain statistics.
func ToStatisticsResponse(s *domain.SignatureStatistics) StatisticsResponse {
	return StatisticsResponse{
		TotalSignatures:   s.TotalSignatures,
		ValidSignatures:   s.ValidSignatures,
		InvalidSignatures: s.InvalidSignatures,
		LastSignatureAt:   formatTimePtr(s.LastSignatureAt),
		ValidityRate:      s.ValidityRate,
	}
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
