package service

import (
	"context"
	"fmt"
	"time"

	"asset-signature-service/internal/core/domain"
	"asset-signature-service/internal/core/ports"
	"asset-signature-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// Human-readable verification failure messages. These travel inside the
// VerificationResult; malformed input never escapes as an error.
const (
	msgAcknowledgmentNotFound = "Acknowledgment not found"
	msgInvalidFormat          = "Invalid signature format"
	msgAssetMismatch          = "Asset ID mismatch"
	msgSignerNotFound         = "User not found"
	msgValidationFailed       = "Signature validation failed"
)

// VerificationServiceImpl implements ports.VerificationService.
type VerificationServiceImpl struct {
	ackRepo  ports.AcknowledgmentRepository
	userRepo ports.UserRepository
	sigRepo  ports.SignatureRepository
	tokenSvc ports.TokenService
	codec    *PayloadCodec
	log      zerolog.Logger
}

// NewVerificationService creates a verification service.
func NewVerificationService(
	ackRepo ports.AcknowledgmentRepository,
	userRepo ports.UserRepository,
	sigRepo ports.SignatureRepository,
	tokenSvc ports.TokenService,
	codec *PayloadCodec,
	log zerolog.Logger,
) *VerificationServiceImpl {
	return &VerificationServiceImpl{
		ackRepo:  ackRepo,
		userRepo: userRepo,
		sigRepo:  sigRepo,
		tokenSvc: tokenSvc,
		codec:    codec,
		log:      log,
	}
}

// Verify reconstructs the acknowledgment context for assetID, resolves the
// signer embedded in the token, and re-derives the expected digest. The
// result is always structured; a non-nil error accompanies it only for
// not-found outcomes (so the edge can answer 404) and infrastructure
// failures.
func (s *VerificationServiceImpl) Verify(ctx context.Context, assetID int64, token string) (*domain.VerificationResult, error) {
	result := &domain.VerificationResult{AssetID: assetID}

	ack, err := s.ackRepo.GetByAssetID(ctx, assetID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load acknowledgment: %w", err))
	}
	if ack == nil {
		result.ErrorMessage = msgAcknowledgmentNotFound
		return result, apperror.ErrAcknowledgmentNotFound()
	}

	decoded, err := s.codec.DecodeToken(token)
	if err != nil {
		result.ErrorMessage = msgInvalidFormat
		return result, nil
	}

	if decoded.AssetID != fmt.Sprintf("%d", assetID) {
		result.ErrorMessage = msgAssetMismatch
		return result, nil
	}

	signerID, err := decoded.ParseSignerID()
	if err != nil {
		result.ErrorMessage = msgInvalidFormat
		return result, nil
	}

	signer, err := s.userRepo.GetByID(ctx, signerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load signer: %w", err))
	}
	if signer == nil {
		result.ErrorMessage = msgSignerNotFound
		return result, apperror.ErrSignerNotFound()
	}

	valid := s.tokenSvc.Validate(token, ack, signer)

	// Every verification attempt, valid or not, bumps the monotonic counter
	// on the matching record. Best effort: a missing record or a store
	// hiccup must not change the verification outcome.
	if err := s.sigRepo.IncrementValidationAttempts(ctx, token, time.Now()); err != nil {
		s.log.Warn().Err(err).Int64("asset_id", assetID).Msg("failed to record validation attempt")
	}

	result.Valid = valid
	result.SignedBy = signer
	if ts, err := decoded.ParseTimestamp(); err == nil {
		result.SignedAt = &ts
	}
	if !valid {
		result.ErrorMessage = msgValidationFailed
	}
	return result, nil
}
