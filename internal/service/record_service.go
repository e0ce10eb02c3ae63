package service

import (
	"context"
	"fmt"
	"time"

	"asset-signature-service/internal/core/domain"
	"asset-signature-service/internal/core/ports"
	"asset-signature-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RecordServiceImpl implements ports.RecordService: the durable signature
// record lifecycle. Records are created at signing time and never physically
// deleted; archival is the soft-delete path.
type RecordServiceImpl struct {
	sigRepo  ports.SignatureRepository
	ackRepo  ports.AcknowledgmentRepository
	tokenSvc ports.TokenService
	digest   ports.DigestService
	log      zerolog.Logger
}

// NewRecordService creates a record service.
func NewRecordService(
	sigRepo ports.SignatureRepository,
	ackRepo ports.AcknowledgmentRepository,
	tokenSvc ports.TokenService,
	digest ports.DigestService,
	log zerolog.Logger,
) *RecordServiceImpl {
	return &RecordServiceImpl{
		sigRepo:  sigRepo,
		ackRepo:  ackRepo,
		tokenSvc: tokenSvc,
		digest:   digest,
		log:      log,
	}
}

// Create issues a token for the asset's acknowledgment and persists the
// signature record alongside it.
func (s *RecordServiceImpl) Create(ctx context.Context, req ports.CreateRecordRequest) (*ports.CreateRecordResult, error) {
	ack, err := s.ackRepo.GetByAssetID(ctx, req.AssetID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load acknowledgment: %w", err))
	}
	if ack == nil {
		return nil, apperror.ErrAcknowledgmentNotFound()
	}

	purpose := req.Purpose
	if purpose == "" {
		purpose = domain.PurposeAcknowledgment
	}

	var expiresAt *time.Time
	if req.ExpiresInDays != nil {
		if *req.ExpiresInDays <= 0 {
			return nil, apperror.Validation("expires_in_days must be positive")
		}
		t := time.Now().AddDate(0, 0, *req.ExpiresInDays)
		expiresAt = &t
	}

	token := s.tokenSvc.Generate(ack, &req.Signer)
	hash := s.tokenSvc.StorageHash(token, req.AssetID, req.Signer.ID)

	ackID := ack.ID
	record := domain.NewSignatureRecord(
		token, hash,
		req.AssetID, req.Signer.ID, &ackID,
		purpose, s.digest.Algorithm(), expiresAt,
	)

	if err := s.sigRepo.Create(ctx, record); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persist signature record: %w", err))
	}

	s.log.Info().
		Str("record_id", record.ID.String()).
		Int64("asset_id", req.AssetID).
		Int64("signer_id", req.Signer.ID).
		Str("purpose", string(purpose)).
		Msg("signature record created")

	return &ports.CreateRecordResult{Record: record, Token: token}, nil
}

// Get fetches a record by id.
func (s *RecordServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.SignatureRecord, error) {
	record, err := s.sigRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if record == nil {
		return nil, apperror.ErrRecordNotFound()
	}
	return record, nil
}

// List returns records matching the filters.
func (s *RecordServiceImpl) List(ctx context.Context, params ports.SignatureListParams) ([]domain.SignatureRecord, error) {
	records, err := s.sigRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return records, nil
}

// Invalidate flips the validity kill switch. The repository applies the
// transition as one guarded statement; losing the race to a concurrent
// invalidation surfaces as a conflict, not a silent overwrite.
func (s *RecordServiceImpl) Invalidate(ctx context.Context, id uuid.UUID, reason string) (*domain.SignatureRecord, error) {
	applied, err := s.sigRepo.Invalidate(ctx, id, reason, time.Now())
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if !applied {
		record, err := s.sigRepo.GetByID(ctx, id)
		if err != nil {
			return nil, apperror.InternalError(err)
		}
		if record == nil {
			return nil, apperror.ErrRecordNotFound()
		}
		return nil, apperror.ErrRecordAlreadyInvalidated()
	}

	s.log.Info().Str("record_id", id.String()).Str("reason", reason).Msg("signature record invalidated")
	return s.Get(ctx, id)
}

// Archive soft-deletes the record. Applicable from any state, including
// already-invalidated records.
func (s *RecordServiceImpl) Archive(ctx context.Context, id uuid.UUID, reason string) (*domain.SignatureRecord, error) {
	applied, err := s.sigRepo.Archive(ctx, id, reason, time.Now())
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if !applied {
		record, err := s.sigRepo.GetByID(ctx, id)
		if err != nil {
			return nil, apperror.InternalError(err)
		}
		if record == nil {
			return nil, apperror.ErrRecordNotFound()
		}
		return nil, apperror.ErrRecordAlreadyArchived()
	}

	s.log.Info().Str("record_id", id.String()).Str("reason", reason).Msg("signature record archived")
	return s.Get(ctx, id)
}

// ExpiringWithinDays lists unexpired records whose expiration falls within
// the next N days.
func (s *RecordServiceImpl) ExpiringWithinDays(ctx context.Context, days int) ([]domain.SignatureRecord, error) {
	if days <= 0 {
		return nil, apperror.Validation("days must be positive")
	}
	now := time.Now()
	records, err := s.sigRepo.ExpiringBetween(ctx, now, now.AddDate(0, 0, days))
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return records, nil
}

// AssetMetadata summarizes the latest signature state of an asset.
func (s *RecordServiceImpl) AssetMetadata(ctx context.Context, assetID int64) (*ports.AssetSignatureMetadata, error) {
	record, err := s.sigRepo.LatestByAssetID(ctx, assetID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if record == nil {
		// An asset with no signatures is an empty summary, not an error.
		return &ports.AssetSignatureMetadata{AssetID: assetID}, nil
	}
	return &ports.AssetSignatureMetadata{
		AssetID:        assetID,
		Record:         record,
		CurrentlyValid: record.IsCurrentlyValid(),
	}, nil
}
