package service

import (
	"context"
	"time"

	"asset-signature-service/internal/core/domain"
	"asset-signature-service/internal/core/ports"
	"asset-signature-service/pkg/apperror"

	"github.com/rs/zerolog"
)

const statsCacheTTL = 60 * time.Second

// StatisticsServiceImpl implements ports.StatisticsService with a short-TTL
// cache in front of the aggregate query. Cache failures degrade to the store.
type StatisticsServiceImpl struct {
	sigRepo ports.SignatureRepository
	cache   ports.StatisticsCache // nil = caching disabled
	log     zerolog.Logger
}

// NewStatisticsService creates a statistics service.
func NewStatisticsService(sigRepo ports.SignatureRepository, cache ports.StatisticsCache, log zerolog.Logger) *StatisticsServiceImpl {
	return &StatisticsServiceImpl{sigRepo: sigRepo, cache: cache, log: log}
}

// ForSigner aggregates signature counts and the validity rate for one signer.
func (s *StatisticsServiceImpl) ForSigner(ctx context.Context, signerID int64) (*domain.SignatureStatistics, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, signerID)
		if err != nil {
			s.log.Warn().Err(err).Int64("signer_id", signerID).Msg("statistics cache read failed, falling through")
		}
		if cached != nil {
			return cached, nil
		}
	}

	raw, err := s.sigRepo.SignerStats(ctx, signerID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	stats := &domain.SignatureStatistics{
		TotalSignatures:   raw.Total,
		ValidSignatures:   raw.CurrentlyValid,
		InvalidSignatures: raw.Total - raw.CurrentlyValid,
		LastSignatureAt:   raw.LastSignatureAt,
	}
	if raw.Total > 0 {
		stats.ValidityRate = float64(raw.CurrentlyValid) / float64(raw.Total) * 100
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, signerID, stats, statsCacheTTL); err != nil {
			s.log.Warn().Err(err).Int64("signer_id", signerID).Msg("statistics cache write failed")
		}
	}

	return stats, nil
}
