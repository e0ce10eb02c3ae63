package integration

import (
	"context"
	"sort"
	"sync"
	"time"

	"asset-signature-service/internal/core/domain"
	"asset-signature-service/internal/core/ports"

	"github.com/google/uuid"
)

// --- In-Memory Signature Repo ---

type inMemorySignatureRepo struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*domain.SignatureRecord
}

func newInMemorySignatureRepo() *inMemorySignatureRepo {
	return &inMemorySignatureRepo{records: make(map[uuid.UUID]*domain.SignatureRecord)}
}

func (r *inMemorySignatureRepo) Create(ctx context.Context, record *domain.SignatureRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *record
	r.records[record.ID] = &cp
	return nil
}

func (r *inMemorySignatureRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SignatureRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *inMemorySignatureRepo) GetByHash(ctx context.Context, signatureHash string) (*domain.SignatureRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.SignatureHash == signatureHash {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemorySignatureRepo) List(ctx context.Context, params ports.SignatureListParams) ([]domain.SignatureRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.SignatureRecord
	for _, rec := range r.records {
		if params.AssetID != nil && rec.AssetID != *params.AssetID {
			continue
		}
		if params.SignerID != nil && rec.SignerID != *params.SignerID {
			continue
		}
		if params.Purpose != nil && rec.Purpose != *params.Purpose {
			continue
		}
		if !params.IncludeArchived && rec.IsArchived {
			continue
		}
		if params.OnlyValid && !rec.IsCurrentlyValid() {
			continue
		}
		result = append(result, *rec)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].SignedAt.After(result[j].SignedAt)
	})

	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *inMemorySignatureRepo) LatestByAssetID(ctx context.Context, assetID int64) (*domain.SignatureRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *domain.SignatureRecord
	for _, rec := range r.records {
		if rec.AssetID != assetID || rec.IsArchived {
			continue
		}
		if latest == nil || rec.SignedAt.After(latest.SignedAt) {
			latest = rec
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *inMemorySignatureRepo) Invalidate(ctx context.Context, id uuid.UUID, reason string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok || !rec.IsValid {
		return false, nil
	}
	rec.IsValid = false
	rec.RevocationReason = &reason
	rec.RevokedAt = &at
	return true, nil
}

func (r *inMemorySignatureRepo) Archive(ctx context.Context, id uuid.UUID, reason string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok || rec.IsArchived {
		return false, nil
	}
	rec.IsArchived = true
	rec.ArchiveReason = &reason
	rec.ArchivedAt = &at
	return true, nil
}

func (r *inMemorySignatureRepo) IncrementValidationAttempts(ctx context.Context, signatureData string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.SignatureData == signatureData {
			rec.ValidationAttempts++
			t := at
			rec.LastValidatedAt = &t
		}
	}
	return nil
}

func (r *inMemorySignatureRepo) ExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.SignatureRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.SignatureRecord
	for _, rec := range r.records {
		if rec.ExpiresAt == nil || rec.IsArchived {
			continue
		}
		if rec.ExpiresAt.Before(from) || rec.ExpiresAt.After(to) {
			continue
		}
		result = append(result, *rec)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ExpiresAt.Before(*result[j].ExpiresAt)
	})
	return result, nil
}

func (r *inMemorySignatureRepo) SignerStats(ctx context.Context, signerID int64) (*ports.SignerStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &ports.SignerStats{}
	for _, rec := range r.records {
		if rec.SignerID != signerID {
			continue
		}
		stats.Total++
		if rec.IsCurrentlyValid() {
			stats.CurrentlyValid++
		}
		if stats.LastSignatureAt == nil || rec.SignedAt.After(*stats.LastSignatureAt) {
			t := rec.SignedAt
			stats.LastSignatureAt = &t
		}
	}
	return stats, nil
}

// --- In-Memory Acknowledgment Repo ---

type inMemoryAcknowledgmentRepo struct {
	mu   sync.RWMutex
	acks map[int64]*domain.AcknowledgmentContext
}

func newInMemoryAcknowledgmentRepo() *inMemoryAcknowledgmentRepo {
	return &inMemoryAcknowledgmentRepo{acks: make(map[int64]*domain.AcknowledgmentContext)}
}

func (r *inMemoryAcknowledgmentRepo) seed(ack *domain.AcknowledgmentContext) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.acks[ack.AssetID] = ack
}

func (r *inMemoryAcknowledgmentRepo) GetByAssetID(ctx context.Context, assetID int64) (*domain.AcknowledgmentContext, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ack, ok := r.acks[assetID]
	if !ok {
		return nil, nil
	}
	cp := *ack
	return &cp, nil
}

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[int64]*domain.Signer
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[int64]*domain.Signer)}
}

func (r *inMemoryUserRepo) seed(signer *domain.Signer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[signer.ID] = signer
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id int64) (*domain.Signer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	signer, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *signer
	return &cp, nil
}
