package ports

import (
	"context"
	"time"

	"asset-signature-service/internal/core/domain"

	"github.com/google/uuid"
)

// SignatureRepository defines persistence for durable signature records.
// Lifecycle mutations (Invalidate, Archive, IncrementValidationAttempts) are
// applied as single atomic statements in the store so that concurrent writers
// cannot leave a record in an inconsistent combination of states.
type SignatureRepository interface {
	Create(ctx context.Context, record *domain.SignatureRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SignatureRecord, error)
	GetByHash(ctx context.Context, signatureHash string) (*domain.SignatureRecord, error)
	List(ctx context.Context, params SignatureListParams) ([]domain.SignatureRecord, error)
	LatestByAssetID(ctx context.Context, assetID int64) (*domain.SignatureRecord, error)

	// Invalidate sets is_valid=false plus revocation fields in one statement,
	// guarded on the record still being valid. Returns false when no row
	// matched (missing or already invalidated).
	Invalidate(ctx context.Context, id uuid.UUID, reason string, at time.Time) (bool, error)

	// Archive sets the archive fields in one statement, guarded on the record
	// not being archived yet. Returns false when no row matched.
	Archive(ctx context.Context, id uuid.UUID, reason string, at time.Time) (bool, error)

	// IncrementValidationAttempts bumps the monotonic attempt counter for
	// records holding the given issued token. The increment happens
	// store-side, never read-modify-write in application code. Missing
	// records are not an error.
	IncrementValidationAttempts(ctx context.Context, signatureData string, at time.Time) error

	// ExpiringBetween returns unexpired records whose expiration falls in
	// [from, to].
	ExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.SignatureRecord, error)

	// SignerStats aggregates per-signer counts for the statistics reporter.
	SignerStats(ctx context.Context, signerID int64) (*SignerStats, error)
}

// SignatureListParams holds filters for listing signature records.
type SignatureListParams struct {
	AssetID         *int64
	SignerID        *int64
	Purpose         *domain.SignaturePurpose
	OnlyValid       bool // restrict to currently-valid records
	IncludeArchived bool
	Limit           int
}

// SignerStats holds the raw aggregates behind domain.SignatureStatistics.
type SignerStats struct {
	Total           int64
	CurrentlyValid  int64
	LastSignatureAt *time.Time
}

// AcknowledgmentRepository is the read-only port to the external
// acknowledgment store. This core never writes acknowledgments.
type AcknowledgmentRepository interface {
	GetByAssetID(ctx context.Context, assetID int64) (*domain.AcknowledgmentContext, error)
}

// UserRepository resolves signer identities from the external user store.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Signer, error)
}

// AuditRepository persists audit trail entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
}
