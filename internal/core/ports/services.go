package ports

import (
	"context"
	"time"

	"asset-signature-service/internal/core/domain"

	"github.com/google/uuid"
)

// DigestService is the one-way digest primitive over arbitrary payload bytes.
// Implementations must be deterministic pure functions of the input: no
// implicit salt, no timestamp. Verification recomputes the payload
// independently and would never match otherwise.
type DigestService interface {
	Digest(payload []byte) string
	Algorithm() domain.SignatureAlgorithm
}

// TokenService issues and checks the opaque acknowledgment token.
type TokenService interface {
	// Generate builds the canonical payload, digests it, and wraps
	// digest|timestamp|signerID|assetID in base64. Pure with respect to
	// external state; the caller persists the token if needed.
	Generate(ack *domain.AcknowledgmentContext, signer *domain.Signer) string

	// Validate fails closed: any decode error, identity mismatch, stale
	// timestamp, or digest mismatch yields false. No partial credit.
	Validate(token string, ack *domain.AcknowledgmentContext, signer *domain.Signer) bool

	// StorageHash mints a unique opaque storage key over
	// raw|assetID|signerID|currentMillis. Because it embeds the wall clock it
	// is NOT reproducible and must never be used to verify anything later;
	// it exists only so each stored signature gets a unique identifier.
	StorageHash(rawSignature string, assetID, signerID int64) string
}

// VerificationService reconstructs acknowledgment context from the store and
// produces a structured verification result.
type VerificationService interface {
	Verify(ctx context.Context, assetID int64, token string) (*domain.VerificationResult, error)
}

// RecordService manages the durable signature record lifecycle.
type RecordService interface {
	Create(ctx context.Context, req CreateRecordRequest) (*CreateRecordResult, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.SignatureRecord, error)
	List(ctx context.Context, params SignatureListParams) ([]domain.SignatureRecord, error)
	Invalidate(ctx context.Context, id uuid.UUID, reason string) (*domain.SignatureRecord, error)
	Archive(ctx context.Context, id uuid.UUID, reason string) (*domain.SignatureRecord, error)
	ExpiringWithinDays(ctx context.Context, days int) ([]domain.SignatureRecord, error)
	AssetMetadata(ctx context.Context, assetID int64) (*AssetSignatureMetadata, error)
}

// CreateRecordRequest holds validated input for record creation.
type CreateRecordRequest struct {
	AssetID       int64
	Signer        domain.Signer
	Purpose       domain.SignaturePurpose
	ExpiresInDays *int
}

// CreateRecordResult pairs the persisted record with the issued token.
type CreateRecordResult struct {
	Record *domain.SignatureRecord
	Token  string
}

// AssetSignatureMetadata summarizes the latest signature state of an asset.
type AssetSignatureMetadata struct {
	AssetID        int64                   `json:"asset_id"`
	Record         *domain.SignatureRecord `json:"record,omitempty"`
	CurrentlyValid bool                    `json:"currently_valid"`
}

// StatisticsService aggregates signature statistics per signer.
type StatisticsService interface {
	ForSigner(ctx context.Context, signerID int64) (*domain.SignatureStatistics, error)
}

// StatisticsCache is a short-TTL cache in front of the statistics aggregates.
type StatisticsCache interface {
	Get(ctx context.Context, signerID int64) (*domain.SignatureStatistics, error) // nil on miss
	Set(ctx context.Context, signerID int64, stats *domain.SignatureStatistics, ttl time.Duration) error
}

// AuthTokenService handles the bearer tokens carrying the signer principal.
// Principal issuance itself lives in the external security layer; Validate is
// what the auth middleware uses to resolve the opaque signer.
type AuthTokenService interface {
	Generate(signer *domain.Signer) (string, time.Time, error)
	Validate(tokenString string) (*domain.Signer, error)
}

// AuditService records the audit trail of signature operations.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditEntry)
}
