package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"asset-signature-service/internal/core/domain"
	"asset-signature-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const signatureColumns = `id, signature_data, signature_hash, asset_id, acknowledgment_id, signer_id,
	purpose, algorithm, version, signed_at, expires_at, is_valid, validation_attempts, last_validated_at,
	revocation_reason, revoked_at, is_archived, archive_reason, archived_at, created_at`

// SignatureRepo implements ports.SignatureRepository.
type SignatureRepo struct {
	pool Pool
}

// NewSignatureRepo creates a new SignatureRepo.
func NewSignatureRepo(pool Pool) *SignatureRepo {
	return &SignatureRepo{pool: pool}
}

// Create inserts a new signature record.
func (r *SignatureRepo) Create(ctx context.Context, rec *domain.SignatureRecord) error {
	query := `INSERT INTO signatures (id, signature_data, signature_hash, asset_id, acknowledgment_id, signer_id,
		purpose, algorithm, version, signed_at, expires_at, is_valid, validation_attempts, last_validated_at,
		revocation_reason, revoked_at, is_archived, archive_reason, archived_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.SignatureData, rec.SignatureHash, rec.AssetID, rec.AcknowledgmentID, rec.SignerID,
		rec.Purpose, rec.Algorithm, rec.Version, rec.SignedAt, rec.ExpiresAt, rec.IsValid,
		rec.ValidationAttempts, rec.LastValidatedAt, rec.RevocationReason, rec.RevokedAt,
		rec.IsArchived, rec.ArchiveReason, rec.ArchivedAt, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert signature: %w", err)
	}
	return nil
}

// GetByID fetches a signature record by UUID.
func (r *SignatureRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SignatureRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM signatures WHERE id = $1`, signatureColumns)
	return r.scanSignature(r.pool.QueryRow(ctx, query, id))
}

// GetByHash fetches a signature record by its unique storage hash.
func (r *SignatureRepo) GetByHash(ctx context.Context, signatureHash string) (*domain.SignatureRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM signatures WHERE signature_hash = $1`, signatureColumns)
	return r.scanSignature(r.pool.QueryRow(ctx, query, signatureHash))
}

// LatestByAssetID fetches the most recent signature record for an asset,
// archived records excluded.
func (r *SignatureRepo) LatestByAssetID(ctx context.Context, assetID int64) (*domain.SignatureRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM signatures
		WHERE asset_id = $1 AND is_archived = FALSE
		ORDER BY signed_at DESC LIMIT 1`, signatureColumns)
	return r.scanSignature(r.pool.QueryRow(ctx, query, assetID))
}

// List fetches signature records with filtering.
func (r *SignatureRepo) List(ctx context.Context, params ports.SignatureListParams) ([]domain.SignatureRecord, error) {
	conditions := []string{"TRUE"}
	var args []any
	argIdx := 1

	if params.AssetID != nil {
		conditions = append(conditions, fmt.Sprintf("asset_id = $%d", argIdx))
		args = append(args, *params.AssetID)
		argIdx++
	}
	if params.SignerID != nil {
		conditions = append(conditions, fmt.Sprintf("signer_id = $%d", argIdx))
		args = append(args, *params.SignerID)
		argIdx++
	}
	if params.Purpose != nil {
		conditions = append(conditions, fmt.Sprintf("purpose = $%d", argIdx))
		args = append(args, *params.Purpose)
		argIdx++
	}
	if !params.IncludeArchived {
		conditions = append(conditions, "is_archived = FALSE")
	}
	if params.OnlyValid {
		conditions = append(conditions,
			"is_valid = TRUE",
			"revoked_at IS NULL",
			"is_archived = FALSE",
			"(expires_at IS NULL OR expires_at > NOW())",
		)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}

	query := fmt.Sprintf(`SELECT %s FROM signatures WHERE %s ORDER BY signed_at DESC LIMIT $%d`,
		signatureColumns, strings.Join(conditions, " AND "), argIdx)
	args = append(args, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list signatures: %w", err)
	}
	defer rows.Close()

	return r.collectSignatures(rows)
}

// Invalidate revokes a still-valid record in one guarded statement. The guard
// makes concurrent invalidations race-safe: exactly one caller sees true.
func (r *SignatureRepo) Invalidate(ctx context.Context, id uuid.UUID, reason string, at time.Time) (bool, error) {
	query := `UPDATE signatures
		SET is_valid = FALSE, revocation_reason = $2, revoked_at = $3
		WHERE id = $1 AND is_valid = TRUE`

	tag, err := r.pool.Exec(ctx, query, id, reason, at)
	if err != nil {
		return false, fmt.Errorf("invalidate signature: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Archive soft-deletes a record in one guarded statement.
func (r *SignatureRepo) Archive(ctx context.Context, id uuid.UUID, reason string, at time.Time) (bool, error) {
	query := `UPDATE signatures
		SET is_archived = TRUE, archive_reason = $2, archived_at = $3
		WHERE id = $1 AND is_archived = FALSE`

	tag, err := r.pool.Exec(ctx, query, id, reason, at)
	if err != nil {
		return false, fmt.Errorf("archive signature: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// IncrementValidationAttempts bumps the attempt counter for records holding
// the given issued token. The counter is incremented store-side so concurrent
// validations never lose updates. A token with no stored record is a no-op.
func (r *SignatureRepo) IncrementValidationAttempts(ctx context.Context, signatureData string, at time.Time) error {
	query := `UPDATE signatures
		SET validation_attempts = validation_attempts + 1, last_validated_at = $2
		WHERE signature_data = $1`

	_, err := r.pool.Exec(ctx, query, signatureData, at)
	if err != nil {
		return fmt.Errorf("increment validation attempts: %w", err)
	}
	return nil
}

// ExpiringBetween returns unarchived records whose expiration falls in [from, to].
func (r *SignatureRepo) ExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.SignatureRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM signatures
		WHERE expires_at BETWEEN $1 AND $2 AND is_archived = FALSE
		ORDER BY expires_at ASC`, signatureColumns)

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list expiring signatures: %w", err)
	}
	defer rows.Close()

	return r.collectSignatures(rows)
}

// SignerStats aggregates signature counts for one signer. Validity is
// evaluated in the query with the same conjunction the domain predicate uses.
func (r *SignatureRepo) SignerStats(ctx context.Context, signerID int64) (*ports.SignerStats, error) {
	query := `SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE is_valid AND revoked_at IS NULL AND is_archived = FALSE
			AND (expires_at IS NULL OR expires_at > $2)) AS currently_valid,
		MAX(signed_at) AS last_signature_at
		FROM signatures WHERE signer_id = $1`

	stats := &ports.SignerStats{}
	err := r.pool.QueryRow(ctx, query, signerID, time.Now()).Scan(
		&stats.Total, &stats.CurrentlyValid, &stats.LastSignatureAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get signer stats: %w", err)
	}
	return stats, nil
}

// scanSignature is a helper to scan a single row into a SignatureRecord.
func (r *SignatureRepo) scanSignature(row pgx.Row) (*domain.SignatureRecord, error) {
	rec := &domain.SignatureRecord{}
	err := row.Scan(
		&rec.ID, &rec.SignatureData, &rec.SignatureHash, &rec.AssetID, &rec.AcknowledgmentID, &rec.SignerID,
		&rec.Purpose, &rec.Algorithm, &rec.Version, &rec.SignedAt, &rec.ExpiresAt, &rec.IsValid,
		&rec.ValidationAttempts, &rec.LastValidatedAt, &rec.RevocationReason, &rec.RevokedAt,
		&rec.IsArchived, &rec.ArchiveReason, &rec.ArchivedAt, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan signature: %w", err)
	}
	return rec, nil
}

func (r *SignatureRepo) collectSignatures(rows pgx.Rows) ([]domain.SignatureRecord, error) {
	var recs []domain.SignatureRecord
	for rows.Next() {
		rec := domain.SignatureRecord{}
		err := rows.Scan(
			&rec.ID, &rec.SignatureData, &rec.SignatureHash, &rec.AssetID, &rec.AcknowledgmentID, &rec.SignerID,
			&rec.Purpose, &rec.Algorithm, &rec.Version, &rec.SignedAt, &rec.ExpiresAt, &rec.IsValid,
			&rec.ValidationAttempts, &rec.LastValidatedAt, &rec.RevocationReason, &rec.RevokedAt,
			&rec.IsArchived, &rec.ArchiveReason, &rec.ArchivedAt, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan signature row: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate signature rows: %w", err)
	}
	return recs, nil
}
