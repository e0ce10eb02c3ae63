package postgres

import (
	"context"
	"errors"
	"fmt"

	"asset-signature-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AcknowledgmentRepo implements ports.AcknowledgmentRepository as a read-only
// view over the inventory's acknowledgment table.
type AcknowledgmentRepo struct {
	pool Pool
}

// NewAcknowledgmentRepo creates a new AcknowledgmentRepo.
func NewAcknowledgmentRepo(pool Pool) *AcknowledgmentRepo {
	return &AcknowledgmentRepo{pool: pool}
}

// GetByAssetID fetches the acknowledgment recorded for an asset.
func (r *AcknowledgmentRepo) GetByAssetID(ctx context.Context, assetID int64) (*domain.AcknowledgmentContext, error) {
	query := `SELECT id, asset_id, serial_number, issued_to, station, notes, acknowledged_by, acknowledged_at
		FROM acknowledgments WHERE asset_id = $1`

	a := &domain.AcknowledgmentContext{}
	err := r.pool.QueryRow(ctx, query, assetID).Scan(
		&a.ID, &a.AssetID, &a.SerialNumber, &a.IssuedTo,
		&a.Station, &a.Notes, &a.AcknowledgedBy, &a.AcknowledgedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get acknowledgment by asset_id: %w", err)
	}
	return a, nil
}
