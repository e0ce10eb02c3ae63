package postgres

import (
	"context"
	"errors"
	"fmt"

	"asset-signature-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// UserRepo implements ports.UserRepository.
type UserRepo struct {
	pool Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// GetByID fetches a signer by numeric user ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.Signer, error) {
	query := `SELECT id, email, first_name, last_name FROM users WHERE id = $1`

	s := &domain.Signer{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Email, &s.FirstName, &s.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return s, nil
}
