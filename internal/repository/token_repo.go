package repository

import (
	"context"
	"time"

	"BrLegalAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TokenRepository struct {
	DB *pgxpool.Pool
}

func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{DB: db}
}

// Save stores the hash of an issued token. The table is keyed by
// user_id, so re-authenticating replaces the previous token instead of
// accumulating rows.
func (r *TokenRepository) Save(ctx context.Context, userID int64, tokenHash string) error {
	query := `INSERT INTO auth_tokens (user_id, token_hash, created_at) VALUES ($1, $2, $3)
			  ON CONFLICT (user_id) DO UPDATE SET token_hash=EXCLUDED.token_hash, created_at=EXCLUDED.created_at`
	_, err := r.DB.Exec(ctx, query, userID, tokenHash, time.Now())
	return err
}

// GetUserByHash resolves a presented token hash back to its account.
func (r *TokenRepository) GetUserByHash(ctx context.Context, tokenHash string) (*model.User, error) {
	var u model.User
	query := `SELECT u.id, u.email, u.password_hash, u.name, u.is_active, u.is_staff, u.is_superuser, u.created_at
			  FROM auth_tokens t
			  JOIN users u ON u.id = t.user_id
			  WHERE t.token_hash=$1`
	if err := r.DB.QueryRow(ctx, query, tokenHash).
		Scan(&u.UserID, &u.Email, &u.PasswordHash, &u.Name, &u.IsActive, &u.IsStaff, &u.IsSuperuser, &u.CreatedAt); err != nil {
		return nil, model.ErrNotFound
	}
	return &u, nil
}
