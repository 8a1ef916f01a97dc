package repository

import (
	"context"
	"errors"
	"time"

	"BrLegalAPI/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

// Create inserts a new account and returns the created id.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash, name string, isStaff, isSuperuser bool) (int64, error) {
	var id int64
	query := `INSERT INTO users (email, password_hash, name, is_active, is_staff, is_superuser, created_at)
			  VALUES ($1, $2, $3, true, $4, $5, $6) RETURNING id`
	if err := r.DB.QueryRow(ctx, query, email, passwordHash, name, isStaff, isSuperuser, time.Now()).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, model.ErrEmailExists
		}
		return 0, err
	}
	return id, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	query := `SELECT id, email, password_hash, name, is_active, is_staff, is_superuser, created_at
			  FROM users WHERE email=$1`
	if err := r.DB.QueryRow(ctx, query, email).
		Scan(&u.UserID, &u.Email, &u.PasswordHash, &u.Name, &u.IsActive, &u.IsStaff, &u.IsSuperuser, &u.CreatedAt); err != nil {
		return nil, model.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	query := `SELECT id, email, password_hash, name, is_active, is_staff, is_superuser, created_at
			  FROM users WHERE id=$1`
	if err := r.DB.QueryRow(ctx, query, id).
		Scan(&u.UserID, &u.Email, &u.PasswordHash, &u.Name, &u.IsActive, &u.IsStaff, &u.IsSuperuser, &u.CreatedAt); err != nil {
		return nil, model.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT id, email, password_hash, name, is_active, is_staff, is_superuser, created_at
			  FROM users ORDER BY id`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.UserID, &u.Email, &u.PasswordHash, &u.Name, &u.IsActive, &u.IsStaff, &u.IsSuperuser, &u.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, nil
}

// UpdateSelf applies a partial update: nil fields keep their stored value.
// The password goes through UpdatePassword, never through here.
func (r *UserRepository) UpdateSelf(ctx context.Context, id int64, name, email *string) error {
	query := `UPDATE users SET name=COALESCE($1, name), email=COALESCE($2, email) WHERE id=$3`
	tag, err := r.DB.Exec(ctx, query, name, email, id)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrEmailExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := r.DB.Exec(ctx, `UPDATE users SET password_hash=$1 WHERE id=$2`, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete removes an account. The states and court_districts tables
// reference users with ON DELETE RESTRICT, so deleting an owner of
// geo records fails with ErrProtected instead of cascading.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.ErrProtected
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
