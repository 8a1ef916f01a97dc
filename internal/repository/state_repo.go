package repository

import (
	"context"

	"BrLegalAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StateRepository struct {
	DB *pgxpool.Pool
}

func NewStateRepository(db *pgxpool.Pool) *StateRepository {
	return &StateRepository{DB: db}
}

func (r *StateRepository) Create(ctx context.Context, userID int64, name, initials string) (int64, error) {
	var id int64
	query := `INSERT INTO states (name, initials, user_id) VALUES ($1, $2, $3) RETURNING id`
	if err := r.DB.QueryRow(ctx, query, name, initials, userID).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, model.ErrNameExists
		}
		return 0, err
	}
	return id, nil
}

// List returns the caller's states, name descending.
func (r *StateRepository) List(ctx context.Context, userID int64) ([]model.State, error) {
	query := `SELECT DISTINCT id, name, initials, user_id FROM states WHERE user_id=$1 ORDER BY name DESC`
	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.State{}
	for rows.Next() {
		var s model.State
		if err := rows.Scan(&s.StateID, &s.Name, &s.Initials, &s.UserID); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, nil
}

// GetByID is ownership-scoped: a state owned by someone else scans as
// no row at all.
func (r *StateRepository) GetByID(ctx context.Context, userID, id int64) (*model.State, error) {
	var s model.State
	query := `SELECT id, name, initials, user_id FROM states WHERE id=$1 AND user_id=$2`
	if err := r.DB.QueryRow(ctx, query, id, userID).Scan(&s.StateID, &s.Name, &s.Initials, &s.UserID); err != nil {
		return nil, model.ErrNotFound
	}
	return &s, nil
}

func (r *StateRepository) Update(ctx context.Context, userID, id int64, name, initials *string) error {
	query := `UPDATE states SET name=COALESCE($1, name), initials=COALESCE($2, initials)
			  WHERE id=$3 AND user_id=$4`
	tag, err := r.DB.Exec(ctx, query, name, initials, id, userID)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrNameExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete removes a state; its court districts go with it (ON DELETE
// CASCADE on court_districts.state_id).
func (r *StateRepository) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM states WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *StateRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM states WHERE name=$1)`
	if err := r.DB.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
