package repository

import (
	"context"

	"BrLegalAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CourtDistrictRepository struct {
	DB *pgxpool.Pool
}

func NewCourtDistrictRepository(db *pgxpool.Pool) *CourtDistrictRepository {
	return &CourtDistrictRepository{DB: db}
}

func (r *CourtDistrictRepository) Create(ctx context.Context, userID int64, name string, stateID int64) (int64, error) {
	var id int64
	query := `INSERT INTO court_districts (name, state_id, user_id) VALUES ($1, $2, $3) RETURNING id`
	if err := r.DB.QueryRow(ctx, query, name, stateID, userID).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, model.ErrNameExists
		}
		return 0, err
	}
	return id, nil
}

// List returns the caller's districts. stateIDs, when non-nil, is a
// membership predicate (state_id IN set) built by the query filter
// layer; the owner condition is appended here regardless.
func (r *CourtDistrictRepository) List(ctx context.Context, userID int64, stateIDs []int64) ([]model.CourtDistrict, error) {
	query := `SELECT DISTINCT id, name, state_id, user_id FROM court_districts WHERE user_id=$1`
	args := []any{userID}
	if stateIDs != nil {
		query += ` AND state_id = ANY($2)`
		args = append(args, stateIDs)
	}
	query += ` ORDER BY id`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.CourtDistrict{}
	for rows.Next() {
		var d model.CourtDistrict
		if err := rows.Scan(&d.DistrictID, &d.Name, &d.StateID, &d.UserID); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, nil
}

func (r *CourtDistrictRepository) GetByID(ctx context.Context, userID, id int64) (*model.CourtDistrict, error) {
	var d model.CourtDistrict
	query := `SELECT id, name, state_id, user_id FROM court_districts WHERE id=$1 AND user_id=$2`
	if err := r.DB.QueryRow(ctx, query, id, userID).Scan(&d.DistrictID, &d.Name, &d.StateID, &d.UserID); err != nil {
		return nil, model.ErrNotFound
	}
	return &d, nil
}

func (r *CourtDistrictRepository) Update(ctx context.Context, userID, id int64, name *string, stateID *int64) error {
	query := `UPDATE court_districts SET name=COALESCE($1, name), state_id=COALESCE($2, state_id)
			  WHERE id=$3 AND user_id=$4`
	tag, err := r.DB.Exec(ctx, query, name, stateID, id, userID)
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

func (r *CourtDistrictRepository) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM court_districts WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *CourtDistrictRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM court_districts WHERE name=$1)`
	if err := r.DB.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
