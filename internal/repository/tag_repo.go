package repository

import (
	"context"

	"BrLegalAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TagRepository struct {
	DB *pgxpool.Pool
}

func NewTagRepository(db *pgxpool.Pool) *TagRepository {
	return &TagRepository{DB: db}
}

func (r *TagRepository) Create(ctx context.Context, userID int64, name string) (int64, error) {
	var id int64
	query := `INSERT INTO tags (name, user_id) VALUES ($1, $2) RETURNING id`
	if err := r.DB.QueryRow(ctx, query, name, userID).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// List returns the caller's tags, name descending. assignedOnly keeps
// only tags referenced by at least one recipe.
func (r *TagRepository) List(ctx context.Context, userID int64, assignedOnly bool) ([]model.Tag, error) {
	query := `SELECT DISTINCT id, name, user_id FROM tags WHERE user_id=$1`
	if assignedOnly {
		query += ` AND EXISTS (SELECT 1 FROM recipe_tags rt WHERE rt.tag_id = tags.id)`
	}
	query += ` ORDER BY name DESC`

	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Tag{}
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.TagID, &t.Name, &t.UserID); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, nil
}

func (r *TagRepository) GetByID(ctx context.Context, userID, id int64) (*model.Tag, error) {
	var t model.Tag
	query := `SELECT id, name, user_id FROM tags WHERE id=$1 AND user_id=$2`
	if err := r.DB.QueryRow(ctx, query, id, userID).Scan(&t.TagID, &t.Name, &t.UserID); err != nil {
		return nil, model.ErrNotFound
	}
	return &t, nil
}

func (r *TagRepository) UpdateName(ctx context.Context, userID, id int64, name string) error {
	tag, err := r.DB.Exec(ctx, `UPDATE tags SET name=$1 WHERE id=$2 AND user_id=$3`, name, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *TagRepository) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM tags WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
