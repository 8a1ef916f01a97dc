package repository

import (
	"context"

	"BrLegalAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type IngredientRepository struct {
	DB *pgxpool.Pool
}

func NewIngredientRepository(db *pgxpool.Pool) *IngredientRepository {
	return &IngredientRepository{DB: db}
}

func (r *IngredientRepository) Create(ctx context.Context, userID int64, name string) (int64, error) {
	var id int64
	query := `INSERT INTO ingredients (name, user_id) VALUES ($1, $2) RETURNING id`
	if err := r.DB.QueryRow(ctx, query, name, userID).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *IngredientRepository) List(ctx context.Context, userID int64, assignedOnly bool) ([]model.Ingredient, error) {
	query := `SELECT DISTINCT id, name, user_id FROM ingredients WHERE user_id=$1`
	if assignedOnly {
		query += ` AND EXISTS (SELECT 1 FROM recipe_ingredients ri WHERE ri.ingredient_id = ingredients.id)`
	}
	query += ` ORDER BY name DESC`

	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Ingredient{}
	for rows.Next() {
		var i model.Ingredient
		if err := rows.Scan(&i.IngredientID, &i.Name, &i.UserID); err != nil {
			return nil, err
		}
		list = append(list, i)
	}
	return list, nil
}

func (r *IngredientRepository) GetByID(ctx context.Context, userID, id int64) (*model.Ingredient, error) {
	var i model.Ingredient
	query := `SELECT id, name, user_id FROM ingredients WHERE id=$1 AND user_id=$2`
	if err := r.DB.QueryRow(ctx, query, id, userID).Scan(&i.IngredientID, &i.Name, &i.UserID); err != nil {
		return nil, model.ErrNotFound
	}
	return &i, nil
}

func (r *IngredientRepository) UpdateName(ctx context.Context, userID, id int64, name string) error {
	tag, err := r.DB.Exec(ctx, `UPDATE ingredients SET name=$1 WHERE id=$2 AND user_id=$3`, name, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *IngredientRepository) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM ingredients WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
