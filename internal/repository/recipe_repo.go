package repository

import (
	"context"
	"fmt"

	"BrLegalAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RecipeRepository struct {
	DB *pgxpool.Pool
}

func NewRecipeRepository(db *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{DB: db}
}

// Create inserts the recipe and its tag/ingredient links in one
// transaction.
func (r *RecipeRepository) Create(ctx context.Context, userID int64, rec *model.Recipe) (int64, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var id int64
	query := `INSERT INTO recipes (title, time_minutes, price, link, user_id) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := tx.QueryRow(ctx, query, rec.Title, rec.TimeMinutes, rec.Price, rec.Link, userID).Scan(&id); err != nil {
		return 0, err
	}
	if err := replaceLinks(ctx, tx, `recipe_tags`, `tag_id`, id, rec.TagIDs); err != nil {
		return 0, err
	}
	if err := replaceLinks(ctx, tx, `recipe_ingredients`, `ingredient_id`, id, rec.IngredientIDs); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

// List returns the caller's recipes. tagIDs and ingredientIDs are
// intersects predicates: a non-nil list keeps recipes linked to at
// least one of the given ids. Both compose with AND, and the owner
// condition is always present.
func (r *RecipeRepository) List(ctx context.Context, userID int64, tagIDs, ingredientIDs []int64) ([]model.Recipe, error) {
	query := `SELECT DISTINCT id, title, time_minutes, price, link, image, user_id FROM recipes WHERE user_id=$1`
	args := []any{userID}
	if tagIDs != nil {
		args = append(args, tagIDs)
		query += fmt.Sprintf(` AND EXISTS (SELECT 1 FROM recipe_tags rt WHERE rt.recipe_id = recipes.id AND rt.tag_id = ANY($%d))`, len(args))
	}
	if ingredientIDs != nil {
		args = append(args, ingredientIDs)
		query += fmt.Sprintf(` AND EXISTS (SELECT 1 FROM recipe_ingredients ri WHERE ri.recipe_id = recipes.id AND ri.ingredient_id = ANY($%d))`, len(args))
	}
	query += ` ORDER BY id`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Recipe{}
	for rows.Next() {
		var rec model.Recipe
		if err := rows.Scan(&rec.RecipeID, &rec.Title, &rec.TimeMinutes, &rec.Price, &rec.Link, &rec.Image, &rec.UserID); err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	if err := r.loadLinks(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *RecipeRepository) GetByID(ctx context.Context, userID, id int64) (*model.Recipe, error) {
	var rec model.Recipe
	query := `SELECT id, title, time_minutes, price, link, image, user_id FROM recipes WHERE id=$1 AND user_id=$2`
	if err := r.DB.QueryRow(ctx, query, id, userID).
		Scan(&rec.RecipeID, &rec.Title, &rec.TimeMinutes, &rec.Price, &rec.Link, &rec.Image, &rec.UserID); err != nil {
		return nil, model.ErrNotFound
	}
	one := []model.Recipe{rec}
	if err := r.loadLinks(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

// Update applies a partial update. Nil scalars keep their stored value;
// nil id slices keep the current links, non-nil slices replace the set.
func (r *RecipeRepository) Update(ctx context.Context, userID, id int64, title, link *string, timeMinutes *int, price *float64, tagIDs, ingredientIDs []int64) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `UPDATE recipes SET title=COALESCE($1, title), time_minutes=COALESCE($2, time_minutes),
			  price=COALESCE($3, price), link=COALESCE($4, link)
			  WHERE id=$5 AND user_id=$6`
	tag, err := tx.Exec(ctx, query, title, timeMinutes, price, link, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	if tagIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM recipe_tags WHERE recipe_id=$1`, id); err != nil {
			return err
		}
		if err := replaceLinks(ctx, tx, `recipe_tags`, `tag_id`, id, tagIDs); err != nil {
			return err
		}
	}
	if ingredientIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id=$1`, id); err != nil {
			return err
		}
		if err := replaceLinks(ctx, tx, `recipe_ingredients`, `ingredient_id`, id, ingredientIDs); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *RecipeRepository) SetImage(ctx context.Context, userID, id int64, image string) error {
	tag, err := r.DB.Exec(ctx, `UPDATE recipes SET image=$1 WHERE id=$2 AND user_id=$3`, image, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *RecipeRepository) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM recipes WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func replaceLinks(ctx context.Context, tx pgx.Tx, table, column string, recipeID int64, ids []int64) error {
	for _, linkID := range ids {
		query := `INSERT INTO ` + table + ` (recipe_id, ` + column + `) VALUES ($1, $2) ON CONFLICT DO NOTHING`
		if _, err := tx.Exec(ctx, query, recipeID, linkID); err != nil {
			return err
		}
	}
	return nil
}

// loadLinks fills TagIDs and IngredientIDs for the given recipes.
func (r *RecipeRepository) loadLinks(ctx context.Context, recipes []model.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	index := make(map[int64]*model.Recipe, len(recipes))
	ids := make([]int64, 0, len(recipes))
	for i := range recipes {
		recipes[i].TagIDs = []int64{}
		recipes[i].IngredientIDs = []int64{}
		index[recipes[i].RecipeID] = &recipes[i]
		ids = append(ids, recipes[i].RecipeID)
	}

	rows, err := r.DB.Query(ctx, `SELECT recipe_id, tag_id FROM recipe_tags WHERE recipe_id = ANY($1) ORDER BY tag_id`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var recipeID, tagID int64
		if err := rows.Scan(&recipeID, &tagID); err != nil {
			return err
		}
		index[recipeID].TagIDs = append(index[recipeID].TagIDs, tagID)
	}

	rows, err = r.DB.Query(ctx, `SELECT recipe_id, ingredient_id FROM recipe_ingredients WHERE recipe_id = ANY($1) ORDER BY ingredient_id`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var recipeID, ingredientID int64
		if err := rows.Scan(&recipeID, &ingredientID); err != nil {
			return err
		}
		index[recipeID].IngredientIDs = append(index[recipeID].IngredientIDs, ingredientID)
	}
	return nil
}
