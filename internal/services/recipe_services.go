package services

import (
	"context"
	"io"
	"strings"

	"BrLegalAPI/internal/model"
)

type RecipeStore interface {
	Create(ctx context.Context, userID int64, rec *model.Recipe) (int64, error)
	List(ctx context.Context, userID int64, tagIDs, ingredientIDs []int64) ([]model.Recipe, error)
	GetByID(ctx context.Context, userID, id int64) (*model.Recipe, error)
	Update(ctx context.Context, userID, id int64, title, link *string, timeMinutes *int, price *float64, tagIDs, ingredientIDs []int64) error
	SetImage(ctx context.Context, userID, id int64, image string) error
	Delete(ctx context.Context, userID, id int64) error
}

// ImageStore persists an uploaded recipe image and returns the stored
// key. Implementations: local media directory, S3.
type ImageStore interface {
	Save(ctx context.Context, filename string, src io.Reader) (string, error)
}

type RecipeService struct {
	Store       RecipeStore
	Tags        AttrStore[model.Tag]        // linked ids must exist under the caller
	Ingredients AttrStore[model.Ingredient]
	Images      ImageStore
}

func NewRecipeService(store RecipeStore, tags AttrStore[model.Tag], ingredients AttrStore[model.Ingredient], images ImageStore) *RecipeService {
	return &RecipeService{Store: store, Tags: tags, Ingredients: ingredients, Images: images}
}

func (s *RecipeService) checkLinks(ctx context.Context, userID int64, tagIDs, ingredientIDs []int64) error {
	for _, id := range tagIDs {
		if _, err := s.Tags.GetByID(ctx, userID, id); err != nil {
			return model.Validation("tag not found")
		}
	}
	for _, id := range ingredientIDs {
		if _, err := s.Ingredients.GetByID(ctx, userID, id); err != nil {
			return model.Validation("ingredient not found")
		}
	}
	return nil
}

func (s *RecipeService) Create(ctx context.Context, userID int64, rec *model.Recipe) (*model.Recipe, error) {
	rec.Title = strings.TrimSpace(rec.Title)
	if rec.Title == "" {
		return nil, model.ErrTitleRequired
	}
	if rec.TimeMinutes < 0 {
		return nil, model.Validation("time_minutes must not be negative")
	}
	if rec.Price < 0 {
		return nil, model.Validation("price must not be negative")
	}
	if err := s.checkLinks(ctx, userID, rec.TagIDs, rec.IngredientIDs); err != nil {
		return nil, err
	}
	id, err := s.Store.Create(ctx, userID, rec)
	if err != nil {
		return nil, err
	}
	return s.Store.GetByID(ctx, userID, id)
}

// List filters by the optional tag/ingredient intersects predicates,
// AND-composed, always inside the owner scope.
func (s *RecipeService) List(ctx context.Context, userID int64, tagIDs, ingredientIDs []int64) ([]model.Recipe, error) {
	return s.Store.List(ctx, userID, tagIDs, ingredientIDs)
}

func (s *RecipeService) Get(ctx context.Context, userID, id int64) (*model.Recipe, error) {
	return s.Store.GetByID(ctx, userID, id)
}

func (s *RecipeService) Update(ctx context.Context, userID, id int64, title, link *string, timeMinutes *int, price *float64, tagIDs, ingredientIDs []int64) (*model.Recipe, error) {
	if title == nil && link == nil && timeMinutes == nil && price == nil && tagIDs == nil && ingredientIDs == nil {
		return nil, model.ErrNothingToUpdate
	}
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return nil, model.ErrTitleRequired
		}
		title = &trimmed
	}
	if timeMinutes != nil && *timeMinutes < 0 {
		return nil, model.Validation("time_minutes must not be negative")
	}
	if price != nil && *price < 0 {
		return nil, model.Validation("price must not be negative")
	}
	if err := s.checkLinks(ctx, userID, tagIDs, ingredientIDs); err != nil {
		return nil, err
	}
	if err := s.Store.Update(ctx, userID, id, title, link, timeMinutes, price, tagIDs, ingredientIDs); err != nil {
		return nil, err
	}
	return s.Store.GetByID(ctx, userID, id)
}

func (s *RecipeService) Delete(ctx context.Context, userID, id int64) error {
	return s.Store.Delete(ctx, userID, id)
}

// UploadImage stores the file and records its key on the recipe. The
// recipe lookup enforces ownership before anything is written.
func (s *RecipeService) UploadImage(ctx context.Context, userID, id int64, filename string, src io.Reader) (*model.Recipe, error) {
	if _, err := s.Store.GetByID(ctx, userID, id); err != nil {
		return nil, err
	}
	key, err := s.Images.Save(ctx, filename, src)
	if err != nil {
		return nil, err
	}
	if err := s.Store.SetImage(ctx, userID, id, key); err != nil {
		return nil, err
	}
	return s.Store.GetByID(ctx, userID, id)
}
