package main

import "BrLegalAPI/internal/model"

// representation picks how related records are rendered: as bare ids
// (lists and writes) or inlined in full (single-record retrieval).
type representation int

const (
	repReference representation = iota
	repExpanded
)

type courtDistrictRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	State int64  `json:"state"`
}

type courtDistrictDetail struct {
	ID    int64        `json:"id"`
	Name  string       `json:"name"`
	State *model.State `json:"state"`
}

// renderCourtDistrict builds the wire form of a district. state is only
// consulted in expanded mode.
func renderCourtDistrict(mode representation, d *model.CourtDistrict, state *model.State) any {
	if mode == repExpanded {
		return courtDistrictDetail{ID: d.DistrictID, Name: d.Name, State: state}
	}
	return courtDistrictRef{ID: d.DistrictID, Name: d.Name, State: d.StateID}
}

type recipeRef struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	TimeMinutes int     `json:"time_minutes"`
	Price       float64 `json:"price"`
	Link        string  `json:"link"`
	Image       *string `json:"image"`
	Tags        []int64 `json:"tags"`
	Ingredients []int64 `json:"ingredients"`
}

type recipeDetail struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	TimeMinutes int                `json:"time_minutes"`
	Price       float64            `json:"price"`
	Link        string             `json:"link"`
	Image       *string            `json:"image"`
	Tags        []model.Tag        `json:"tags"`
	Ingredients []model.Ingredient `json:"ingredients"`
}

func renderRecipe(mode representation, r *model.Recipe, tags []model.Tag, ingredients []model.Ingredient) any {
	if mode == repExpanded {
		if tags == nil {
			tags = []model.Tag{}
		}
		if ingredients == nil {
			ingredients = []model.Ingredient{}
		}
		return recipeDetail{
			ID:          r.RecipeID,
			Title:       r.Title,
			TimeMinutes: r.TimeMinutes,
			Price:       r.Price,
			Link:        r.Link,
			Image:       r.Image,
			Tags:        tags,
			Ingredients: ingredients,
		}
	}
	return recipeRef{
		ID:          r.RecipeID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
		Image:       r.Image,
		Tags:        r.TagIDs,
		Ingredients: r.IngredientIDs,
	}
}
