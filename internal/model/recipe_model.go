package model

type Tag struct {
	TagID  int64  `json:"id"`
	Name   string `json:"name"`
	UserID int64  `json:"-"`
}

type Ingredient struct {
	IngredientID int64  `json:"id"`
	Name         string `json:"name"`
	UserID       int64  `json:"-"`
}

type Recipe struct {
	RecipeID      int64   `json:"id"`
	Title         string  `json:"title"`
	TimeMinutes   int     `json:"time_minutes"`
	Price         float64 `json:"price"`
	Link          string  `json:"link"`
	Image         *string `json:"image,omitempty"`
	UserID        int64   `json:"-"`
	TagIDs        []int64 `json:"-"`
	IngredientIDs []int64 `json:"-"`
}
