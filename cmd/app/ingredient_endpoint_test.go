package main

import (
	"context"
	"net/http"
	"testing"

	"BrLegalAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientsRequireAuth(t *testing.T) {
	app := newTestApp()

	rec := app.do(t, http.MethodGet, "/api/recipe/ingredients/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateIngredient(t *testing.T) {
	app := newTestApp()
	u, token := app.sampleUser(t, "test@test.com", "supersecret")

	rec := app.do(t, http.MethodPost, "/api/recipe/ingredients", token, map[string]string{"name": "Cabbage"})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "Cabbage", body["name"])

	ing, err := app.ingredients.GetByID(context.Background(), u.UserID, int64(body["id"].(float64)))
	require.NoError(t, err)
	assert.Equal(t, u.UserID, ing.UserID)
}

func TestListIngredientsLimitedToUserAndOrdered(t *testing.T) {
	app := newTestApp()
	u, token := app.sampleUser(t, "test@test.com", "supersecret")
	other, _ := app.sampleUser(t, "other@test.com", "supersecret")

	app.ingredients.Create(context.Background(), u.UserID, "Kale")
	app.ingredients.Create(context.Background(), u.UserID, "Salt")
	app.ingredients.Create(context.Background(), other.UserID, "Vinegar")

	rec := app.do(t, http.MethodGet, "/api/recipe/ingredients", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[[]map[string]any](t, rec)
	require.Len(t, body, 2)
	assert.Equal(t, "Salt", body[0]["name"])
	assert.Equal(t, "Kale", body[1]["name"])
}

func TestListIngredientsAssignedOnly(t *testing.T) {
	app := newTestApp()
	u, token := app.sampleUser(t, "test@test.com", "supersecret")

	assigned, err := app.ingredients.Create(context.Background(), u.UserID, "Apples")
	require.NoError(t, err)
	app.ingredients.Create(context.Background(), u.UserID, "Turkey")
	app.recipes.Create(context.Background(), u.UserID, &model.Recipe{Title: "Apple crumble", IngredientIDs: []int64{assigned}})

	rec := app.do(t, http.MethodGet, "/api/recipe/ingredients?assigned_only=1", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[[]map[string]any](t, rec)
	require.Len(t, body, 1)
	assert.Equal(t, "Apples", body[0]["name"])
}

func TestUpdateIngredient(t *testing.T) {
	app := newTestApp()
	u, token := app.sampleUser(t, "test@test.com", "supersecret")
	id, err := app.ingredients.Create(context.Background(), u.UserID, "Cabbage")
	require.NoError(t, err)

	rec := app.do(t, http.MethodPatch, "/api/recipe/ingredients/1", token, map[string]string{"name": "Coriander"})

	require.Equal(t, http.StatusOK, rec.Code)
	ing, err := app.ingredients.GetByID(context.Background(), u.UserID, id)
	require.NoError(t, err)
	assert.Equal(t, "Coriander", ing.Name)
}

func TestIngredientOtherOwnerIsNotFound(t *testing.T) {
	app := newTestApp()
	_, token := app.sampleUser(t, "test@test.com", "supersecret")
	other, _ := app.sampleUser(t, "other@test.com", "supersecret")
	app.ingredients.Create(context.Background(), other.UserID, "Cabbage")

	rec := app.do(t, http.MethodGet, "/api/recipe/ingredients/1", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodDelete, "/api/recipe/ingredients/1", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteIngredient(t *testing.T) {
	app := newTestApp()
	u, token := app.sampleUser(t, "test@test.com", "supersecret")
	id, err := app.ingredients.Create(context.Background(), u.UserID, "Cabbage")
	require.NoError(t, err)

	rec := app.do(t, http.MethodDelete, "/api/recipe/ingredients/1", token, nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	_, err = app.ingredients.GetByID(context.Background(), u.UserID, id)
	assert.Error(t, err)
}
