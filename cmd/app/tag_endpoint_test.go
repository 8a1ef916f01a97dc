package main

import (
	"context"
	"net/http"
	"testing"

	"BrLegalAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsRequireAuth(t *testing.T) {
	app := newTestApp()

	rec := app.do(t, http.MethodGet, "/api/recipe/tags/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateTag(t *testing.T) {
	app := newTestApp()
	u, token := app.sampleUser(t, "test@test.com", "supersecret")

	rec := app.do(t, http.MethodPost, "/api/recipe/tags", token, map[string]string{"name": "Vegan"})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "Vegan", body["name"])

	tag, err := app.tags.GetByID(context.Background(), u.UserID, int64(body["id"].(float64)))
	require.NoError(t, err)
	assert.Equal(t, u.UserID, tag.UserID)
}

func TestCreateTagEmptyName(t *testing.T) {
	app := newTestApp()
	_, token := app.sampleUser(t, "test@test.com", "supersecret")

	rec := app.do(t, http.MethodPost, "/api/recipe/tags", token, map[string]string{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListTagsLimitedToUserAndOrdered(t *testing.T) {
	app := newTestApp()
	u, token := app.sampleUser(t, "test@test.com", "supersecret")
	other, _ := app.sampleUser(t, "other@test.com", "supersecret")

	app.tags.Create(context.Background(), u.UserID, "Dessert")
	app.tags.Create(context.Background(), u.UserID, "Vegan")
	app.tags.Create(context.Background(), other.UserID, "Fruity")

	rec := app.do(t, http.MethodGet, "/api/recipe/tags", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[[]map[string]any](t, rec)
	require.Len(t, body, 2)
	assert.Equal(t, "Vegan", body[0]["name"])
	assert.Equal(t, "Dessert", body[1]["name"])
}

func TestListTagsAssignedOnly(t *testing.T) {
	app := newTestApp()
	u, token := app.sampleUser(t, "test@test.com", "supersecret")

	assigned, err := app.tags.Create(context.Background(), u.UserID, "Breakfast")
	require.NoError(t, err)
	app.tags.Create(context.Background(), u.UserID, "Lunch")
	app.recipes.Create(context.Background(), u.UserID, &model.Recipe{Title: "Eggs", TagIDs: []int64{assigned}})

	rec := app.do(t, http.MethodGet, "/api/recipe/tags?assigned_only=1", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[[]map[string]any](t, rec)
	require.Len(t, body, 1)
	assert.Equal(t, "Breakfast", body[0]["name"])
}

func TestListTagsAssignedOnlyMalformed(t *testing.T) {
	app := newTestApp()
	_, token := app.sampleUser(t, "test@test.com", "supersecret")

	rec := app.do(t, http.MethodGet, "/api/recipe/tags?assigned_only=yes", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTag(t *testing.T) {
	app := newTestApp()
	u, token := app.sampleUser(t, "test@test.com", "supersecret")
	id, err := app.tags.Create(context.Background(), u.UserID, "Dessert")
	require.NoError(t, err)

	rec := app.do(t, http.MethodPatch, "/api/recipe/tags/1", token, map[string]string{"name": "Dinner"})

	require.Equal(t, http.StatusOK, rec.Code)
	tag, err := app.tags.GetByID(context.Background(), u.UserID, id)
	require.NoError(t, err)
	assert.Equal(t, "Dinner", tag.Name)
}

func TestTagOtherOwnerIsNotFound(t *testing.T) {
	app := newTestApp()
	_, token := app.sampleUser(t, "test@test.com", "supersecret")
	other, _ := app.sampleUser(t, "other@test.com", "supersecret")
	app.tags.Create(context.Background(), other.UserID, "Dessert")

	rec := app.do(t, http.MethodGet, "/api/recipe/tags/1", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodPatch, "/api/recipe/tags/1", token, map[string]string{"name": "Dinner"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodDelete, "/api/recipe/tags/1", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTag(t *testing.T) {
	app := newTestApp()
	u, token := app.sampleUser(t, "test@test.com", "supersecret")
	id, err := app.tags.Create(context.Background(), u.UserID, "Dessert")
	require.NoError(t, err)

	rec := app.do(t, http.MethodDelete, "/api/recipe/tags/1", token, nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	_, err = app.tags.GetByID(context.Background(), u.UserID, id)
	assert.Error(t, err)
}
