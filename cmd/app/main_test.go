package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"BrLegalAPI/internal/model"
	"BrLegalAPI/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// testApp wires the full route table over in-memory stores so the
// HTTP surface can be exercised end to end.
type testApp struct {
	e           *echo.Echo
	users       *services.FakeUserStore
	tokens      *services.FakeTokenStore
	states      *services.FakeStateStore
	districts   *services.FakeCourtDistrictStore
	tags        *services.FakeAttrStore[model.Tag]
	ingredients *services.FakeAttrStore[model.Ingredient]
	recipes     *services.FakeRecipeStore
	images      *services.FakeImageStore
	userSvc     *services.UserService
}

func newTestApp() *testApp {
	users := services.NewFakeUserStore()
	tokens := services.NewFakeTokenStore(users)
	states := services.NewFakeStateStore()
	districts := services.NewFakeCourtDistrictStore()
	states.Districts = districts
	tags := services.NewFakeTagStore()
	ingredients := services.NewFakeIngredientStore()
	recipes := services.NewFakeRecipeStore()
	tags.Recipes = recipes
	ingredients.Recipes = recipes
	images := services.NewFakeImageStore()

	userSvc := services.NewUserService(users, tokens)
	stateSvc := services.NewStateService(states)
	districtSvc := services.NewCourtDistrictService(districts, states)
	tagSvc := services.NewAttrService[model.Tag](tags)
	ingredientSvc := services.NewAttrService[model.Ingredient](ingredients)
	recipeSvc := services.NewRecipeService(recipes, tags, ingredients, images)

	return &testApp{
		e:           newRouter(userSvc, stateSvc, districtSvc, tagSvc, ingredientSvc, recipeSvc),
		users:       users,
		tokens:      tokens,
		states:      states,
		districts:   districts,
		tags:        tags,
		ingredients: ingredients,
		recipes:     recipes,
		images:      images,
		userSvc:     userSvc,
	}
}

// sampleUser registers an account and returns it with a usable token.
func (a *testApp) sampleUser(t *testing.T, email, password string) (*model.User, string) {
	t.Helper()
	u, err := a.userSvc.Create(context.Background(), email, password, "test name")
	require.NoError(t, err)
	token, err := a.userSvc.IssueToken(context.Background(), u.UserID)
	require.NoError(t, err)
	return u, token
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) upload(t *testing.T, path, token, field, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
