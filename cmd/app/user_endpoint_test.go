package main

import (
	"context"
	"net/http"
	"testing"

	"BrLegalAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserSuccess(t *testing.T) {
	app := newTestApp()

	rec := app.do(t, http.MethodPost, "/api/user/users/", "", map[string]string{
		"email":    "test@test.com",
		"password": "supersecret",
		"name":     "test name",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "test@test.com", body["email"])
	assert.Equal(t, "test name", body["name"])
	assert.NotContains(t, rec.Body.String(), "password")

	// stored password is a hash that verifies against the original
	u, err := app.userSvc.Authenticate(context.Background(), "test@test.com", "supersecret")
	require.NoError(t, err)
	assert.NotEqual(t, "supersecret", u.PasswordHash)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	app := newTestApp()
	app.sampleUser(t, "test@test.com", "supersecret")

	rec := app.do(t, http.MethodPost, "/api/user/users", "", map[string]string{
		"email":    "test@test.com",
		"password": "supersecret2",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUserEmptyEmail(t *testing.T) {
	app := newTestApp()

	rec := app.do(t, http.MethodPost, "/api/user/users", "", map[string]string{
		"email":    "",
		"password": "supersecret",
		"name":     "whatever",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUserPasswordTooShort(t *testing.T) {
	app := newTestApp()

	rec := app.do(t, http.MethodPost, "/api/user/users", "", map[string]string{
		"email":    "test@test.com",
		"password": "pw",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// nothing persisted
	list, err := app.users.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateUserNormalizesEmailDomain(t *testing.T) {
	app := newTestApp()

	rec := app.do(t, http.MethodPost, "/api/user/users", "", map[string]string{
		"email":    "Test@EXAMPLE.com",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "Test@example.com", body["email"])
}

func TestListUsers(t *testing.T) {
	app := newTestApp()
	app.sampleUser(t, "one@test.com", "supersecret")
	app.sampleUser(t, "two@test.com", "supersecret")

	rec := app.do(t, http.MethodGet, "/api/user/users", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[[]map[string]any](t, rec)
	assert.Len(t, body, 2)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestTokenEndpoint(t *testing.T) {
	app := newTestApp()
	app.sampleUser(t, "test@test.com", "supersecret")

	rec := app.do(t, http.MethodPost, "/api/user/token/", "", map[string]string{
		"email":    "test@test.com",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	require.NotEmpty(t, body["token"])

	// the returned token grants access to /me
	me := app.do(t, http.MethodGet, "/api/user/me/", body["token"], nil)
	assert.Equal(t, http.StatusOK, me.Code)
}

func TestTokenBadCredentials(t *testing.T) {
	app := newTestApp()
	app.sampleUser(t, "test@test.com", "supersecret")

	tests := []struct {
		name    string
		payload map[string]string
	}{
		{name: "wrong password", payload: map[string]string{"email": "test@test.com", "password": "wrong-pass"}},
		{name: "unknown email", payload: map[string]string{"email": "nobody@test.com", "password": "supersecret"}},
		{name: "missing password", payload: map[string]string{"email": "test@test.com"}},
		{name: "missing email", payload: map[string]string{"password": "supersecret"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, http.MethodPost, "/api/user/token", "", tt.payload)
			// 400, not 401: the response must not hint at which field
			// was wrong
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestTokenIssuanceIsIdempotentPerUser(t *testing.T) {
	app := newTestApp()
	u, _ := app.sampleUser(t, "test@test.com", "supersecret")

	for i := 0; i < 3; i++ {
		rec := app.do(t, http.MethodPost, "/api/user/token", "", map[string]string{
			"email":    "test@test.com",
			"password": "supersecret",
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 1, app.tokens.TokenCount(u.UserID))
}

func TestMeRequiresAuth(t *testing.T) {
	app := newTestApp()

	rec := app.do(t, http.MethodGet, "/api/user/me/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/user/me", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMePostNotAllowed(t *testing.T) {
	app := newTestApp()
	_, token := app.sampleUser(t, "test@test.com", "supersecret")

	rec := app.do(t, http.MethodPost, "/api/user/me", token, map[string]string{"name": "x"})
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestMeRetrieve(t *testing.T) {
	app := newTestApp()
	u, token := app.sampleUser(t, "test@test.com", "supersecret")

	rec := app.do(t, http.MethodGet, "/api/user/me", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, float64(u.UserID), body["id"])
	assert.Equal(t, "test@test.com", body["email"])
}

func TestMePartialUpdate(t *testing.T) {
	app := newTestApp()
	u, token := app.sampleUser(t, "test@test.com", "supersecret")

	rec := app.do(t, http.MethodPatch, "/api/user/me", token, map[string]string{"name": "new name"})

	require.Equal(t, http.StatusOK, rec.Code)
	updated, err := app.users.GetByID(context.Background(), u.UserID)
	require.NoError(t, err)
	assert.Equal(t, "new name", updated.Name)
	// omitted fields unchanged
	assert.Equal(t, "test@test.com", updated.Email)
}

func TestMeUpdateRehashesPassword(t *testing.T) {
	app := newTestApp()
	_, token := app.sampleUser(t, "test@test.com", "supersecret")

	rec := app.do(t, http.MethodPatch, "/api/user/me", token, map[string]string{"password": "evenmoresecret"})
	require.Equal(t, http.StatusOK, rec.Code)

	_, err := app.userSvc.Authenticate(context.Background(), "test@test.com", "evenmoresecret")
	assert.NoError(t, err)
	_, err = app.userSvc.Authenticate(context.Background(), "test@test.com", "supersecret")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestDeleteUserRequiresStaff(t *testing.T) {
	app := newTestApp()
	_, token := app.sampleUser(t, "plain@test.com", "supersecret")

	rec := app.do(t, http.MethodDelete, "/api/user/users/1", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteUserProtected(t *testing.T) {
	app := newTestApp()
	admin, err := app.userSvc.CreateSuperuser(context.Background(), "admin@test.com", "supersecret")
	require.NoError(t, err)
	token, err := app.userSvc.IssueToken(context.Background(), admin.UserID)
	require.NoError(t, err)
	victim, _ := app.sampleUser(t, "owner@test.com", "supersecret")

	// simulate the restrict rule: the account still owns geo records
	app.users.DeleteErr = model.ErrProtected

	rec := app.do(t, http.MethodDelete, "/api/user/users/2", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	_, err = app.users.GetByID(context.Background(), victim.UserID)
	assert.NoError(t, err)
}
