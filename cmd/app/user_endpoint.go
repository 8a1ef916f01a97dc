package main

import (
	"net/http"
	"strconv"

	"BrLegalAPI/internal/middleware"
	"BrLegalAPI/internal/model"
	"BrLegalAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateMeRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// userResponse is the only user shape that goes on the wire: no
// password material, ever.
type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func toUserResponse(u *model.User) userResponse {
	return userResponse{ID: u.UserID, Email: u.Email, Name: u.Name}
}

func registerUserRoutes(g *echo.Group, us *services.UserService) {
	user := g.Group("/user")

	// POST /api/user/users — create account
	user.POST("/users", func(c echo.Context) error {
		req := new(createUserRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		u, err := us.Create(c.Request().Context(), req.Email, req.Password, req.Name)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusCreated, toUserResponse(u))
	})

	// GET /api/user/users — list accounts
	user.GET("/users", func(c echo.Context) error {
		list, err := us.List(c.Request().Context())
		if err != nil {
			return errorJSON(c, err)
		}
		out := []userResponse{}
		for i := range list {
			out = append(out, toUserResponse(&list[i]))
		}
		return c.JSON(http.StatusOK, out)
	})

	// POST /api/user/token — exchange credentials for a bearer token.
	// Bad credentials answer 400, deliberately not 401, so the response
	// never hints at which field was wrong.
	user.POST("/token", func(c echo.Context) error {
		req := new(tokenRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if req.Email == "" || req.Password == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "email and password are required"})
		}
		u, err := us.Authenticate(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return errorJSON(c, err)
		}
		token, err := us.IssueToken(c.Request().Context(), u.UserID)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"token": token})
	})

	auth := middleware.TokenAuth(us)

	// Self management; POST answers 405 since only GET and PATCH exist
	// on the path. The middleware rides on the routes themselves: a
	// group-level Use would register catch-all routes that shadow the
	// router's method-not-allowed answer.
	user.GET("/me", func(c echo.Context) error {
		return c.JSON(http.StatusOK, toUserResponse(middleware.CurrentUser(c)))
	}, auth)

	user.PATCH("/me", func(c echo.Context) error {
		req := new(updateMeRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		u, err := us.UpdateSelf(c.Request().Context(), middleware.CurrentUser(c).UserID, req.Name, req.Email, req.Password)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, toUserResponse(u))
	}, auth)

	// Staff-only account removal; owners of geo records are rejected by
	// the storage protect rule.
	user.DELETE("/users/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		if err := us.Delete(c.Request().Context(), id); err != nil {
			return errorJSON(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}, auth, middleware.StaffOnly)
}
