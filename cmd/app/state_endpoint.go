package main

import (
	"net/http"
	"strconv"

	"BrLegalAPI/internal/middleware"
	"BrLegalAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type createStateRequest struct {
	Name     string `json:"name"`
	Initials string `json:"initials"`
}

type updateStateRequest struct {
	Name     *string `json:"name,omitempty"`
	Initials *string `json:"initials,omitempty"`
}

func registerStateRoutes(g *echo.Group, ss *services.StateService, resolver middleware.IdentityResolver) {
	states := g.Group("/states")
	states.Use(middleware.TokenAuth(resolver))

	states.GET("", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		list, err := ss.List(c.Request().Context(), caller.UserID)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	states.POST("", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		req := new(createStateRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		s, err := ss.Create(c.Request().Context(), caller.UserID, req.Name, req.Initials)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusCreated, s)
	})

	states.GET("/:id", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		s, err := ss.Get(c.Request().Context(), caller.UserID, id)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, s)
	})

	states.PATCH("/:id", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		req := new(updateStateRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		s, err := ss.Update(c.Request().Context(), caller.UserID, id, req.Name, req.Initials)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, s)
	})

	// Deleting a state removes its court districts with it.
	states.DELETE("/:id", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		if err := ss.Delete(c.Request().Context(), caller.UserID, id); err != nil {
			return errorJSON(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
