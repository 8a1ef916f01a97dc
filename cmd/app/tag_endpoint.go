package main

import (
	"net/http"
	"strconv"

	"BrLegalAPI/internal/middleware"
	"BrLegalAPI/internal/model"
	"BrLegalAPI/internal/queryparams"
	"BrLegalAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type attrRequest struct {
	Name string `json:"name"`
}

func registerTagRoutes(g *echo.Group, ts *services.AttrService[model.Tag], resolver middleware.IdentityResolver) {
	tags := g.Group("/tags")
	tags.Use(middleware.TokenAuth(resolver))

	// GET /api/recipe/tags?assigned_only=1
	tags.GET("", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		assignedOnly, err := queryparams.AssignedOnly(c.QueryParam("assigned_only"))
		if err != nil {
			return errorJSON(c, err)
		}
		list, err := ts.List(c.Request().Context(), caller.UserID, assignedOnly)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	tags.POST("", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		req := new(attrRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		t, err := ts.Create(c.Request().Context(), caller.UserID, req.Name)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusCreated, t)
	})

	tags.GET("/:id", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		t, err := ts.Get(c.Request().Context(), caller.UserID, id)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, t)
	})

	tags.PATCH("/:id", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		req := new(attrRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		t, err := ts.Update(c.Request().Context(), caller.UserID, id, req.Name)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, t)
	})

	tags.DELETE("/:id", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		if err := ts.Delete(c.Request().Context(), caller.UserID, id); err != nil {
			return errorJSON(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
