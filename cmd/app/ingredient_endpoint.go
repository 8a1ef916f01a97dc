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

func registerIngredientRoutes(g *echo.Group, is *services.AttrService[model.Ingredient], resolver middleware.IdentityResolver) {
	ingredients := g.Group("/ingredients")
	ingredients.Use(middleware.TokenAuth(resolver))

	// GET /api/recipe/ingredients?assigned_only=1
	ingredients.GET("", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		assignedOnly, err := queryparams.AssignedOnly(c.QueryParam("assigned_only"))
		if err != nil {
			return errorJSON(c, err)
		}
		list, err := is.List(c.Request().Context(), caller.UserID, assignedOnly)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	ingredients.POST("", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		req := new(attrRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		ing, err := is.Create(c.Request().Context(), caller.UserID, req.Name)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusCreated, ing)
	})

	ingredients.GET("/:id", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		ing, err := is.Get(c.Request().Context(), caller.UserID, id)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, ing)
	})

	ingredients.PATCH("/:id", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		req := new(attrRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		ing, err := is.Update(c.Request().Context(), caller.UserID, id, req.Name)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, ing)
	})

	ingredients.DELETE("/:id", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		if err := is.Delete(c.Request().Context(), caller.UserID, id); err != nil {
			return errorJSON(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
