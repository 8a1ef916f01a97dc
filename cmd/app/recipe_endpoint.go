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

type createRecipeRequest struct {
	Title       string  `json:"title"`
	TimeMinutes int     `json:"time_minutes"`
	Price       float64 `json:"price"`
	Link        string  `json:"link"`
	Tags        []int64 `json:"tags"`
	Ingredients []int64 `json:"ingredients"`
}

type updateRecipeRequest struct {
	Title       *string  `json:"title,omitempty"`
	TimeMinutes *int     `json:"time_minutes,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Link        *string  `json:"link,omitempty"`
	Tags        []int64  `json:"tags,omitempty"`
	Ingredients []int64  `json:"ingredients,omitempty"`
}

func registerRecipeRoutes(g *echo.Group, rs *services.RecipeService, ts *services.AttrService[model.Tag], is *services.AttrService[model.Ingredient], resolver middleware.IdentityResolver) {
	recipes := g.Group("/recipes")
	recipes.Use(middleware.TokenAuth(resolver))

	// GET /api/recipe/recipes?tags=1,2&ingredients=3 — each csv filter
	// is an intersects predicate; both AND together inside the owner
	// scope.
	recipes.GET("", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		tagIDs, err := queryparams.IDList("tags", c.QueryParam("tags"))
		if err != nil {
			return errorJSON(c, err)
		}
		ingredientIDs, err := queryparams.IDList("ingredients", c.QueryParam("ingredients"))
		if err != nil {
			return errorJSON(c, err)
		}
		list, err := rs.List(c.Request().Context(), caller.UserID, tagIDs, ingredientIDs)
		if err != nil {
			return errorJSON(c, err)
		}
		out := []any{}
		for i := range list {
			out = append(out, renderRecipe(repReference, &list[i], nil, nil))
		}
		return c.JSON(http.StatusOK, out)
	})

	recipes.POST("", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		req := new(createRecipeRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		rec, err := rs.Create(c.Request().Context(), caller.UserID, &model.Recipe{
			Title:         req.Title,
			TimeMinutes:   req.TimeMinutes,
			Price:         req.Price,
			Link:          req.Link,
			TagIDs:        req.Tags,
			IngredientIDs: req.Ingredients,
		})
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusCreated, renderRecipe(repReference, rec, nil, nil))
	})

	// Retrieve-one expands tags and ingredients inline.
	recipes.GET("/:id", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		rec, err := rs.Get(c.Request().Context(), caller.UserID, id)
		if err != nil {
			return errorJSON(c, err)
		}
		tags, ingredients, err := expandRecipeLinks(c, ts, is, caller.UserID, rec)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, renderRecipe(repExpanded, rec, tags, ingredients))
	})

	recipes.PATCH("/:id", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		req := new(updateRecipeRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		rec, err := rs.Update(c.Request().Context(), caller.UserID, id, req.Title, req.Link, req.TimeMinutes, req.Price, req.Tags, req.Ingredients)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, renderRecipe(repReference, rec, nil, nil))
	})

	recipes.DELETE("/:id", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		if err := rs.Delete(c.Request().Context(), caller.UserID, id); err != nil {
			return errorJSON(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})

	// POST /api/recipe/recipes/:id/upload-image — multipart "image"
	// field.
	recipes.POST("/:id/upload-image", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		fileHeader, err := c.FormFile("image")
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "image file is required"})
		}
		src, err := fileHeader.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "could not read image"})
		}
		defer src.Close()

		rec, err := rs.UploadImage(c.Request().Context(), caller.UserID, id, fileHeader.Filename, src)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, renderRecipe(repReference, rec, nil, nil))
	})
}

func expandRecipeLinks(c echo.Context, ts *services.AttrService[model.Tag], is *services.AttrService[model.Ingredient], userID int64, rec *model.Recipe) ([]model.Tag, []model.Ingredient, error) {
	ctx := c.Request().Context()
	tags := []model.Tag{}
	for _, tagID := range rec.TagIDs {
		t, err := ts.Get(ctx, userID, tagID)
		if err != nil {
			return nil, nil, err
		}
		tags = append(tags, *t)
	}
	ingredients := []model.Ingredient{}
	for _, ingredientID := range rec.IngredientIDs {
		ing, err := is.Get(ctx, userID, ingredientID)
		if err != nil {
			return nil, nil, err
		}
		ingredients = append(ingredients, *ing)
	}
	return tags, ingredients, nil
}
