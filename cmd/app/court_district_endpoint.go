package main

import (
	"net/http"
	"strconv"

	"BrLegalAPI/internal/middleware"
	"BrLegalAPI/internal/queryparams"
	"BrLegalAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type createCourtDistrictRequest struct {
	Name  string `json:"name"`
	State int64  `json:"state"`
}

type updateCourtDistrictRequest struct {
	Name  *string `json:"name,omitempty"`
	State *int64  `json:"state,omitempty"`
}

func registerCourtDistrictRoutes(g *echo.Group, ds *services.CourtDistrictService, ss *services.StateService, resolver middleware.IdentityResolver) {
	districts := g.Group("/court-districts")
	districts.Use(middleware.TokenAuth(resolver))

	// GET /api/geo/court-districts?state=<id> — the optional state filter
	// is a singleton membership set on top of the owner scope.
	districts.GET("", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		stateIDs, err := queryparams.StateIDs(c.QueryParam("state"))
		if err != nil {
			return errorJSON(c, err)
		}
		list, err := ds.List(c.Request().Context(), caller.UserID, stateIDs)
		if err != nil {
			return errorJSON(c, err)
		}
		out := []any{}
		for i := range list {
			out = append(out, renderCourtDistrict(repReference, &list[i], nil))
		}
		return c.JSON(http.StatusOK, out)
	})

	districts.POST("", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		req := new(createCourtDistrictRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		d, err := ds.Create(c.Request().Context(), caller.UserID, req.Name, req.State)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusCreated, renderCourtDistrict(repReference, d, nil))
	})

	// Retrieve-one is the only operation that expands the related state
	// inline.
	districts.GET("/:id", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		d, err := ds.Get(c.Request().Context(), caller.UserID, id)
		if err != nil {
			return errorJSON(c, err)
		}
		state, err := ss.Get(c.Request().Context(), caller.UserID, d.StateID)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, renderCourtDistrict(repExpanded, d, state))
	})

	districts.PATCH("/:id", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		req := new(updateCourtDistrictRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		d, err := ds.Update(c.Request().Context(), caller.UserID, id, req.Name, req.State)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, renderCourtDistrict(repReference, d, nil))
	})

	districts.DELETE("/:id", func(c echo.Context) error {
		caller := middleware.CurrentUser(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		if err := ds.Delete(c.Request().Context(), caller.UserID, id); err != nil {
			return errorJSON(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
