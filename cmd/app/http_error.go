package main

import (
	"errors"
	"net/http"

	"BrLegalAPI/internal/model"
	"BrLegalAPI/internal/queryparams"

	"github.com/labstack/echo/v4"
)

// errorJSON maps the service error taxonomy to a status and a
// structured body. Anything unrecognized is a 500 with a generic
// message; nothing is swallowed or retried.
func errorJSON(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrInvalidCredentials),
		errors.Is(err, model.ErrProtected),
		errors.Is(err, queryparams.ErrBadParam):
		status = http.StatusBadRequest
	default:
		var ve *model.ValidationError
		if errors.As(err, &ve) {
			status = http.StatusBadRequest
		}
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	return c.JSON(status, map[string]string{"error": msg})
}
