package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"polyglot/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

// writeServiceError maps service sentinel errors to HTTP responses.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return errorJSON(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, service.ErrNotFound):
		return errorJSON(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, service.ErrConflict):
		return errorJSON(c, http.StatusConflict, "conflict")
	case errors.Is(err, service.ErrProvider):
		return errorJSON(c, http.StatusBadGateway, "suggestion provider failed")
	default:
		return errorJSON(c, http.StatusInternalServerError, "internal error")
	}
}
