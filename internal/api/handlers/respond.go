package handlers

import (
	"net/http"

	"auction-engine/internal/domain"
	"auction-engine/pkg/logger"

	"github.com/labstack/echo/v4"
)

// writeError maps the engine's error taxonomy onto HTTP: NotFound -> 404,
// InvalidRequest -> 400, everything else (collaborator failures) -> 500.
func writeError(c echo.Context, log logger.Logger, err error) error {
	switch {
	case domain.IsNotFound(err):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case domain.IsInvalid(err):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		log.Error("Request failed", "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
