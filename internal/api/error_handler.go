package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sirpyerre/user-api/internal/api/handler"
	"github.com/sirpyerre/user-api/internal/api/metrics"
	"github.com/sirpyerre/user-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders field violations as 422 with per-field details.
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, handler.ErrorResponse) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		for _, field := range ve.Fields() {
			metrics.ValidationFailuresTotal.WithLabelValues(c.Path(), field).Inc()
		}
		return http.StatusUnprocessableEntity, handler.ErrorResponse{
			Error:   domain.ErrValidation.Error(),
			Details: ve.Violations,
		}
	}

	// Echo's own errors (malformed body, 404/405 from the router, body limit, ...).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, handler.ErrorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	if errors.Is(err, domain.ErrUserNotFound) {
		return http.StatusNotFound, handler.ErrorResponse{Error: "user not found"}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, handler.ErrorResponse{Error: "internal server error"}
}
