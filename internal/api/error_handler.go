package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clientdesk/client-management/internal/api/metrics"
	"github.com/clientdesk/client-management/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs storage failures and unexpected errors internally without leaking
//     details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, reason := resolveError(err, log, c)
		metrics.RequestErrorsTotal.WithLabelValues(reason).Inc()

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Echo's own errors (bind failures, 404 from router, validation 422s).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), httpErrorReason(he.Code)
	}

	// Known domain errors map to deterministic HTTP codes. Not-found and
	// duplicate messages carry the offending id, so err.Error() is safe to
	// render.
	switch {
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound, err.Error(), "not_found"
	case errors.Is(err, domain.ErrDuplicateClient):
		return http.StatusConflict, err.Error(), "duplicate"
	case errors.Is(err, domain.ErrStoreCorrupted):
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("client store corrupted")
		return http.StatusInternalServerError, "internal server error", "store_corrupted"
	case errors.Is(err, domain.ErrStoreUnavailable):
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("client store unavailable")
		return http.StatusInternalServerError, "internal server error", "store_unavailable"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error", "internal"
}

// httpErrorReason classifies an echo.HTTPError code for the error counter.
func httpErrorReason(code int) string {
	switch {
	case code == http.StatusNotFound:
		return "not_found"
	case code == http.StatusUnprocessableEntity:
		return "validation"
	case code == http.StatusTooManyRequests:
		return "rate_limited"
	case code >= http.StatusInternalServerError:
		return "internal"
	default:
		return "bad_request"
	}
}
