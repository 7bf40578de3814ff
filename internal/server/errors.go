package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/confgate/internal/domain"
)

// errorBody is the stable two-field shape of every user-facing error.
type errorBody struct {
	Error int    `json:"error"`
	Text  string `json:"text"`
}

// httpErrorHandler renders every error, including framework-level 404s,
// as JSON. Internal causes are logged, never exposed in the body.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	text := ""

	var httpErr *echo.HTTPError
	switch {
	case errors.Is(err, domain.ErrUnknownEnvironment):
		code = http.StatusNotFound
		text = "invalid environment"
	case errors.As(err, &httpErr):
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok && msg != http.StatusText(code) {
			text = msg
		}
	}

	if text == "" {
		text = defaultText(code)
	}

	s.logError(c, code, err)

	if jsonErr := c.JSON(code, errorBody{Error: code, Text: text}); jsonErr != nil {
		slog.Error("Failed to write error response", "error", jsonErr)
	}
}

func defaultText(code int) string {
	switch code {
	case http.StatusNotFound:
		return "Nothing here"
	case http.StatusUnauthorized:
		return "Unauthorized"
	default:
		return http.StatusText(code)
	}
}

func (s *Server) logError(c echo.Context, code int, err error) {
	ctx := c.Request().Context()
	attrs := []any{
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"status", code,
	}

	switch {
	case code >= http.StatusInternalServerError:
		attrs = append(attrs, "error", err)
		slog.ErrorContext(ctx, "Request failed", attrs...)
	case code == http.StatusUnauthorized:
		slog.InfoContext(ctx, "Unauthorized request", attrs...)
	default:
		slog.InfoContext(ctx, "Client error", attrs...)
	}
}
