package http

import (
	"errors"
	"log/slog"
	"net/http"

	"backoffice/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "internal server error"

// statusFor maps domain errors onto HTTP status codes. Anything unknown is a 500.
func statusFor(err error) int {
	var httpErr *echo.HTTPError
	var bindErr *echo.BindingError
	var validationErr validator.ValidationErrors
	var requestErr *openapi3filter.RequestError
	switch {
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.As(err, &validationErr),
		errors.As(err, &requestErr),
		errors.As(err, &bindErr):
		return http.StatusBadRequest
	case errors.As(err, &httpErr):
		return httpErr.Code
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c echo.Context, err error) error {
	code := statusFor(err)
	resp := ErrorResponse{Code: code, Message: err.Error()}

	var validationErr validator.ValidationErrors
	var httpErr *echo.HTTPError
	switch {
	case code >= http.StatusInternalServerError:
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Path()),
			slog.Any("error", err))
		resp.Message = internalErrorMessage
	case errors.As(err, &validationErr):
		resp.Message = "request validation failed"
		resp.Fields = validationFields(validationErr)
	case errors.As(err, &httpErr):
		if msg, ok := httpErr.Message.(string); ok {
			resp.Message = msg
		}
	}

	return c.JSON(code, resp)
}

// handleError renders errors that handlers and middleware return instead of
// writing a response themselves.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	_ = s.fail(c, err)
}
