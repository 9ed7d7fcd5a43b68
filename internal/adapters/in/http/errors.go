package http

import (
	"errors"
	"fmt"
	"net/http"

	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every rejected request.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	codeNotFound          = "not_found"
	codeInvalidState      = "invalid_state"
	codeInsufficientStock = "insufficient_stock"
	codeInvalidInput      = "invalid_input"
	codeUnauthorized      = "unauthorized"
	codeForbidden         = "forbidden"
	codePaymentRequired   = "payment_required"
	codeDependencyFailure = "dependency_failure"
	codeInternal          = "internal_error"
)

// classify maps an error onto a status code and response body. Messages of
// 5xx responses never carry the underlying error.
func classify(err error) (int, Error) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, Error{Code: httpErrorCode(he.Code), Message: fmt.Sprint(he.Message)}
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, Error{Code: codeNotFound, Message: err.Error()}
	case errors.Is(err, catalog.ErrInsufficientStock):
		return http.StatusConflict, Error{Code: codeInsufficientStock, Message: err.Error()}
	case errors.Is(err, errs.ErrInvalidState):
		return http.StatusConflict, Error{Code: codeInvalidState, Message: err.Error()}
	case errors.Is(err, errs.ErrPaymentRequired):
		return http.StatusPaymentRequired, Error{Code: codePaymentRequired, Message: err.Error()}
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized, Error{Code: codeUnauthorized, Message: "missing or invalid credentials"}
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, Error{Code: codeForbidden, Message: err.Error()}
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, Error{Code: codeInvalidInput, Message: err.Error()}
	case errors.Is(err, errs.ErrDependencyFailure):
		return http.StatusServiceUnavailable, Error{Code: codeDependencyFailure, Message: "a backing service is unavailable"}
	default:
		return http.StatusInternalServerError, Error{Code: codeInternal, Message: "internal server error"}
	}
}

func httpErrorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return codeNotFound
	case http.StatusUnauthorized:
		return codeUnauthorized
	case http.StatusForbidden:
		return codeForbidden
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		return codeInvalidInput
	}
	if status >= http.StatusInternalServerError {
		return codeInternal
	}
	return http.StatusText(status)
}

// handleError is installed as echo's HTTPErrorHandler.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := classify(err)
	logger := s.requestLogger(c)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		logger.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		logger.Error().Err(err).Msg("write error response")
	}
}
