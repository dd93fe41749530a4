package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AppError is an operational error: expected, carries a status code and a
// message that is safe to show to the caller in any environment.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewBadRequest(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

func NewForbidden(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

func NewInternal(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Err: err}
}

// WriteError is the single sink every handler funnels service errors through.
// Operational errors keep their status and message. Anything else is a 500
// whose detail is only exposed in debug mode. Token expiry and bad token
// signatures are remapped to a generic 401 so callers just re-login.
func WriteError(w http.ResponseWriter, log *zap.Logger, debug bool, err error) {
	if errors.Is(err, jwt.ErrTokenExpired) {
		ResponseJSON(w, http.StatusUnauthorized, false, "token expired, please login again", nil, nil)
		return
	}
	if errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrTokenMalformed) {
		ResponseJSON(w, http.StatusUnauthorized, false, "invalid token, please login again", nil, nil)
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		var detail any
		if debug && appErr.Err != nil {
			detail = appErr.Err.Error()
		}
		if appErr.Code >= http.StatusInternalServerError {
			log.Error("Operational error", zap.Int("code", appErr.Code), zap.Error(err))
		} else {
			log.Warn("Operational error", zap.Int("code", appErr.Code), zap.Error(err))
		}
		ResponseJSON(w, appErr.Code, false, appErr.Message, nil, detail)
		return
	}

	log.Error("Unexpected error", zap.Error(err))
	if debug {
		ResponseJSON(w, http.StatusInternalServerError, false, err.Error(), nil, nil)
		return
	}
	ResponseInternalError(w, "Internal server error")
}
