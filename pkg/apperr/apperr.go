package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes distinguished by the HTTP layer.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeInternalError    = "INTERNAL_ERROR"
)

// AppError is a classified application error. Anything that is not an
// AppError is treated as unclassified and surfaces as a 500 with a generic
// message.
type AppError struct {
	Code    string
	Message string
	Status  int
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

// Validation marks malformed or out-of-domain input. The message names the
// violated field or rule and is safe to return to the caller.
func Validation(message string) *AppError {
	return &AppError{
		Code:    CodeValidationFailed,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NotFound marks a dangling reference to a nonexistent entity id.
func NotFound(entity string, id int) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with id=%d not found", entity, id),
		Status:  http.StatusNotFound,
	}
}

// Internal wraps an unexpected fault. Its message is generic; the cause stays
// attached for logging only.
func Internal(err error) *AppError {
	return &AppError{
		Code:    CodeInternalError,
		Message: "an unexpected error occurred",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == CodeNotFound
}

func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == CodeValidationFailed
}

// HTTPStatus maps any error to the status the response should carry.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// ClientMessage returns the message safe to expose for err. Unclassified
// errors get the generic internal message.
func ClientMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "an unexpected error occurred"
}
