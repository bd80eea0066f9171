package errors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeNotFound               = "NOT_FOUND"
	CodeBadRequest             = "BAD_REQUEST"
	CodeValidation             = "VALIDATION_ERROR"
	CodeInvalidRating          = "INVALID_RATING"
	CodeNotEligible            = "NOT_ELIGIBLE"
	CodeAlreadyReviewed        = "ALREADY_REVIEWED"
	CodeInvalidStateTransition = "INVALID_STATE_TRANSITION"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeForbidden              = "FORBIDDEN"
	CodeConflict               = "CONFLICT"
	CodeTooManyRequests        = "TOO_MANY_REQUESTS"
	CodeInternal               = "INTERNAL_ERROR"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    CodeBadRequest,
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

// Validation reports malformed input such as a non-positive quantity or a missing field.
func Validation(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

func InvalidRating(rating int) *AppError {
	return &AppError{
		Code:    CodeInvalidRating,
		Message: fmt.Sprintf("rating must be between 1 and 5, got %d", rating),
		Status:  http.StatusBadRequest,
	}
}

func NotEligible(message string) *AppError {
	return &AppError{
		Code:    CodeNotEligible,
		Message: message,
		Status:  http.StatusForbidden,
	}
}

func AlreadyReviewed(productID string) *AppError {
	return &AppError{
		Code:    CodeAlreadyReviewed,
		Message: fmt.Sprintf("product %s has already been reviewed by this buyer", productID),
		Status:  http.StatusConflict,
	}
}

func InvalidStateTransition(from, to string) *AppError {
	return &AppError{
		Code:    CodeInvalidStateTransition,
		Message: fmt.Sprintf("cannot move request from %s to %s", from, to),
		Status:  http.StatusConflict,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsValidation matches every malformed-input error, including out-of-range ratings.
func IsValidation(err error) bool {
	return Is(err, CodeValidation) || Is(err, CodeInvalidRating) || Is(err, CodeBadRequest)
}

func Forbidden(message string, err error) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
		Status:  http.StatusConflict,
		Err:     nil,
	}
}

func TooManyRequests(message string) *AppError {
	return &AppError{
		Code:    CodeTooManyRequests,
		Message: message,
		Status:  http.StatusTooManyRequests,
		Err:     nil,
	}
}

// Wrap keeps an AppError untouched and turns anything else into an internal error.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(message, err)
}
