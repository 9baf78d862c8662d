// Package apperror provides structured error handling for the console
// gateway. All operational errors use AppError for consistent API responses.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes grouped by the console's error taxonomy
const (
	// Infrastructure errors (5xx)
	CodeInternal = "INTERNAL_ERROR"
	CodeStorage  = "STORAGE_ERROR"

	// Validation errors (400)
	CodeValidation   = "VALIDATION_ERROR"
	CodeInvalidInput = "INVALID_INPUT"

	// Stock staging violations (422)
	CodeEmptyBatch        = "EMPTY_BATCH"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeInvalidQuantity   = "INVALID_QUANTITY"
	CodeStoreRequired     = "STORE_REQUIRED"

	// Order lifecycle violations (422)
	CodeInvalidTransition = "INVALID_STATUS_TRANSITION"

	// Session errors (401, 403)
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"

	// Not found (404)
	CodeNotFound = "NOT_FOUND"

	// Conflict (409)
	CodeSubmitInFlight = "SUBMIT_IN_FLIGHT"

	// Upstream-reported errors (passed through with upstream status)
	CodeUpstream = "UPSTREAM_ERROR"
)

// AppError is the standard error type for the gateway.
// It implements error interface and provides structured details for API responses.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (field errors, quantities, etc.)
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// AsAppError extracts an AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// --- Factory functions for common errors ---

// NewValidation creates a validation error (400)
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInvalidQuantity creates a quantity validation error (400)
func NewInvalidQuantity(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidQuantity,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInsufficientStock creates a stock shortage error (422)
func NewInsufficientStock(productID, requested, available string) *AppError {
	return &AppError{
		Code:       CodeInsufficientStock,
		Message:    "Insufficient stock available",
		HTTPStatus: http.StatusUnprocessableEntity,
		Details: map[string]any{
			"productId": productID,
			"requested": requested,
			"available": available,
		},
	}
}

// NewEmptyBatch is returned when a batch submission has nothing to send.
func NewEmptyBatch(slot string) *AppError {
	return &AppError{
		Code:       CodeEmptyBatch,
		Message:    "No stock data available to send",
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"slot": slot},
	}
}

// NewStoreRequired is returned when a dispatch submission is missing its
// destination store for a role that requires one.
func NewStoreRequired(role string) *AppError {
	return &AppError{
		Code:       CodeStoreRequired,
		Message:    fmt.Sprintf("Please select a %s store", role),
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"role": role},
	}
}

// NewSubmitInFlight is returned when a batch submit is already running for
// the same slot.
func NewSubmitInFlight(slot string) *AppError {
	return &AppError{
		Code:       CodeSubmitInFlight,
		Message:    "A submission for this batch is already in progress",
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"slot": slot},
	}
}

// NewInvalidTransition creates an order lifecycle error (422)
func NewInvalidTransition(from, to string) *AppError {
	return &AppError{
		Code:       CodeInvalidTransition,
		Message:    fmt.Sprintf("Order status cannot move from %s to %s", from, to),
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"from": from, "to": to},
	}
}

// NewNotFound creates a not found error (404)
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewInternal creates an internal server error (hides details from client)
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewStorage creates a batch storage error (500)
func NewStorage(err error) *AppError {
	return &AppError{
		Code:       CodeStorage,
		Message:    "Failed to access staged stock data",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewUnauthorized creates an authentication error (401)
func NewUnauthorized(message string) *AppError {
	return &AppError{
		Code:       CodeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewForbidden creates an authorization error (403)
func NewForbidden(message string) *AppError {
	return &AppError{
		Code:       CodeForbidden,
		Message:    message,
		HTTPStatus: http.StatusForbidden,
	}
}

// NewUpstream wraps an error reported by the inventory backend, keeping the
// upstream message and status so the caller sees what the server said.
func NewUpstream(status int, message string) *AppError {
	if message == "" {
		message = "Upstream request failed"
	}
	if status < 400 || status > 599 {
		status = http.StatusBadGateway
	}
	return &AppError{
		Code:       CodeUpstream,
		Message:    message,
		HTTPStatus: status,
	}
}
