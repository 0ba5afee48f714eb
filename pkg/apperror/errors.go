package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Authentication (AUTH) ----

// ErrAuthFailed deliberately does not distinguish "unknown credential" from
// anything else, so a failed login leaks no identity information.
func ErrAuthFailed() *AppError {
	return New("AUTH_001", "Authentication failed. Please try again.", http.StatusUnauthorized)
}

func ErrForbidden(action string) *AppError {
	return New("AUTH_002", fmt.Sprintf("Not permitted to %s", action), http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Ledger (LEDGER) ----

func ErrNotFound(entity string) *AppError {
	return New("LEDGER_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Payment Business Logic (PAY) ----

func ErrInvalidAmount() *AppError {
	return New("PAY_001", "Amount must be a positive decimal", http.StatusBadRequest)
}

// ErrAlreadyFinalized guards the state machine: success, failed and rejected
// are terminal, so acting on a non-pending request is reported, never applied.
func ErrAlreadyFinalized(status string) *AppError {
	return New("PAY_002", fmt.Sprintf("Transaction already finalized (status %s)", status), http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a PAY_001-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("PAY_001", message, http.StatusBadRequest)
}
