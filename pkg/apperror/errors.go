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

// ---- Signature & Verification (SIG) ----

func ErrInvalidSignatureFormat() *AppError {
	return New("SIG_001", "Invalid signature format", http.StatusBadRequest)
}

func ErrAcknowledgmentNotFound() *AppError {
	return New("SIG_002", "Acknowledgment not found", http.StatusNotFound)
}

func ErrSignerNotFound() *AppError {
	return New("SIG_003", "User not found", http.StatusNotFound)
}

// ---- Signature Records (REC) ----

func ErrRecordNotFound() *AppError {
	return New("REC_001", "Signature record not found", http.StatusNotFound)
}

func ErrRecordAlreadyInvalidated() *AppError {
	return New("REC_002", "Signature record is already invalidated", http.StatusConflict)
}

func ErrRecordAlreadyArchived() *AppError {
	return New("REC_003", "Signature record is already archived", http.StatusConflict)
}

func ErrDuplicateSignatureHash() *AppError {
	return New("REC_004", "Signature hash already exists", http.StatusConflict)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
