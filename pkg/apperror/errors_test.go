package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	e := New("SIG_001", "Invalid signature format", http.StatusBadRequest)
	assert.Equal(t, "[SIG_001] Invalid signature format", e.Error())
}

func TestAppError_ErrorWithWrapped(t *testing.T) {
	inner := errors.New("connection refused")
	e := Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, inner)

	assert.Contains(t, e.Error(), "SYS_001")
	assert.Contains(t, e.Error(), "connection refused")
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	e := InternalError(fmt.Errorf("query failed: %w", inner))

	assert.True(t, errors.Is(e, inner))
}

func TestAppError_AsTarget(t *testing.T) {
	var target *AppError
	err := error(ErrRecordNotFound())

	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "REC_001", target.Code)
	assert.Equal(t, http.StatusNotFound, target.HTTPStatus)
}

func TestErrorConstructors_StatusMapping(t *testing.T) {
	tests := []struct {
		err    *AppError
		code   string
		status int
	}{
		{ErrInvalidSignatureFormat(), "SIG_001", http.StatusBadRequest},
		{ErrAcknowledgmentNotFound(), "SIG_002", http.StatusNotFound},
		{ErrSignerNotFound(), "SIG_003", http.StatusNotFound},
		{ErrRecordNotFound(), "REC_001", http.StatusNotFound},
		{ErrRecordAlreadyInvalidated(), "REC_002", http.StatusConflict},
		{ErrRecordAlreadyArchived(), "REC_003", http.StatusConflict},
		{ErrDuplicateSignatureHash(), "REC_004", http.StatusConflict},
		{ErrInvalidToken(), "AUTH_001", http.StatusUnauthorized},
		{ErrRateLimitExceeded(), "RATE_001", http.StatusTooManyRequests},
		{Validation("bad input"), "VAL_001", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}
