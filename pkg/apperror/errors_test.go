package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("DOM_001", "Insufficient balance in wallet", http.StatusPaymentRequired),
			expected: "[DOM_001] Insufficient balance in wallet",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("DOM_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestValidationErrors(t *testing.T) {
	fieldErr := ErrInvalidField("currency", "must be a 3-letter uppercase code")
	assert.Equal(t, "VAL_001", fieldErr.Code)
	assert.Equal(t, 400, fieldErr.HTTPStatus)
	assert.Contains(t, fieldErr.Message, "currency")

	dupErr := ErrDuplicateField("email")
	assert.Equal(t, "VAL_002", dupErr.Code)
	assert.Equal(t, 409, dupErr.HTTPStatus)
}

func TestDomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InsufficientFunds", ErrInsufficientFunds(), "DOM_001", 402},
		{"InvalidPIN", ErrInvalidPIN("too short"), "DOM_002", 400},
		{"WalletNotActive", ErrWalletNotActive(), "DOM_003", 409},
		{"NotFound", ErrNotFound("Wallet"), "DOM_004", 404},
		{"TransientConflict", ErrTransientConflict(), "DOM_005", 409},
		{"DuplicateTransaction", ErrDuplicateTransaction(), "DOM_006", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSecurityErrors_ShareOneGenericMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"OperationNotPermitted", ErrOperationNotPermitted(), "SEC_001", 403},
		{"RateLimited", ErrRateLimited(), "SEC_002", 429},
		{"SuspiciousActivity", ErrSuspiciousActivity(), "SEC_003", 403},
		{"SignatureMismatch", ErrSignatureMismatch(), "SEC_004", 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
			assert.Equal(t, "Operation not permitted", tt.err.Message,
				"security rejections must not reveal which control fired")
		})
	}
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	dbErr := ErrDatabase(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))

	cryptoErr := ErrCrypto(inner)
	assert.Equal(t, "SYS_002", cryptoErr.Code)
	assert.Equal(t, 500, cryptoErr.HTTPStatus)

	storeErr := ErrStore(inner)
	assert.Equal(t, "SYS_003", storeErr.Code)
	assert.Equal(t, 500, storeErr.HTTPStatus)
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("Wallet")
	assert.Contains(t, err.Message, "Wallet")
	assert.Equal(t, "DOM_004", err.Code)
}
