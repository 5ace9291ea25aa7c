package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error with a stable machine-readable code.
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

// ---- Validation (VAL) ----

// ErrInvalidField reports a field-level constraint violation.
func ErrInvalidField(field, reason string) *AppError {
	return New("VAL_001", fmt.Sprintf("%s: %s", field, reason), http.StatusBadRequest)
}

// ErrDuplicateField reports a uniqueness violation.
func ErrDuplicateField(field string) *AppError {
	return New("VAL_002", fmt.Sprintf("%s already exists", field), http.StatusConflict)
}

// ---- Domain (DOM) ----

func ErrInsufficientFunds() *AppError {
	return New("DOM_001", "Insufficient balance in wallet", http.StatusPaymentRequired)
}

func ErrInvalidPIN(reason string) *AppError {
	return New("DOM_002", fmt.Sprintf("Invalid PIN: %s", reason), http.StatusBadRequest)
}

func ErrWalletNotActive() *AppError {
	return New("DOM_003", "Wallet is not active", http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("DOM_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ErrTransientConflict is surfaced after bounded optimistic-concurrency
// retries are exhausted. Callers may retry the whole operation.
func ErrTransientConflict() *AppError {
	return New("DOM_005", "Concurrent modification, please retry", http.StatusConflict)
}

func ErrDuplicateTransaction() *AppError {
	return New("DOM_006", "Duplicate transaction reference", http.StatusConflict)
}

// ---- Security (SEC) ----
// Security errors are intentionally generic toward the caller; the root
// cause is recorded in the audit trail only.

func ErrOperationNotPermitted() *AppError {
	return New("SEC_001", "Operation not permitted", http.StatusForbidden)
}

func ErrRateLimited() *AppError {
	return New("SEC_002", "Operation not permitted", http.StatusTooManyRequests)
}

func ErrSuspiciousActivity() *AppError {
	return New("SEC_003", "Operation not permitted", http.StatusForbidden)
}

func ErrSignatureMismatch() *AppError {
	return New("SEC_004", "Operation not permitted", http.StatusForbidden)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabase(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrCrypto(err error) *AppError {
	return Wrap("SYS_002", "Cryptographic operation failed", http.StatusInternalServerError, err)
}

func ErrStore(err error) *AppError {
	return Wrap("SYS_003", "Internal store error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
