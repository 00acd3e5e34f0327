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

// ---- Validation (VAL) ----

func ErrInvalidRequest(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidHash() *AppError {
	return New("VAL_001", "Invalid transaction hash", http.StatusBadRequest)
}

func ErrInvalidPayMethod() *AppError {
	return New("VAL_001", "Invalid payment method", http.StatusBadRequest)
}

// ---- Payment & Settlement (PAY) ----

func ErrInsufficientFunds() *AppError {
	return New("PAY_001", "Insufficient balance in wallet", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("PAY_002", "Invalid amount", http.StatusBadRequest)
}

func ErrAlreadyProcessed() *AppError {
	return New("PAY_003", "Transaction already processed", http.StatusConflict)
}

// ErrTransactionNotFoundOrProcessed is returned when a callback refers to an
// authority with no pending row left.
func ErrTransactionNotFoundOrProcessed() *AppError {
	return New("PAY_003", "Transaction not found or already processed", http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("PAY_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrWalletExists() *AppError {
	return New("PAY_005", "Wallet already exists", http.StatusConflict)
}

func ErrAddressMismatch() *AppError {
	return New("PAY_008", "Destination address does not match wallet", http.StatusUnprocessableEntity)
}

func ErrPaymentMismatch() *AppError {
	return New("PAY_008", "Transfer does not match cart payment", http.StatusUnprocessableEntity)
}

func ErrInvalidChainTransaction() *AppError {
	return New("PAY_009", "Invalid or unsuccessful chain transaction", http.StatusUnprocessableEntity)
}

func ErrSettlementInProgress() *AppError {
	return New("PAY_010", "Settlement already in progress", http.StatusConflict)
}

func ErrCartNotPending() *AppError {
	return New("PAY_011", "Cart is no longer pending", http.StatusConflict)
}

// ---- Gateway & Network (GW, NET) ----

// ErrGateway passes the provider's message through to the caller.
func ErrGateway(message string, err error) *AppError {
	return Wrap("GW_001", message, http.StatusBadGateway, err)
}

func ErrGatewayRejected() *AppError {
	return New("GW_002", "Payment was cancelled or rejected", http.StatusBadRequest)
}

func ErrNetwork(err error) *AppError {
	return Wrap("NET_001", "Upstream service unavailable, please retry", http.StatusServiceUnavailable, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a PAY_002-style validation error.
func Validation(message string) *AppError {
	return New("PAY_002", message, http.StatusBadRequest)
}
