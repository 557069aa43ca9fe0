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

// ---- Ledger (LED) ----

func ErrInsufficientFunds() *AppError {
	return New("LED_001", "Insufficient balance", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("LED_002", "Invalid amount", http.StatusBadRequest)
}

func ErrUnknownIdentity() *AppError {
	return New("LED_003", "Unknown identity", http.StatusNotFound)
}

// ---- Price Catalog (CAT) ----

func ErrItemNotBuyable() *AppError {
	return New("CAT_001", "Item cannot be bought from the catalog", http.StatusUnprocessableEntity)
}

func ErrItemNotSellable() *AppError {
	return New("CAT_002", "Item cannot be sold to the catalog", http.StatusUnprocessableEntity)
}

func ErrUnknownItemKind(kind string) *AppError {
	return New("CAT_003", fmt.Sprintf("Unknown item kind: %s", kind), http.StatusNotFound)
}

// ---- Market (MKT) ----

func ErrRequestNotFound() *AppError {
	return New("MKT_001", "Trade request not found", http.StatusNotFound)
}

func ErrRequesterFunds() *AppError {
	return New("MKT_002", "Requester can no longer cover the price", http.StatusConflict)
}

func ErrFulfillerItems() *AppError {
	return New("MKT_003", "Fulfiller does not hold the required items", http.StatusConflict)
}

func ErrNotRequester() *AppError {
	return New("MKT_004", "Only the requester may withdraw a request", http.StatusForbidden)
}

func ErrPriceTooLarge() *AppError {
	return New("MKT_005", "Price too large", http.StatusUnprocessableEntity)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

func ErrStorageError(err error) *AppError {
	return Wrap("SYS_001", "Internal storage error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a LED_002-style validation error.
func Validation(message string) *AppError {
	return New("LED_002", message, http.StatusBadRequest)
}
