// Package errors provides custom error types for the Monevo core.
// All store- and service-layer errors use AppError so that callers can
// branch on the error kind (validation, conflict, not found, storage)
// without inspecting message text.
package errors

import "net/http"

// Kind classifies an AppError for call sites that branch on category.
type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindStorage    Kind = "storage"
)

// AppError represents a structured application error with an error kind,
// error code, human-readable message, HTTP status code, and optional
// internal error.
type AppError struct {
	Kind       Kind   `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same kind/code/message/status but
// wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Kind:       sentinel.Kind,
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Kind:       sentinel.Kind,
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Validation errors: bad user input, always recovered into a (false, message)
// result by the service layer.
var (
	ErrEmptyCategory       = &AppError{Kind: KindValidation, Code: "EMPTY_CATEGORY", Message: "La categoría no puede estar vacía", StatusCode: http.StatusBadRequest}
	ErrInvalidAmount       = &AppError{Kind: KindValidation, Code: "INVALID_AMOUNT", Message: "El monto debe ser mayor a 0", StatusCode: http.StatusBadRequest}
	ErrInvalidPeriodicity  = &AppError{Kind: KindValidation, Code: "INVALID_PERIODICITY", Message: "Periodicidad debe ser: daily, weekly, monthly, yearly", StatusCode: http.StatusBadRequest}
	ErrInvalidMovementKind = &AppError{Kind: KindValidation, Code: "INVALID_MOVEMENT_KIND", Message: "Tipo de movimiento inválido. Debe ser 'expense' o 'income'", StatusCode: http.StatusBadRequest}
	ErrInvalidInput        = &AppError{Kind: KindValidation, Code: "INVALID_INPUT", Message: "Entrada inválida", StatusCode: http.StatusBadRequest}
)

// Conflict and not-found errors: recovered locally, distinct message per case.
var (
	ErrBudgetExists   = &AppError{Kind: KindConflict, Code: "BUDGET_ALREADY_EXISTS", Message: "Ya existe un presupuesto para esa categoría", StatusCode: http.StatusConflict}
	ErrBudgetNotFound = &AppError{Kind: KindNotFound, Code: "BUDGET_NOT_FOUND", Message: "No existe presupuesto para esa categoría", StatusCode: http.StatusNotFound}
	ErrNoMovements    = &AppError{Kind: KindNotFound, Code: "NO_MOVEMENTS", Message: "No hay movimientos registrados", StatusCode: http.StatusNotFound}
)

// Storage and transport errors: not recoverable by the core; propagated to
// the caller, which logs and shows a generic apology.
var (
	ErrStorage     = &AppError{Kind: KindStorage, Code: "STORAGE_ERROR", Message: "Error de base de datos. Inténtalo más tarde", StatusCode: http.StatusInternalServerError}
	ErrMissingUser = &AppError{Kind: KindValidation, Code: "MISSING_USER", Message: "Falta el identificador de usuario", StatusCode: http.StatusUnauthorized}
)
