package errors

import (
	"net/http"

	"destinos/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches on the business error code, so values derived through WithDetails
// still satisfy errors.Is against the predefined error they came from.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Not found
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"No se encontraron las preferencias del usuario",
		"",
	)

	ErrRewardNotFound = NewBaseError(
		http.StatusNotFound,
		"REWARD_NOT_FOUND",
		"No se encontró la recompensa",
		"",
	)

	ErrRedemptionNotFound = NewBaseError(
		http.StatusNotFound,
		"REDEMPTION_NOT_FOUND",
		"No se encontró el canje",
		"",
	)

	ErrSubmissionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBMISSION_NOT_FOUND",
		"No se encontró el destino enviado",
		"",
	)

	// Invalid state
	ErrRewardInactive = NewBaseError(
		http.StatusBadRequest,
		"REWARD_INACTIVE",
		"La recompensa no está disponible",
		"",
	)

	ErrSubmissionAlreadyReviewed = NewBaseError(
		http.StatusBadRequest,
		"SUBMISSION_ALREADY_REVIEWED",
		"El destino ya fue revisado",
		"",
	)

	// Inventory and balance
	ErrRewardExhausted = NewBaseError(
		http.StatusBadRequest,
		"REWARD_EXHAUSTED",
		"La recompensa alcanzó el máximo de canjes",
		"",
	)

	ErrInsufficientBalance = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_BALANCE",
		"Puntos insuficientes para canjear la recompensa",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos enviados no son válidos",
		"",
	)

	// Upstream availability
	ErrCatalogUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"CATALOG_UNAVAILABLE",
		"El catálogo de destinos no está disponible",
		"",
	)

	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"El almacenamiento no está disponible",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Falló la transacción en la base de datos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Se requiere autenticación",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acceso denegado",
		"",
	)
)

// StoreError carries a store failure classified under one of the predefined store errors,
// keeping the driver cause for logs and errors.Is.
type StoreError struct {
	*BaseError
	err error
}

// NewStoreError classifies err under base, e.g. ErrStoreUnavailable or ErrTransactionFailed
func NewStoreError(base *BaseError, err error, details string) AppError {
	return &StoreError{
		BaseError: base.WithDetails(details),
		err:       err,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return errors.Wrap(e.err, e.message).Error()
}

// Unwrap exposes the driver error
func (e *StoreError) Unwrap() error {
	return e.err
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Falló la ejecución en la base de datos"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
