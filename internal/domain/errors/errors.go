// Package errors defines the application-level error taxonomy: typed
// failures with HTTP codes and user-facing messages. Unauthorized and
// NotFound deliberately share the same user-facing wording so callers
// cannot probe for the existence of records they may not touch.
package errors

import (
	"net/http"

	"zenmap/internal/errors"
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
	// Identity-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"ログインしていません",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"メールアドレスまたはパスワードが正しくありません",
		"",
	)

	ErrIdentityTaken = NewBaseError(
		http.StatusConflict,
		"IDENTITY_TAKEN",
		"このユーザー名またはメールアドレスは既に使用されています",
		"",
	)

	// Access errors. Unauthorized and NotFound carry the same wording on
	// purpose: "not yours to touch" must be indistinguishable from "does
	// not exist".
	ErrUnauthorized = NewBaseError(
		http.StatusForbidden,
		"UNAUTHORIZED",
		"対象が見つからないか、操作する権限がありません",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"対象が見つからないか、操作する権限がありません",
		"",
	)

	// Input errors
	ErrInvalidArgument = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ARGUMENT",
		"入力内容が正しくありません",
		"",
	)

	ErrSelfFriendRequest = NewBaseError(
		http.StatusBadRequest,
		"SELF_FRIEND_REQUEST",
		"自分自身にフレンド申請は送れません",
		"",
	)

	ErrDuplicateFriendRequest = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_FRIEND_REQUEST",
		"既にフレンド申請が存在します",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"入力データの検証に失敗しました",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"データベーストランザクションに失敗しました",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"システム内部エラーが発生しました",
		"",
	)
)

// StorageError represents a row-store failure, implementing the AppError
// interface. The underlying error is propagated verbatim, never interpreted.
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a storage-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "storage failure").Error()
}

// Unwrap exposes the underlying storage error for errors.Is/As.
func (e *StorageError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return "STORAGE_FAILURE"
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return "データの保存に失敗しました"
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}
