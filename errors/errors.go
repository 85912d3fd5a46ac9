package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType string

// Domain/Business Logic Errors - errors related to business rules and validation
const (
	ValidationError ErrorType = "VALIDATION_ERROR"
	NotFoundError   ErrorType = "NOT_FOUND_ERROR"
)

// Infrastructure Errors - errors related to external systems and services
const (
	ProviderHTTPError    ErrorType = "PROVIDER_HTTP_ERROR"
	ProviderTimeoutError ErrorType = "PROVIDER_TIMEOUT_ERROR"
	ProviderParseError   ErrorType = "PROVIDER_PARSE_ERROR"
	DirectoryLookupError ErrorType = "DIRECTORY_LOOKUP_ERROR"
	CacheStoreError      ErrorType = "CACHE_STORE_ERROR"
)

// System/Configuration Errors - errors related to system setup and configuration
const (
	ConfigurationError ErrorType = "CONFIGURATION_ERROR"
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// IsType reports whether err is an AppError of the given type anywhere in its chain.
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// Domain/Business Logic Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

// Infrastructure Error Constructors
func NewProviderHTTPError(status int, statusText string) *AppError {
	return New(ProviderHTTPError, fmt.Sprintf("provider returned %d %s", status, statusText))
}

func NewProviderTimeoutError(message string, cause error) *AppError {
	return Wrap(ProviderTimeoutError, message, cause)
}

func NewProviderParseError(message string, cause error) *AppError {
	return Wrap(ProviderParseError, message, cause)
}

func NewDirectoryLookupError(message string, cause error) *AppError {
	return Wrap(DirectoryLookupError, message, cause)
}

func NewCacheStoreError(message string, cause error) *AppError {
	return Wrap(CacheStoreError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}
