package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "test validation error")
			},
			expected: "VALIDATION_ERROR: test validation error",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("original error")
				return Wrap(CacheStoreError, "cache write failed", cause)
			},
			expected: "CACHE_STORE_ERROR: cache write failed (caused by: original error)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("original error")
	err := Wrap(ProviderParseError, "decode failed", cause)
	assert.Equal(t, cause, err.Unwrap())

	withoutCause := New(NotFoundError, "resource not found")
	assert.Nil(t, withoutCause.Unwrap())
}

func TestSpecificErrorConstructors(t *testing.T) {
	tests := []struct {
		name         string
		constructor  func() *AppError
		expectedType ErrorType
		hasCause     bool
	}{
		{
			name: "NewValidationError",
			constructor: func() *AppError {
				return NewValidationError("field is required")
			},
			expectedType: ValidationError,
		},
		{
			name: "NewProviderHTTPError",
			constructor: func() *AppError {
				return NewProviderHTTPError(502, "Bad Gateway")
			},
			expectedType: ProviderHTTPError,
		},
		{
			name: "NewProviderTimeoutError",
			constructor: func() *AppError {
				return NewProviderTimeoutError("request exceeded timeout", fmt.Errorf("context deadline exceeded"))
			},
			expectedType: ProviderTimeoutError,
			hasCause:     true,
		},
		{
			name: "NewProviderParseError",
			constructor: func() *AppError {
				return NewProviderParseError("decode response", fmt.Errorf("unexpected EOF"))
			},
			expectedType: ProviderParseError,
			hasCause:     true,
		},
		{
			name: "NewDirectoryLookupError",
			constructor: func() *AppError {
				return NewDirectoryLookupError("find city", fmt.Errorf("connection lost"))
			},
			expectedType: DirectoryLookupError,
			hasCause:     true,
		},
		{
			name: "NewCacheStoreError",
			constructor: func() *AppError {
				return NewCacheStoreError("write record", fmt.Errorf("connection lost"))
			},
			expectedType: CacheStoreError,
			hasCause:     true,
		},
		{
			name: "NewConfigurationError",
			constructor: func() *AppError {
				return NewConfigurationError("config loading failed", fmt.Errorf("missing env var"))
			},
			expectedType: ConfigurationError,
			hasCause:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.constructor()

			assert.Equal(t, tt.expectedType, err.Type)
			assert.NotEmpty(t, err.Message)

			if tt.hasCause {
				assert.NotNil(t, err.Cause)
			} else {
				assert.Nil(t, err.Cause)
			}
		})
	}
}

func TestNewProviderHTTPError_Message(t *testing.T) {
	err := NewProviderHTTPError(404, "Not Found")
	assert.Equal(t, "provider returned 404 Not Found", err.Message)
}

func TestIsType(t *testing.T) {
	timeoutErr := NewProviderTimeoutError("timed out", nil)
	wrapped := fmt.Errorf("refresh failed: %w", timeoutErr)

	assert.True(t, IsType(timeoutErr, ProviderTimeoutError))
	assert.True(t, IsType(wrapped, ProviderTimeoutError))
	assert.False(t, IsType(timeoutErr, ProviderHTTPError))
	assert.False(t, IsType(fmt.Errorf("plain error"), ProviderTimeoutError))
}

func TestErrorChaining(t *testing.T) {
	originalErr := fmt.Errorf("connection refused")
	storeErr := NewCacheStoreError("query failed", originalErr)
	refreshErr := Wrap(ProviderHTTPError, "refresh unavailable", storeErr)

	expected := "PROVIDER_HTTP_ERROR: refresh unavailable (caused by: CACHE_STORE_ERROR: query failed (caused by: connection refused))"
	assert.Equal(t, expected, refreshErr.Error())

	assert.Equal(t, storeErr, refreshErr.Unwrap())
	assert.Equal(t, originalErr, storeErr.Unwrap())
}
