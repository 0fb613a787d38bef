package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors checked with errors.Is across layers.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrStorageOriginMissing = errors.New("storage origin is not configured")
	ErrOriginFetchFailed    = errors.New("origin image fetch failed")
	ErrBucketNotFound       = errors.New("bucket not found")
	ErrObjectExists         = errors.New("object already exists")
	ErrOriginBlocked        = errors.New("origin URL blocked")
)

// IsValidationError checks if an error represents invalid input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConfigurationError checks if the storage origin was missing
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrStorageOriginMissing)
}

// IsBucketNotFound checks if the object store reported a missing bucket
func IsBucketNotFound(err error) bool {
	return errors.Is(err, ErrBucketNotFound)
}

// IsObjectExists checks if a non-upsert upload hit an existing object
func IsObjectExists(err error) bool {
	return errors.Is(err, ErrObjectExists)
}

// NewStorageOriginMissingError wraps ErrStorageOriginMissing with context
func NewStorageOriginMissingError(layer, component, operation string) *AppContextError {
	return NewAppContextError(
		CodeConfiguration,
		"storage origin is not configured",
		layer,
		component,
		operation,
		fmt.Errorf("%w", ErrStorageOriginMissing),
		map[string]interface{}{"error_type": "configuration"},
	)
}

// NewOriginFetchError wraps ErrOriginFetchFailed so that both the sentinel
// and the original cause remain reachable through errors.Is.
func NewOriginFetchError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	var wrapped error
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", ErrOriginFetchFailed, cause)
	} else {
		wrapped = fmt.Errorf("%w", ErrOriginFetchFailed)
	}
	return NewExternalAPIContextError(message, layer, component, operation, wrapped, context)
}
