package generate

import (
	"errors"
	"fmt"
)

// Sentinel errors callers can test with errors.Is.
var (
	// ErrNotConfigured means the requested provider has no usable API key,
	// either because none was stored, the provider is disabled, or the
	// configuration store could not be read.
	ErrNotConfigured = errors.New("provider is not configured")
	// ErrModelNotFound means the requested model id is not in the catalog.
	ErrModelNotFound = errors.New("model not found")
	// ErrUnsupportedModelType means the catalog entry has a type no
	// dispatcher handles.
	ErrUnsupportedModelType = errors.New("unsupported model type")
)

// ProviderError reports a non-success response from an upstream provider.
// Message carries the upstream error text when the provider supplied one,
// else the HTTP status text.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Message)
}
