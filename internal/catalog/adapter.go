package catalog

import (
	"context"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// Candidate is one model descriptor as reported by a provider, before it is
// reconciled against the catalog store.
type Candidate struct {
	OriginalID  string
	Name        string
	Description string
	Provider    string
	Type        models.ModelType
}

// ProviderAdapter produces a normalized list of available models from one
// external generation service.
type ProviderAdapter interface {
	// Name returns the provider tag the adapter's candidates carry.
	Name() string
	// Models returns the provider's current candidate list.
	Models(ctx context.Context) ([]Candidate, error)
}
