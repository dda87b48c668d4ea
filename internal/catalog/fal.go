package catalog

import (
	"context"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// FalAdapter lists the Fal.ai image models. Fal has no public catalog
// endpoint comparable to OpenRouter's, so the adapter serves the curated
// built-in list.
type FalAdapter struct{}

// NewFalAdapter creates a FalAdapter.
func NewFalAdapter() *FalAdapter {
	return &FalAdapter{}
}

// Name returns the provider tag.
func (a *FalAdapter) Name() string {
	return models.ProviderFalAI
}

// Models returns the built-in Fal.ai catalog.
func (a *FalAdapter) Models(_ context.Context) ([]Candidate, error) {
	return StaticFalCandidates(), nil
}
