package generate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/elynrose/gpt-cells-app-sub001/internal/catalog"
	"github.com/elynrose/gpt-cells-app-sub001/internal/db"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
	"github.com/elynrose/gpt-cells-app-sub001/pkg/cache"
)

// DefaultTemperature is applied when a request does not set one.
const DefaultTemperature = 0.7

// Request is one generation invocation.
type Request struct {
	Prompt      string
	ModelID     string
	Temperature *float64
}

// DispatcherConfig wires a Dispatcher's dependencies.
type DispatcherConfig struct {
	Models          db.ModelRepository
	ProviderConfigs db.ProviderConfigRepository
	Cache           cache.Cache
	CacheTTL        time.Duration

	OpenRouterBaseURL string
	FalBaseURL        string
	SiteURL           string
	SiteName          string
	Timeout           time.Duration

	Logger *zap.Logger
}

// Dispatcher routes generation requests to the provider matching the model's
// type and normalizes the provider response into a Result. It performs
// outbound network calls only; nothing is persisted.
type Dispatcher struct {
	models db.ModelRepository
	keys   *keyResolver
	text   *OpenRouterClient
	image  *FalClient
	logger *zap.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	return &Dispatcher{
		models: cfg.Models,
		keys: &keyResolver{
			configs: cfg.ProviderConfigs,
			cache:   cfg.Cache,
			ttl:     cfg.CacheTTL,
			logger:  cfg.Logger,
		},
		text:   NewOpenRouterClient(cfg.OpenRouterBaseURL, cfg.SiteURL, cfg.SiteName, cfg.Timeout),
		image:  NewFalClient(cfg.FalBaseURL, cfg.Timeout),
		logger: cfg.Logger,
	}
}

// Generate resolves the model, loads the matching provider key and calls the
// provider. Unknown models fail with ErrModelNotFound and a missing key with
// ErrNotConfigured, both before any provider call. Provider failures surface
// as *ProviderError with no retry.
func (d *Dispatcher) Generate(ctx context.Context, req Request) (*Result, error) {
	if req.Prompt == "" {
		return nil, errors.New("prompt cannot be empty")
	}

	model, err := d.lookupModel(ctx, req.ModelID)
	if err != nil {
		return nil, err
	}

	temperature := DefaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	switch model.Type {
	case models.ModelTypeText:
		key, err := d.keys.apiKey(ctx, models.ProviderOpenRouter)
		if err != nil {
			return nil, err
		}
		text, err := d.text.Complete(ctx, key, model.OriginalID, req.Prompt, temperature)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: ResultKindText, Text: text, Model: model.ID, Provider: model.Provider}, nil

	case models.ModelTypeImage:
		key, err := d.keys.apiKey(ctx, models.ProviderFalAI)
		if err != nil {
			return nil, err
		}
		imageURL, err := d.image.Generate(ctx, key, model.OriginalID, req.Prompt)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: ResultKindImage, ImageURL: imageURL, Model: model.ID, Provider: model.Provider}, nil

	default:
		return nil, fmt.Errorf("model %q has type %q: %w", model.ID, model.Type, ErrUnsupportedModelType)
	}
}

// InvalidateKey drops a provider's cached API key so configuration changes
// take effect before the cache TTL elapses.
func (d *Dispatcher) InvalidateKey(provider string) {
	d.keys.invalidate(provider)
}

// lookupModel resolves a sanitized model id against the catalog store,
// degrading to the built-in static list when the store is unreachable.
func (d *Dispatcher) lookupModel(ctx context.Context, id string) (*models.Model, error) {
	if id == "" {
		return nil, fmt.Errorf("empty model id: %w", ErrModelNotFound)
	}

	model, err := d.models.Get(ctx, id)
	switch {
	case err == nil:
		return model, nil
	case errors.Is(err, db.ErrNotFound):
		return nil, fmt.Errorf("model %q: %w", id, ErrModelNotFound)
	default:
		d.logger.Warn("catalog store unavailable, using built-in model list",
			zap.String("model", id), zap.Error(err))
		if m, ok := fallbackModel(id); ok {
			return m, nil
		}
		return nil, fmt.Errorf("model %q: %w", id, ErrModelNotFound)
	}
}

// fallbackModel searches the built-in provider catalogs by sanitized id.
func fallbackModel(id string) (*models.Model, bool) {
	candidates := append(catalog.StaticOpenRouterCandidates(), catalog.StaticFalCandidates()...)
	for _, c := range candidates {
		if catalog.SanitizeID(c.OriginalID) != id {
			continue
		}
		return &models.Model{
			ID:          id,
			OriginalID:  c.OriginalID,
			Name:        c.Name,
			Description: c.Description,
			Provider:    c.Provider,
			Type:        c.Type,
			Status:      models.ModelStatusActive,
			Source:      c.Provider,
		}, true
	}
	return nil, false
}
