package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elynrose/gpt-cells-app-sub001/internal/db"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// Custom errors for the ProviderConfigService
var (
	ErrUnknownProvider = errors.New("unknown provider")
)

var knownProviders = map[string]bool{
	models.ProviderOpenRouter: true,
	models.ProviderFalAI:      true,
}

// providerConfigService implements the ProviderConfigService interface.
type providerConfigService struct {
	configRepo db.ProviderConfigRepository
}

// NewProviderConfigService creates a new ProviderConfigService instance.
func NewProviderConfigService(configRepo db.ProviderConfigRepository) ProviderConfigService {
	return &providerConfigService{configRepo: configRepo}
}

// Get returns the provider's configuration, or an empty disabled one when
// none has been stored yet.
func (s *providerConfigService) Get(ctx context.Context, provider string) (*models.ProviderConfig, error) {
	if !knownProviders[provider] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}

	cfg, err := s.configRepo.Get(ctx, provider)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return &models.ProviderConfig{}, nil
		}
		return nil, fmt.Errorf("failed to load provider config: %w", err)
	}
	return cfg, nil
}

func (s *providerConfigService) Update(ctx context.Context, provider string, req models.UpdateProviderConfigRequest) (*models.ProviderConfig, error) {
	cfg, err := s.Get(ctx, provider)
	if err != nil {
		return nil, err
	}

	if req.APIKey != nil {
		cfg.APIKey = *req.APIKey
	}
	if req.Enabled != nil {
		cfg.Enabled = *req.Enabled
	}

	cfg.UpdatedAt = time.Time{}
	if err := s.configRepo.Set(ctx, provider, cfg); err != nil {
		return nil, fmt.Errorf("failed to store provider config: %w", err)
	}
	return cfg, nil
}
