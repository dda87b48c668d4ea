package generate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/elynrose/gpt-cells-app-sub001/internal/db"
	"github.com/elynrose/gpt-cells-app-sub001/pkg/cache"
)

const keyCachePrefix = "provider-config:"

// keyResolver loads provider API keys through a read-through cache so
// repeated generations do not hit the configuration store each time. Only
// usable keys are cached; disabled or missing configurations are re-checked
// on every call so an admin enabling a provider takes effect immediately.
type keyResolver struct {
	configs db.ProviderConfigRepository
	cache   cache.Cache
	ttl     time.Duration
	logger  *zap.Logger
}

func (r *keyResolver) apiKey(ctx context.Context, provider string) (string, error) {
	cacheKey := keyCachePrefix + provider
	if cached, err := r.cache.Get(cacheKey); err == nil && cached != "" {
		return cached, nil
	}

	cfg, err := r.configs.Get(ctx, provider)
	if err != nil {
		// A store failure degrades to "not configured" rather than
		// surfacing an internal error to the generation caller.
		if !errors.Is(err, db.ErrNotFound) {
			r.logger.Warn("provider configuration store unavailable",
				zap.String("provider", provider), zap.Error(err))
		}
		return "", fmt.Errorf("%s: %w", provider, ErrNotConfigured)
	}
	if !cfg.Configured() {
		return "", fmt.Errorf("%s: %w", provider, ErrNotConfigured)
	}

	if err := r.cache.Set(cacheKey, cfg.APIKey, r.ttl); err != nil {
		r.logger.Warn("failed to cache provider key",
			zap.String("provider", provider), zap.Error(err))
	}
	return cfg.APIKey, nil
}

// invalidate drops a provider's cached key. Called when an admin updates the
// provider configuration.
func (r *keyResolver) invalidate(provider string) {
	if err := r.cache.Delete(keyCachePrefix + provider); err != nil {
		r.logger.Warn("failed to invalidate provider key cache",
			zap.String("provider", provider), zap.Error(err))
	}
}
