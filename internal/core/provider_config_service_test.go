package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

func TestProviderConfigService_Get_UnknownProvider(t *testing.T) {
	svc := NewProviderConfigService(newFakeProviderConfigRepo())

	_, err := svc.Get(context.Background(), "midjourney")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestProviderConfigService_Get_UnconfiguredProviderReturnsEmptyConfig(t *testing.T) {
	svc := NewProviderConfigService(newFakeProviderConfigRepo())

	cfg, err := svc.Get(context.Background(), models.ProviderOpenRouter)
	require.NoError(t, err)
	assert.Empty(t, cfg.APIKey)
	assert.False(t, cfg.Enabled)
	assert.False(t, cfg.Configured())
}

func TestProviderConfigService_Update_StoresKeyAndSwitch(t *testing.T) {
	repo := newFakeProviderConfigRepo()
	svc := NewProviderConfigService(repo)

	key := "sk-or-v1-test"
	enabled := true
	cfg, err := svc.Update(context.Background(), models.ProviderOpenRouter, models.UpdateProviderConfigRequest{
		APIKey:  &key,
		Enabled: &enabled,
	})
	require.NoError(t, err)
	assert.True(t, cfg.Configured())

	stored, err := svc.Get(context.Background(), models.ProviderOpenRouter)
	require.NoError(t, err)
	assert.Equal(t, "sk-or-v1-test", stored.APIKey)
	assert.True(t, stored.Enabled)
}

func TestProviderConfigService_Update_DisableKeepsKey(t *testing.T) {
	repo := newFakeProviderConfigRepo()
	repo.configs[models.ProviderFalAI] = &models.ProviderConfig{APIKey: "fal-key", Enabled: true}
	svc := NewProviderConfigService(repo)

	enabled := false
	cfg, err := svc.Update(context.Background(), models.ProviderFalAI, models.UpdateProviderConfigRequest{Enabled: &enabled})
	require.NoError(t, err)
	assert.Equal(t, "fal-key", cfg.APIKey, "disabling must not discard the stored key")
	assert.False(t, cfg.Configured())
}

func TestProviderConfigService_Update_UnknownProvider(t *testing.T) {
	svc := NewProviderConfigService(newFakeProviderConfigRepo())

	enabled := true
	_, err := svc.Update(context.Background(), "stability", models.UpdateProviderConfigRequest{Enabled: &enabled})
	assert.ErrorIs(t, err, ErrUnknownProvider)
}
