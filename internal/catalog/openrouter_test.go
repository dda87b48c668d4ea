package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

func TestOpenRouterAdapter_MergesLiveListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/models", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"id":"anthropic/claude-3.5-sonnet","name":"Anthropic: Claude 3.5 Sonnet","architecture":{"modality":"text->text"}},
			{"id":"new-vendor/new-model","name":"New Model","description":"fresh","architecture":{"modality":"text->text"}}
		]}`))
	}))
	defer srv.Close()

	adapter := NewOpenRouterAdapter(srv.URL, zap.NewNop())
	candidates, err := adapter.Models(context.Background())
	require.NoError(t, err)

	byID := make(map[string]Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.OriginalID] = c
	}

	// Live entry overlays the curated one but keeps its curated description.
	sonnet, ok := byID["anthropic/claude-3.5-sonnet"]
	require.True(t, ok)
	assert.Equal(t, "Anthropic: Claude 3.5 Sonnet", sonnet.Name)
	assert.NotEmpty(t, sonnet.Description)

	// Unknown live entries are appended.
	fresh, ok := byID["new-vendor/new-model"]
	require.True(t, ok)
	assert.Equal(t, "fresh", fresh.Description)

	// Curated entries absent from the listing survive.
	_, ok = byID["openai/gpt-4o"]
	assert.True(t, ok)
}

func TestOpenRouterAdapter_FallsBackToStaticCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	adapter := NewOpenRouterAdapter(srv.URL, zap.NewNop())
	candidates, err := adapter.Models(context.Background())
	require.NoError(t, err, "listing failure must degrade, not fail the sync")
	assert.Equal(t, StaticOpenRouterCandidates(), candidates)
}

func TestModalityType(t *testing.T) {
	tests := []struct {
		modality string
		expected models.ModelType
	}{
		{"text->text", models.ModelTypeText},
		{"text+image->text", models.ModelTypeText},
		{"text->image", models.ModelTypeImage},
		{"", models.ModelTypeText},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, modalityType(tt.modality), "modality %q", tt.modality)
	}
}

func TestFalAdapter_ServesBuiltInCatalog(t *testing.T) {
	adapter := NewFalAdapter()
	candidates, err := adapter.Models(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, candidates)

	for _, c := range candidates {
		assert.Equal(t, models.ProviderFalAI, c.Provider)
		assert.Equal(t, models.ModelTypeImage, c.Type)
	}
}
