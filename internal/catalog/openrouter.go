package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// OpenRouterAdapter lists models available through OpenRouter. It merges the
// provider's public listing over the curated built-in catalog and falls back
// to the built-in catalog alone when the listing is unreachable.
type OpenRouterAdapter struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewOpenRouterAdapter creates an OpenRouterAdapter against the given API
// base URL, e.g. "https://openrouter.ai/api/v1".
func NewOpenRouterAdapter(baseURL string, logger *zap.Logger) *OpenRouterAdapter {
	return &OpenRouterAdapter{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// Name returns the provider tag.
func (a *OpenRouterAdapter) Name() string {
	return models.ProviderOpenRouter
}

// Models returns the merged candidate list. A live-listing failure is logged
// and degrades to the built-in catalog rather than failing the sync.
func (a *OpenRouterAdapter) Models(ctx context.Context) ([]Candidate, error) {
	static := StaticOpenRouterCandidates()

	live, err := a.fetchListing(ctx)
	if err != nil {
		a.logger.Warn("OpenRouter listing unavailable, using built-in catalog",
			zap.Error(err))
		return static, nil
	}
	return mergeCandidates(static, live), nil
}

type openRouterListing struct {
	Data []struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Description  string `json:"description"`
		Architecture struct {
			Modality string `json:"modality"`
		} `json:"architecture"`
	} `json:"data"`
}

func (a *OpenRouterAdapter) fetchListing(ctx context.Context) ([]Candidate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/models", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build listing request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing request returned %s", resp.Status)
	}

	var listing openRouterListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("failed to decode listing: %w", err)
	}

	candidates := make([]Candidate, 0, len(listing.Data))
	for _, entry := range listing.Data {
		if entry.ID == "" {
			continue
		}
		candidates = append(candidates, Candidate{
			OriginalID:  entry.ID,
			Name:        entry.Name,
			Description: entry.Description,
			Provider:    models.ProviderOpenRouter,
			Type:        modalityType(entry.Architecture.Modality),
		})
	}
	return candidates, nil
}

// modalityType maps an OpenRouter modality string such as "text->text" or
// "text+image->text" onto a catalog model type by its output side.
func modalityType(modality string) models.ModelType {
	output := modality
	if idx := strings.LastIndex(modality, "->"); idx >= 0 {
		output = modality[idx+2:]
	}
	if strings.Contains(output, "image") {
		return models.ModelTypeImage
	}
	return models.ModelTypeText
}

// mergeCandidates overlays live entries on the static catalog by original id,
// keeping static entries the listing no longer mentions and appending entries
// the static catalog does not know about.
func mergeCandidates(static, live []Candidate) []Candidate {
	byID := make(map[string]int, len(static))
	merged := make([]Candidate, len(static))
	copy(merged, static)
	for i, c := range merged {
		byID[c.OriginalID] = i
	}

	for _, c := range live {
		if i, ok := byID[c.OriginalID]; ok {
			// Static descriptions are curated; keep them when the live
			// listing has none.
			if c.Description == "" {
				c.Description = merged[i].Description
			}
			if c.Name == "" {
				c.Name = merged[i].Name
			}
			merged[i] = c
			continue
		}
		byID[c.OriginalID] = len(merged)
		merged = append(merged, c)
	}
	return merged
}
