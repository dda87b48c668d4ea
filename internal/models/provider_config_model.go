package models

import "time"

// ProviderConfig holds one generation provider's API key and switch. Stored
// under the admin collection (admin/openrouter-config, admin/fal-ai-config);
// readable by authenticated clients so the browser can call providers
// directly.
type ProviderConfig struct {
	APIKey    string    `json:"apiKey" firestore:"apiKey"`
	Enabled   bool      `json:"enabled" firestore:"enabled"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// Configured reports whether the provider can be used for generation.
func (c *ProviderConfig) Configured() bool {
	return c != nil && c.Enabled && c.APIKey != ""
}
