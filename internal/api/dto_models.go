package api

import (
	"github.com/elynrose/gpt-cells-app-sub001/internal/console"
)

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// AuthResponse is the envelope for the auth endpoints; the web client keys
// off the success flag instead of the HTTP status.
type AuthResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ProviderConfigView is one provider's settings as shown to clients.
type ProviderConfigView struct {
	APIKey  string `json:"apiKey"`
	Enabled bool   `json:"enabled"`
}

// GenerationConfigResponse exposes the provider settings the browser needs
// to call providers directly. Key exposure to authenticated clients is the
// deployment model here, matching the client-side generation flow.
type GenerationConfigResponse struct {
	OpenRouter ProviderConfigView `json:"openrouter"`
	Fal        ProviderConfigView `json:"fal"`
}

// OverviewResponse aggregates the console snapshot with per-dataset counts.
type OverviewResponse struct {
	Counts   map[string]int    `json:"counts"`
	Snapshot *console.Snapshot `json:"snapshot"`
}
