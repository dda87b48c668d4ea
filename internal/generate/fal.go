package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// Image generation parameters sent with every Fal request.
const (
	falInferenceSteps = 20
	falGuidanceScale  = 7.5
)

// FalClient calls Fal.ai's synchronous model endpoints. Each model is its
// own path under the base URL, so the request target is
// {base}/{originalModelID}.
type FalClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewFalClient creates a FalClient against the given base URL, e.g.
// "https://fal.run".
func NewFalClient(baseURL string, timeout time.Duration) *FalClient {
	return &FalClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type falRequest struct {
	Prompt            string  `json:"prompt"`
	NumInferenceSteps int     `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
}

type falImage struct {
	URL string `json:"url"`
}

// falResponse covers the two shapes Fal models return: a list under
// "images" or a single object under "image".
type falResponse struct {
	Images []falImage `json:"images"`
	Image  *falImage  `json:"image"`
}

// Generate runs one image generation and returns the first image URL, or a
// placeholder when the response carries none. Failures are never retried.
func (c *FalClient) Generate(ctx context.Context, apiKey, modelPath, prompt string) (string, error) {
	body, err := json.Marshal(falRequest{
		Prompt:            prompt,
		NumInferenceSteps: falInferenceSteps,
		GuidanceScale:     falGuidanceScale,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode fal request: %w", err)
	}

	url := c.baseURL + "/" + strings.TrimPrefix(modelPath, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build fal request: %w", err)
	}
	req.Header.Set("Authorization", "Key "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fal request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read fal response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &ProviderError{
			Provider:   models.ProviderFalAI,
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(payload, http.StatusText(resp.StatusCode)),
		}
	}

	var parsed falResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode fal response: %w", err)
	}
	if len(parsed.Images) > 0 && parsed.Images[0].URL != "" {
		return parsed.Images[0].URL, nil
	}
	if parsed.Image != nil && parsed.Image.URL != "" {
		return parsed.Image.URL, nil
	}
	return imagePlaceholder, nil
}

// upstreamMessage extracts a human-readable error from a provider error
// body, trying the shapes Fal is known to produce before falling back to the
// HTTP status text.
func upstreamMessage(payload []byte, fallback string) string {
	var probe struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(payload, &probe); err == nil {
		var detail string
		if len(probe.Detail) > 0 && json.Unmarshal(probe.Detail, &detail) == nil && detail != "" {
			return detail
		}
		if probe.Error.Message != "" {
			return probe.Error.Message
		}
		if probe.Message != "" {
			return probe.Message
		}
	}
	return fallback
}
