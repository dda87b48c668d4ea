package generate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

const maxCompletionTokens = 2000

// OpenRouterClient calls OpenRouter's OpenAI-compatible chat completions
// endpoint. SiteURL and SiteName are sent as the HTTP-Referer and X-Title
// headers OpenRouter uses to attribute traffic.
type OpenRouterClient struct {
	baseURL  string
	siteURL  string
	siteName string
	timeout  time.Duration
}

// NewOpenRouterClient creates an OpenRouterClient against the given API base
// URL, e.g. "https://openrouter.ai/api/v1".
func NewOpenRouterClient(baseURL, siteURL, siteName string, timeout time.Duration) *OpenRouterClient {
	return &OpenRouterClient{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		siteURL:  siteURL,
		siteName: siteName,
		timeout:  timeout,
	}
}

// Complete runs one chat completion and returns the first choice's message
// content, or a placeholder when the provider returns no content. Failures
// are never retried; a non-success status surfaces as a *ProviderError
// carrying the upstream message.
func (c *OpenRouterClient) Complete(ctx context.Context, apiKey, model, prompt string, temperature float64) (string, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(c.baseURL),
		option.WithMaxRetries(0),
	}
	if c.timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(c.timeout))
	}
	if c.siteURL != "" {
		opts = append(opts, option.WithHeader("HTTP-Referer", c.siteURL))
	}
	if c.siteName != "" {
		opts = append(opts, option.WithHeader("X-Title", c.siteName))
	}
	client := openai.NewClient(opts...)

	completion, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxCompletionTokens),
	})
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			msg := apierr.Message
			if msg == "" {
				msg = http.StatusText(apierr.StatusCode)
			}
			return "", &ProviderError{
				Provider:   models.ProviderOpenRouter,
				StatusCode: apierr.StatusCode,
				Message:    msg,
			}
		}
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return textPlaceholder, nil
	}
	return completion.Choices[0].Message.Content, nil
}
