package catalog

import "github.com/elynrose/gpt-cells-app-sub001/internal/models"

// StaticOpenRouterCandidates returns the curated OpenRouter catalog. It is
// the sync source when the live listing is unreachable and the dispatcher's
// fallback when the catalog store cannot be read.
func StaticOpenRouterCandidates() []Candidate {
	return []Candidate{
		{
			OriginalID:  "anthropic/claude-3.5-sonnet",
			Name:        "Claude 3.5 Sonnet",
			Description: "Anthropic's balanced flagship for reasoning and long-form writing.",
			Provider:    models.ProviderOpenRouter,
			Type:        models.ModelTypeText,
		},
		{
			OriginalID:  "anthropic/claude-3-haiku",
			Name:        "Claude 3 Haiku",
			Description: "Fast, low-cost Anthropic model for short interactive tasks.",
			Provider:    models.ProviderOpenRouter,
			Type:        models.ModelTypeText,
		},
		{
			OriginalID:  "openai/gpt-4o",
			Name:        "GPT-4o",
			Description: "OpenAI's multimodal flagship, strong general-purpose chat.",
			Provider:    models.ProviderOpenRouter,
			Type:        models.ModelTypeText,
		},
		{
			OriginalID:  "openai/gpt-4o-mini",
			Name:        "GPT-4o Mini",
			Description: "Smaller GPT-4o tier for high-volume completions.",
			Provider:    models.ProviderOpenRouter,
			Type:        models.ModelTypeText,
		},
		{
			OriginalID:  "google/gemini-pro-1.5",
			Name:        "Gemini Pro 1.5",
			Description: "Google's long-context model served through OpenRouter.",
			Provider:    models.ProviderOpenRouter,
			Type:        models.ModelTypeText,
		},
		{
			OriginalID:  "meta-llama/llama-3.1-70b-instruct",
			Name:        "Llama 3.1 70B Instruct",
			Description: "Meta's open-weight instruct model at the 70B size.",
			Provider:    models.ProviderOpenRouter,
			Type:        models.ModelTypeText,
		},
		{
			OriginalID:  "mistralai/mistral-large",
			Name:        "Mistral Large",
			Description: "Mistral's top-end model for multilingual generation.",
			Provider:    models.ProviderOpenRouter,
			Type:        models.ModelTypeText,
		},
	}
}

// StaticFalCandidates returns the curated Fal.ai image catalog.
func StaticFalCandidates() []Candidate {
	return []Candidate{
		{
			OriginalID:  "fal-ai/flux/dev",
			Name:        "FLUX.1 [dev]",
			Description: "High-quality FLUX development checkpoint for image generation.",
			Provider:    models.ProviderFalAI,
			Type:        models.ModelTypeImage,
		},
		{
			OriginalID:  "fal-ai/flux/schnell",
			Name:        "FLUX.1 [schnell]",
			Description: "Distilled FLUX variant tuned for fast previews.",
			Provider:    models.ProviderFalAI,
			Type:        models.ModelTypeImage,
		},
		{
			OriginalID:  "fal-ai/flux-pro",
			Name:        "FLUX.1 [pro]",
			Description: "Highest-fidelity FLUX tier.",
			Provider:    models.ProviderFalAI,
			Type:        models.ModelTypeImage,
		},
		{
			OriginalID:  "fal-ai/fast-sdxl",
			Name:        "Fast SDXL",
			Description: "Latency-optimized Stable Diffusion XL endpoint.",
			Provider:    models.ProviderFalAI,
			Type:        models.ModelTypeImage,
		},
		{
			OriginalID:  "fal-ai/stable-diffusion-v35-large",
			Name:        "Stable Diffusion 3.5 Large",
			Description: "Stability AI's 3.5 large checkpoint.",
			Provider:    models.ProviderFalAI,
			Type:        models.ModelTypeImage,
		},
	}
}
