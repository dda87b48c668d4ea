package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "forward slashes", input: "anthropic/claude-3.5-sonnet", expected: "anthropic-claude-3.5-sonnet"},
		{name: "multiple separators", input: "fal-ai/flux/dev", expected: "fal-ai-flux-dev"},
		{name: "backslash", input: "vendor\\model", expected: "vendor-model"},
		{name: "no separators", input: "flux-dev", expected: "flux-dev"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeID(tt.input))
		})
	}
}

func TestSanitizeID_Idempotent(t *testing.T) {
	inputs := []string{
		"anthropic/claude-3.5-sonnet",
		"fal-ai/flux/dev",
		"openai/gpt-4o",
		"already-sanitized",
	}
	for _, in := range inputs {
		once := SanitizeID(in)
		assert.Equal(t, once, SanitizeID(once))
	}
}
