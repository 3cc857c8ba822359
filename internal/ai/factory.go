package ai

import (
	"fmt"
	"net/http"

	"tripsight/internal/config"
)

// NewProvider returns the LLMProvider selected by cfg.Provider.
// Supported providers: "openai" (default when empty) and "gemini".
func NewProvider(cfg config.LLMConfig) (LLMProvider, error) {
	switch cfg.Provider {
	case "", config.ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.Model, cfg.OpenAIBaseURL, &http.Client{}), nil
	case config.ProviderGemini:
		return NewGeminiProvider(cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.Provider)
	}
}
