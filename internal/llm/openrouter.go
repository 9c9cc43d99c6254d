package llm

// defaultOpenRouterBaseURL is OpenRouter's OpenAI-compatible endpoint.
const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// NewOpenRouterProvider creates a provider that talks to OpenRouter
// through the OpenAI-compatible API. Model names follow OpenRouter's
// vendor/model convention, e.g. "google/gemini-2.5-flash".
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	return NewOpenAIProvider(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	})
}
