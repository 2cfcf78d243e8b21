package itinerary

import (
	"context"
	"errors"
	"fmt"

	"tripbud/internal/ai"
	"tripbud/internal/maps"
)

var ErrMissingKey = errors.New("provider api key not configured")

type ProviderConfig struct {
	Name        string
	GeminiKey   string
	GeminiModel string
	OpenAIKey   string
	OpenAIModel string
	MapsKey     string

	AnthropicKey   string
	AnthropicModel string
}

// ResolveName returns the provider to use. An empty name picks Gemini when
// its key is set, then OpenAI, then Anthropic, then the curated mock.
func (c ProviderConfig) ResolveName() string {
	switch {
	case c.Name != "":
		return c.Name
	case c.GeminiKey != "":
		return "gemini"
	case c.OpenAIKey != "":
		return "openai"
	case c.AnthropicKey != "":
		return "anthropic"
	default:
		return "mock"
	}
}

func NewProvider(ctx context.Context, cfg ProviderConfig) (Provider, error) {
	switch name := cfg.ResolveName(); name {
	case "gemini":
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("gemini: %w", ErrMissingKey)
		}
		llm, err := ai.NewGeminiProvider(ctx, cfg.GeminiKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		return ai.NewRecommender(name, llm), nil
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("openai: %w", ErrMissingKey)
		}
		llm, err := ai.NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIModel, "")
		if err != nil {
			return nil, err
		}
		return ai.NewRecommender(name, llm), nil
	case "anthropic":
		if cfg.AnthropicKey == "" {
			return nil, fmt.Errorf("anthropic: %w", ErrMissingKey)
		}
		llm, err := ai.NewAnthropicProvider(cfg.AnthropicKey, cfg.AnthropicModel, "")
		if err != nil {
			return nil, err
		}
		return ai.NewRecommender(name, llm), nil
	case "places":
		if cfg.MapsKey == "" {
			return nil, fmt.Errorf("places: %w", ErrMissingKey)
		}
		return maps.NewPlacesService(cfg.MapsKey)
	case "mock":
		return MockProvider{}, nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", name)
	}
}
