package itinerary

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveName(t *testing.T) {
	cases := []struct {
		cfg  ProviderConfig
		want string
	}{
		{ProviderConfig{}, "mock"},
		{ProviderConfig{OpenAIKey: "o"}, "openai"},
		{ProviderConfig{GeminiKey: "g", OpenAIKey: "o"}, "gemini"},
		{ProviderConfig{AnthropicKey: "a"}, "anthropic"},
		{ProviderConfig{OpenAIKey: "o", AnthropicKey: "a"}, "openai"},
		{ProviderConfig{Name: "places", GeminiKey: "g"}, "places"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.cfg.ResolveName(), "%+v", tc.cfg)
	}
}

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	p, err := NewProvider(ctx, ProviderConfig{})
	require.NoError(t, err)
	assert.Equal(t, "mock", p.Name())

	p, err = NewProvider(ctx, ProviderConfig{OpenAIKey: "sk-test", OpenAIModel: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())

	p, err = NewProvider(ctx, ProviderConfig{AnthropicKey: "sk-ant-test"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", p.Name())

	p, err = NewProvider(ctx, ProviderConfig{Name: "places", MapsKey: "AIza-test"})
	require.NoError(t, err)
	assert.Equal(t, "places", p.Name())

	_, err = NewProvider(ctx, ProviderConfig{Name: "gemini"})
	assert.ErrorIs(t, err, ErrMissingKey)
	_, err = NewProvider(ctx, ProviderConfig{Name: "places"})
	assert.ErrorIs(t, err, ErrMissingKey)
	_, err = NewProvider(ctx, ProviderConfig{Name: "anthropic"})
	assert.ErrorIs(t, err, ErrMissingKey)
	_, err = NewProvider(ctx, ProviderConfig{Name: "claude"})
	assert.Error(t, err)
}
