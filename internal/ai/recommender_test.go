package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripbud/internal/types"
)

type fakeCompleter struct {
	answer string
	err    error
	prompt string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.answer, f.err
}

func (f *fakeCompleter) Close() error { return nil }

func tokyoRequest() types.TripRequest {
	return types.TripRequest{
		City:        "Tokyo",
		Interests:   []string{"food", "nightlife"},
		Duration:    4,
		Budget:      types.BudgetLuxury,
		TravelStyle: types.StylePacked,
	}
}

const validAnswer = "```json\n" + `{
  "recommendations": [
    {"name": "Omoide Yokocho", "category": "Food", "description": "Tiny yakitori stalls",
     "reason": "Late-night eats", "estimated_time": "2 hours", "price_range": "$$"}
  ],
  "summary": ""
}` + "\n```"

func TestRecommenderParsesFencedAnswer(t *testing.T) {
	llm := &fakeCompleter{answer: validAnswer}
	rec := NewRecommender("fake", llm)

	resp, err := rec.Recommend(context.Background(), tokyoRequest())
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", resp.City)
	assert.Equal(t, "Personalized 4-day itinerary for Tokyo", resp.Summary)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, types.CategoryFood, resp.Recommendations[0].Category)
	assert.Equal(t, "Omoide Yokocho", resp.Recommendations[0].Name)

	assert.Contains(t, llm.prompt, "User wants to visit: Tokyo")
	assert.Contains(t, llm.prompt, "Interests: food, nightlife")
	assert.Contains(t, llm.prompt, "Budget: luxury")
	assert.Contains(t, llm.prompt, "Travel style: packed")
}

func TestRecommenderExtractsObjectFromProse(t *testing.T) {
	answer := `Sure! Here you go: {"recommendations":[{"name":"Yanaka","category":"culture","description":"old town","reason":"quiet","estimated_time":"2h","price_range":"$"}],"summary":"Slow Tokyo"} Enjoy.`
	resp, err := NewRecommender("fake", &fakeCompleter{answer: answer}).Recommend(context.Background(), tokyoRequest())
	require.NoError(t, err)
	assert.Equal(t, "Slow Tokyo", resp.Summary)
}

func TestRecommenderRejectsInvalidOutput(t *testing.T) {
	answers := []string{
		"no json here",
		`{"summary": "missing list"}`,
		`{"recommendations": []}`,
		`{"recommendations": [{"name": "x"}]}`,
		`{"recommendations": "nope"}`,
	}
	for _, a := range answers {
		_, err := NewRecommender("fake", &fakeCompleter{answer: a}).Recommend(context.Background(), tokyoRequest())
		assert.True(t, errors.Is(err, ErrInvalidOutput), "answer %q: %v", a, err)
	}
}

func TestRecommenderPropagatesCompleterError(t *testing.T) {
	_, err := NewRecommender("fake", &fakeCompleter{err: errors.New("quota")}).Recommend(context.Background(), tokyoRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota")
}

func TestOpenAIProviderComplete(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"choices": []any{map[string]any{"index": 0, "message": map[string]any{"role": "assistant", "content": `{"ok":true}`}}},
		})
	}))
	defer srv.Close()

	p, err := NewOpenAIProvider("sk-test", "gpt-4o-mini", srv.URL+"/v1")
	require.NoError(t, err)

	out, err := p.Complete(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)
	assert.Equal(t, "gpt-4o-mini", body["model"])
	assert.Equal(t, map[string]any{"type": "json_object"}, body["response_format"])
}

func TestAnthropicProviderComplete(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/v1/messages"))
		assert.Equal(t, "sk-ant-test", r.Header.Get("X-Api-Key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    "msg_1",
			"type":  "message",
			"role":  "assistant",
			"model": DefaultAnthropicModel,
			"content": []any{
				map[string]any{"type": "text", "text": `{"ok":`},
				map[string]any{"type": "text", "text": `true}`},
			},
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 10, "output_tokens": 4},
		})
	}))
	defer srv.Close()

	p, err := NewAnthropicProvider("sk-ant-test", "", srv.URL+"/")
	require.NoError(t, err)

	out, err := p.Complete(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)
	assert.Equal(t, DefaultAnthropicModel, body["model"])
	assert.Equal(t, float64(2000), body["max_tokens"])
	msgs, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 1)
	assert.Equal(t, "user", msgs[0].(map[string]any)["role"])
}

func TestAnthropicProviderEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_2","type":"message","role":"assistant","content":[],"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":0}}`))
	}))
	defer srv.Close()

	p, err := NewAnthropicProvider("sk-ant-test", "claude-3-5-haiku-latest", srv.URL+"/")
	require.NoError(t, err)
	_, err = p.Complete(context.Background(), "hello")
	assert.Error(t, err)
}

func TestProvidersRequireKeys(t *testing.T) {
	_, err := NewOpenAIProvider(" ", "gpt-4o-mini", "")
	assert.Error(t, err)
	_, err = NewAnthropicProvider("", "", "")
	assert.Error(t, err)
	_, err = NewGeminiProvider(context.Background(), "", "gemini-2.0-flash")
	assert.Error(t, err)
}
