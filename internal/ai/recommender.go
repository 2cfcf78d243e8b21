package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tripbud/internal/types"
)

// Recommender turns a Completer into a recommendation provider.
type Recommender struct {
	name string
	llm  Completer
}

func NewRecommender(name string, llm Completer) *Recommender {
	return &Recommender{name: name, llm: llm}
}

func (r *Recommender) Name() string { return r.name }

func (r *Recommender) Close() error { return r.llm.Close() }

// Recommend asks the model for recommendations and validates the answer.
// The response city is always the requested city.
func (r *Recommender) Recommend(ctx context.Context, req types.TripRequest) (*types.TripRecommendationResponse, error) {
	text, err := r.llm.Complete(ctx, buildRecommendationPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.name, err)
	}

	out, err := parseRecommendations(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.name, err)
	}

	summary := strings.TrimSpace(out.Summary)
	if summary == "" {
		summary = fmt.Sprintf("Personalized %d-day itinerary for %s", req.Duration, req.City)
	}
	return &types.TripRecommendationResponse{
		City:            req.City,
		Summary:         summary,
		Recommendations: out.Recommendations,
	}, nil
}

func parseRecommendations(text string) (*recommendationOutput, error) {
	raw := extractJSONObject(cleanJSONString(text))
	if raw == "" {
		return nil, fmt.Errorf("%w: no JSON object in answer", ErrInvalidOutput)
	}
	if err := validateOutput(raw); err != nil {
		return nil, err
	}

	var out recommendationOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	for i := range out.Recommendations {
		c := strings.ToLower(strings.TrimSpace(string(out.Recommendations[i].Category)))
		out.Recommendations[i].Category = types.Category(c)
	}
	return &out, nil
}

// cleanJSONString removes markdown code fences if present (e.g. ```json ... ```).
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}

// extractJSONObject returns the text between the first '{' and the last '}'.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return ""
	}
	return s[start : end+1]
}
