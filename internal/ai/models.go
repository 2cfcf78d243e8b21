package ai

import (
	"errors"

	"tripbud/internal/types"
)

// ErrInvalidOutput is returned when the model answer is not usable JSON.
var ErrInvalidOutput = errors.New("invalid model output")

// recommendationOutput is the JSON document the prompt asks the model for.
type recommendationOutput struct {
	Recommendations []types.RecommendationItem `json:"recommendations"`
	Summary         string                     `json:"summary"`
}
