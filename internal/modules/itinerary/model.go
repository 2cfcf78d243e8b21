// README: Itinerary module: provider contract, request normalization and errors.
package itinerary

import (
	"context"
	"errors"
	"strings"

	"tripbud/internal/types"
)

var ErrBadRequest = errors.New("bad request")

// MaxDuration bounds the trip length the service accepts.
const MaxDuration = 30

// Provider produces recommendations for a trip request.
type Provider interface {
	Name() string
	Recommend(ctx context.Context, req types.TripRequest) (*types.TripRecommendationResponse, error)
}

// normalize trims the city, applies the budget/style defaults and checks
// the remaining fields.
func normalize(req types.TripRequest) (types.TripRequest, error) {
	req = req.Clone()
	req.City = strings.TrimSpace(req.City)
	if req.City == "" || len(req.Interests) == 0 {
		return req, ErrBadRequest
	}
	if req.Duration < 1 || req.Duration > MaxDuration {
		return req, ErrBadRequest
	}
	if req.Budget == "" {
		req.Budget = types.BudgetMedium
	}
	if req.TravelStyle == "" {
		req.TravelStyle = types.StyleBalanced
	}
	if !req.Budget.Valid() || !req.TravelStyle.Valid() {
		return req, ErrBadRequest
	}
	return req, nil
}
