package maps

import (
	"context"
	"fmt"

	"tripbud/internal/types"
)

// maxRecommendations caps a Places-built itinerary.
const maxRecommendations = 12

type interestQuery struct {
	query    string
	category types.Category
	duration string
}

var interestQueries = map[string]interestQuery{
	"food":      {"best local restaurants", types.CategoryFood, "1-2 hours"},
	"culture":   {"museums and historic sites", types.CategoryCulture, "2-3 hours"},
	"nature":    {"parks and gardens", types.CategoryNature, "1-2 hours"},
	"nightlife": {"cocktail bars and live music", types.CategoryNightlife, "2-3 hours"},
	"shopping":  {"local markets and boutiques", types.CategoryShopping, "1-2 hours"},
	"adventure": {"tours and outdoor activities", types.CategoryActivity, "3 hours"},
}

// Tourist-trap chains are skipped regardless of interest.
var defaultExclusions = []string{"McDonald", "Starbucks", "Burger King", "KFC", "Hard Rock"}

func (s *PlacesService) Name() string { return "places" }

func (s *PlacesService) Close() error { return nil }

// Recommend builds an itinerary from text searches, one per selected
// interest. The travel style decides how many places each interest gets and
// a "budget" trip skips expensive places.
func (s *PlacesService) Recommend(ctx context.Context, req types.TripRequest) (*types.TripRecommendationResponse, error) {
	opts := &SearchOptions{
		ExcludeKeywords: defaultExclusions,
		Limit:           perInterest(req.TravelStyle),
		MinRating:       4.0,
	}
	if req.Budget == types.BudgetLow {
		opts.MaxPriceLevel = 2
	}

	seen := make(map[string]bool)
	var items []types.RecommendationItem
	for _, interest := range req.Interests {
		q, ok := interestQueries[interest]
		if !ok {
			continue
		}
		places, err := s.Search(ctx, q.query, req.City, opts)
		if err != nil {
			return nil, err
		}
		for _, p := range places {
			if seen[p.PlaceID] {
				continue
			}
			seen[p.PlaceID] = true
			items = append(items, types.RecommendationItem{
				Category:      q.category,
				Name:          p.Name,
				Description:   p.Address,
				PriceRange:    priceRange(p.PriceLevel),
				EstimatedTime: q.duration,
				Reason:        fmt.Sprintf("Rated %.1f by %d visitors, a strong pick for %s", p.Rating, p.UserRatingsTotal, interest),
			})
			if len(items) >= maxRecommendations {
				break
			}
		}
		if len(items) >= maxRecommendations {
			break
		}
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("places: no results for %s", req.City)
	}
	return &types.TripRecommendationResponse{
		City:            req.City,
		Summary:         fmt.Sprintf("Top-rated spots for a %d-day trip to %s", req.Duration, req.City),
		Recommendations: items,
	}, nil
}

func perInterest(style types.TravelStyle) int {
	switch style {
	case types.StyleRelaxed:
		return 2
	case types.StylePacked:
		return 4
	default:
		return 3
	}
}

func priceRange(level int) string {
	switch level {
	case 1:
		return "$"
	case 2:
		return "$$"
	case 3, 4:
		return "$$$"
	default:
		return "varies"
	}
}
