package itinerary

import (
	"context"
	"fmt"
	"strings"

	"tripbud/internal/types"
)

// mockLimit caps the number of curated items returned.
const mockLimit = 8

var mockData = map[string][]types.RecommendationItem{
	"paris": {
		{
			Name:          "Le Comptoir du Relais",
			Category:      types.CategoryFood,
			Description:   "Authentic bistro in Saint-Germain serving classic French cuisine",
			Reason:        "Perfect for food lovers seeking genuine Parisian dining",
			EstimatedTime: "2 hours",
			PriceRange:    "$$",
		},
		{
			Name:          "Musée Rodin",
			Category:      types.CategoryCulture,
			Description:   "Beautiful sculpture museum with stunning gardens",
			Reason:        "Less crowded than major museums, perfect for art enthusiasts",
			EstimatedTime: "2-3 hours",
			PriceRange:    "$$",
		},
		{
			Name:          "Canal Saint-Martin",
			Category:      types.CategoryNature,
			Description:   "Picturesque canal with trendy cafes and local atmosphere",
			Reason:        "Great for leisurely walks and people-watching",
			EstimatedTime: "1-2 hours",
			PriceRange:    "free",
		},
	},
	"tokyo": {
		{
			Name:          "Tsukiji Outer Market",
			Category:      types.CategoryFood,
			Description:   "Fresh seafood and street food from local vendors",
			Reason:        "Authentic local food experience",
			EstimatedTime: "2-3 hours",
			PriceRange:    "$$",
		},
		{
			Name:          "TeamLab Borderless",
			Category:      types.CategoryActivity,
			Description:   "Immersive digital art museum",
			Reason:        "Unique modern cultural experience",
			EstimatedTime: "3 hours",
			PriceRange:    "$$$",
		},
		{
			Name:          "Yanaka District",
			Category:      types.CategoryCulture,
			Description:   "Traditional neighborhood with temples and old shops",
			Reason:        "Experience old Tokyo atmosphere",
			EstimatedTime: "2-3 hours",
			PriceRange:    "$",
		},
	},
}

// MockProvider serves curated data when no live provider is available.
// Cities without curated data get the Paris list.
type MockProvider struct{}

func (MockProvider) Name() string { return "mock" }

func (MockProvider) Recommend(_ context.Context, req types.TripRequest) (*types.TripRecommendationResponse, error) {
	items, ok := mockData[strings.ToLower(req.City)]
	if !ok {
		items = mockData["paris"]
	}
	if len(items) > mockLimit {
		items = items[:mockLimit]
	}
	return &types.TripRecommendationResponse{
		City:            req.City,
		Summary:         fmt.Sprintf("Curated %d-day itinerary for %s based on your interests", req.Duration, req.City),
		Recommendations: append([]types.RecommendationItem(nil), items...),
	}, nil
}
