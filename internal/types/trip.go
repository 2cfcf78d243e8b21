// README: Wire types shared by the planner view and the recommendation API.
package types

// TripRequest is the payload sent to POST /recommendations.
type TripRequest struct {
	City        string      `json:"city"`
	Interests   []string    `json:"interests"`
	Duration    int         `json:"duration"`
	Budget      Budget      `json:"budget"`
	TravelStyle TravelStyle `json:"travel_style"`
}

// NewTripRequest returns the form defaults for a fresh view.
func NewTripRequest() TripRequest {
	return TripRequest{
		Interests:   []string{},
		Duration:    DefaultDuration,
		Budget:      BudgetMedium,
		TravelStyle: StyleBalanced,
	}
}

// Clone copies the request so the interests slice is not shared.
func (r TripRequest) Clone() TripRequest {
	out := r
	out.Interests = append([]string{}, r.Interests...)
	return out
}

// HasInterest reports whether id is currently selected.
func (r TripRequest) HasInterest(id string) bool {
	for _, v := range r.Interests {
		if v == id {
			return true
		}
	}
	return false
}

// RecommendationItem is one suggested place or activity.
type RecommendationItem struct {
	Category      Category `json:"category"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PriceRange    string   `json:"price_range"`
	EstimatedTime string   `json:"estimated_time"`
	Reason        string   `json:"reason"`
}

// TripRecommendationResponse is the body returned by POST /recommendations.
type TripRecommendationResponse struct {
	City            string               `json:"city"`
	Summary         string               `json:"summary"`
	Recommendations []RecommendationItem `json:"recommendations"`
}
