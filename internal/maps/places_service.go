package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// Place represents a simplified location result.
type Place struct {
	Name             string
	Address          string
	Rating           float32
	PriceLevel       int
	PlaceID          string
	UserRatingsTotal int
}

// SearchOptions refines a text search.
type SearchOptions struct {
	// ExcludeKeywords disqualify any result whose name contains them.
	ExcludeKeywords []string
	// MaxPriceLevel drops results above this Google price level. Zero disables it.
	MaxPriceLevel int
	// Limit caps the number of results. Zero means no cap.
	Limit int
	// MinRating drops results rated below it.
	MinRating float32
}

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
// Extra client options (such as maps.WithBaseURL) are passed through.
func NewPlacesService(apiKey string, opts ...maps.ClientOption) (*PlacesService, error) {
	opts = append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// Search runs a Places text search for query in city.
func (s *PlacesService) Search(ctx context.Context, query, city string, opts *SearchOptions) ([]Place, error) {
	fullQuery := query
	if city != "" {
		fullQuery = fmt.Sprintf("%s in %s", query, city)
	}

	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{
		Query:    fullQuery,
		Language: "en",
	})
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	if opts == nil {
		opts = &SearchOptions{}
	}

	var results []Place
	for _, result := range resp.Results {
		if result.Rating < opts.MinRating {
			continue
		}
		if opts.MaxPriceLevel > 0 && result.PriceLevel > opts.MaxPriceLevel {
			continue
		}
		if containsAny(result.Name, opts.ExcludeKeywords) {
			continue
		}

		results = append(results, Place{
			Name:             result.Name,
			Address:          result.FormattedAddress,
			Rating:           result.Rating,
			PriceLevel:       result.PriceLevel,
			PlaceID:          result.PlaceID,
			UserRatingsTotal: result.UserRatingsTotal,
		})

		if opts.Limit > 0 && len(results) >= opts.Limit {
			break
		}
	}

	return results, nil
}

func containsAny(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
