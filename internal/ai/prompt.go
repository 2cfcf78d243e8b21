package ai

import (
	"fmt"
	"strings"

	"tripbud/internal/types"
)

// buildRecommendationPrompt renders the travel-companion instructions for req.
func buildRecommendationPrompt(req types.TripRequest) string {
	interests := strings.Join(req.Interests, ", ")
	if interests == "" {
		interests = "anything"
	}

	return fmt.Sprintf(`You are TripBud, an AI travel companion that curates authentic, personalized recommendations.

User wants to visit: %s
Interests: %s
Trip duration: %d days
Budget: %s
Travel style: %s

Please provide personalized recommendations including:
- Restaurants and cafes (focus on local favorites, not chains)
- Activities and experiences
- Hidden gems and local spots
- Museums or cultural sites if interested

For each recommendation, provide:
1. Name
2. Category (food/activity/culture/nightlife/nature/shopping)
3. Brief description
4. Why it matches their interests
5. Estimated time needed
6. Price range ($/$$/$$$/free)

Return JSON only, matching this structure exactly:
{
  "recommendations": [
    {
      "name": "...",
      "category": "...",
      "description": "...",
      "reason": "...",
      "estimated_time": "...",
      "price_range": "..."
    }
  ],
  "summary": "A brief overview of the trip plan"
}

Focus on quality over quantity - 8-12 excellent recommendations total.
Prioritize authentic local experiences over tourist traps.`,
		req.City, interests, req.Duration, req.Budget, req.TravelStyle)
}
