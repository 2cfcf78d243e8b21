// README: Asks the configured recommendation provider for one trip and prints the cards.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"tripbud/internal/config"
	"tripbud/internal/modules/itinerary"
	"tripbud/internal/types"
)

func main() {
	city := flag.String("city", "Paris", "destination city")
	interests := flag.String("interests", "food,culture", "comma separated interests")
	days := flag.Int("days", 3, "trip duration in days")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	provider, err := itinerary.NewProvider(ctx, itinerary.ProviderConfig{
		Name:        cfg.AI.Provider,
		GeminiKey:   cfg.AI.GeminiKey,
		GeminiModel: cfg.AI.GeminiModel,
		OpenAIKey:   cfg.AI.OpenAIKey,
		OpenAIModel: cfg.AI.OpenAIModel,
		MapsKey:     cfg.Maps.APIKey,

		AnthropicKey:   cfg.AI.AnthropicKey,
		AnthropicModel: cfg.AI.AnthropicModel,
	})
	if err != nil {
		log.Fatalf("Failed to initialize provider: %v", err)
	}
	svc := itinerary.NewService(provider, nil)
	defer svc.Close()

	req := types.NewTripRequest()
	req.City = *city
	req.Duration = *days
	req.Interests = strings.Split(*interests, ",")

	fmt.Printf("Provider: %s\n", svc.ProviderName())
	resp, err := svc.Recommend(ctx, req)
	if err != nil {
		log.Fatalf("Error getting recommendations: %v", err)
	}

	fmt.Printf("Your %s Itinerary\n%s\n\n", resp.City, resp.Summary)
	for _, rec := range resp.Recommendations {
		fmt.Printf("%s %s  %s  [%s]\n", rec.Category.Marker(), rec.Category, rec.Name, rec.PriceRange)
		fmt.Printf("   %s\n", rec.Description)
		fmt.Printf("   ⏱️ %s  Why: %s\n\n", rec.EstimatedTime, rec.Reason)
	}
}
