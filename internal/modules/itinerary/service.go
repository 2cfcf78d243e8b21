package itinerary

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tripbud/internal/metrics"
	"tripbud/internal/types"
)

// Service answers recommendation requests with the configured provider and
// falls back to curated data when the provider fails.
type Service struct {
	provider Provider
	fallback Provider
	log      *zap.Logger
}

func NewService(provider Provider, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if provider == nil {
		provider = MockProvider{}
	}
	return &Service{provider: provider, fallback: MockProvider{}, log: log}
}

// ProviderName reports which provider serves requests.
func (s *Service) ProviderName() string { return s.provider.Name() }

// Recommend validates req and returns recommendations. It only fails for
// invalid requests.
func (s *Service) Recommend(ctx context.Context, req types.TripRequest) (*types.TripRecommendationResponse, error) {
	req, err := normalize(req)
	if err != nil {
		return nil, err
	}

	name := s.provider.Name()
	start := time.Now()
	resp, err := s.provider.Recommend(ctx, req)
	metrics.RecommendationDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err == nil && resp != nil {
		metrics.Recommendations.WithLabelValues(name, metrics.OutcomeSuccess).Inc()
		return resp, nil
	}

	s.log.Warn("provider failed, serving curated recommendations",
		zap.String("provider", name),
		zap.String("city", req.City),
		zap.Error(err),
	)
	metrics.Recommendations.WithLabelValues(name, metrics.OutcomeFallback).Inc()
	return s.fallback.Recommend(ctx, req)
}

// Close releases the provider's client, if it holds one.
func (s *Service) Close() error {
	if c, ok := s.provider.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
