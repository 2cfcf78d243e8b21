// README: Prometheus collectors for the web view and the recommendation API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcomes recorded by the planner controller.
const (
	OutcomeValidationError = "validation_error"
	OutcomeSuccess         = "success"
	OutcomeFailure         = "failure"
	OutcomeInFlight        = "in_flight"
	OutcomeFallback        = "fallback"
)

var (
	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripbud_web_submissions_total",
			Help: "Form submissions by outcome",
		},
		[]string{"outcome"},
	)

	PendingSubmissions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tripbud_web_pending_submissions",
			Help: "Recommendation requests currently in flight from the web view",
		},
	)

	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripbud_api_recommendations_total",
			Help: "Recommendation requests served by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tripbud_api_recommendation_duration_seconds",
			Help:    "Time spent in the recommendation provider",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 20, 40},
		},
		[]string{"provider"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripbud_http_requests_total",
			Help: "HTTP requests by route and status code",
		},
		[]string{"route", "status"},
	)
)
