// README: Recommendation handler for POST /recommendations.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripbud/internal/modules/itinerary"
	"tripbud/internal/types"
)

// recommendTimeout bounds one provider round trip, fallback included.
const recommendTimeout = 45 * time.Second

type RecommendationHandler struct {
	itinerary *itinerary.Service
}

func NewRecommendationHandler(svc *itinerary.Service) *RecommendationHandler {
	return &RecommendationHandler{itinerary: svc}
}

type recommendReq struct {
	City        string   `json:"city" binding:"required"`
	Interests   []string `json:"interests" binding:"required,min=1"`
	Duration    int      `json:"duration" binding:"required,min=1,max=30"`
	Budget      string   `json:"budget"`
	TravelStyle string   `json:"travel_style"`
}

func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var req recommendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		writeError(c, http.StatusBadRequest, "invalid request")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), recommendTimeout)
	defer cancel()

	resp, err := h.itinerary.Recommend(ctx, types.TripRequest{
		City:        req.City,
		Interests:   req.Interests,
		Duration:    req.Duration,
		Budget:      types.Budget(req.Budget),
		TravelStyle: types.TravelStyle(req.TravelStyle),
	})
	if err != nil {
		writeItineraryError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, resp)
}
