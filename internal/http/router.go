// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tripbud/internal/http/handlers"
	"tripbud/internal/http/middleware"
)

func NewRouter(deps ServerDeps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.TraceID(),
		middleware.Logging(deps.Log),
		middleware.Recovery(deps.Log),
		middleware.CORS(deps.CORSOrigins),
	)

	r.GET("/", handlers.Index)

	recommendationHandler := handlers.NewRecommendationHandler(deps.Itinerary)
	r.POST("/recommendations", recommendationHandler.Recommend)

	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)
	r.GET("/cities", catalogHandler.Cities)
	r.GET("/categories", catalogHandler.Categories)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "provider": deps.Itinerary.ProviderName()})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
