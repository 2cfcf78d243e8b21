// README: Catalog handlers for cities and categories.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripbud/internal/modules/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Service
}

func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

func (h *CatalogHandler) Cities(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"cities": h.catalog.Cities(c.Request.Context())})
}

func (h *CatalogHandler) Categories(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"categories": h.catalog.Categories()})
}

// Index describes the API.
func Index(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"message": "Welcome to TripBud API!",
		"version": "1.0.0",
		"endpoints": gin.H{
			"/recommendations": "POST - Get personalized travel recommendations",
			"/cities":          "GET - Get available cities",
			"/categories":      "GET - Get recommendation categories",
		},
	})
}
