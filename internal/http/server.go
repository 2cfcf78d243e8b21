// README: API gateway; wires middleware and delegates to module services.
package http

import (
	"net/http"

	"go.uber.org/zap"

	"tripbud/internal/modules/catalog"
	"tripbud/internal/modules/itinerary"
)

type ServerDeps struct {
	Itinerary   *itinerary.Service
	Catalog     *catalog.Service
	Log         *zap.Logger
	CORSOrigins []string
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	return &Server{deps: deps}
}

func (s *Server) Routes() http.Handler {
	return NewRouter(s.deps)
}
