// README: Web server; renders the planner page for each browser session.
package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tripbud/internal/http/middleware"
	"tripbud/internal/planner"
)

type ServerDeps struct {
	Controller *planner.Controller
	Log        *zap.Logger
	SessionTTL time.Duration
}

func NewRouter(deps ServerDeps) *gin.Engine {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	r := gin.New()
	r.SetHTMLTemplate(parseTemplates())
	r.Use(
		middleware.TraceID(),
		middleware.Logging(deps.Log),
		middleware.Recovery(deps.Log),
	)

	r.StaticFS("/static", http.FS(staticFiles()))
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "OK") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := NewHandler(deps.Controller, deps.Log)
	pages := r.Group("/", Session(int(deps.SessionTTL.Seconds())))
	pages.GET("/", h.Show)
	pages.POST("/form", h.Form)
	pages.POST("/reset", h.Reset)

	return r
}
