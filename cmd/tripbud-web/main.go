// README: Entry point; loads config, wires the session store and API client, serves the planner page.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripbud/internal/config"
	"tripbud/internal/infra"
	"tripbud/internal/logger"
	"tripbud/internal/planner"
	"tripbud/internal/tripapi"
	"tripbud/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store planner.SessionStore
	if cfg.Redis.Addr != "" {
		rdb, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			zl.Fatal("redis init", zap.Error(err))
		}
		defer func() { _ = rdb.Close() }()
		store = planner.NewRedisStore(rdb, cfg.Web.SessionTTL)
	} else {
		mem := planner.NewMemoryStore(cfg.Web.SessionTTL)
		go mem.RunSweeper(ctx, sweepInterval(cfg.Web.SessionTTL))
		store = mem
	}

	client := tripapi.NewClient(cfg.Web.APIURL, cfg.Web.APITimeout)
	ctrl := planner.NewController(store, client, zl.Named("planner"),
		planner.WithPendingTTL(cfg.Web.APITimeout+10*time.Second))

	server := &http.Server{
		Addr: cfg.Web.Addr,
		Handler: web.NewRouter(web.ServerDeps{
			Controller: ctrl,
			Log:        zl.Named("web"),
			SessionTTL: cfg.Web.SessionTTL,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	zl.Info("tripbud web listening",
		zap.String("addr", cfg.Web.Addr),
		zap.String("api_url", cfg.Web.APIURL),
		zap.Bool("redis_sessions", cfg.Redis.Addr != ""),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zl.Fatal("serve", zap.Error(err))
	}
}

// sweepInterval runs the memory sweeper a few times per session lifetime,
// bounded to [1m, 10m].
func sweepInterval(ttl time.Duration) time.Duration {
	d := ttl / 4
	if d < time.Minute {
		return time.Minute
	}
	if d > 10*time.Minute {
		return 10 * time.Minute
	}
	return d
}
