// README: Entry point; loads config, wires the recommendation provider and catalog, starts the API server.
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
	httptransport "tripbud/internal/http"
	"tripbud/internal/infra"
	"tripbud/internal/logger"
	"tripbud/internal/modules/catalog"
	"tripbud/internal/modules/itinerary"
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
		zl.Fatal("provider init", zap.Error(err))
	}
	itinerarySvc := itinerary.NewService(provider, zl.Named("itinerary"))
	defer func() { _ = itinerarySvc.Close() }()

	var catalogStore *catalog.Store
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			zl.Fatal("postgres init", zap.Error(err))
		}
		defer dbPool.Close()
		catalogStore = catalog.NewStore(dbPool)
		if err := catalogStore.SeedDefaults(ctx); err != nil {
			zl.Warn("seed cities", zap.Error(err))
		}
	}
	catalogSvc := catalog.NewService(catalogStore, zl.Named("catalog"))

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Itinerary:   itinerarySvc,
		Catalog:     catalogSvc,
		Log:         zl.Named("http"),
		CORSOrigins: cfg.API.CORSOrigins,
	})

	server := &http.Server{
		Addr:              cfg.API.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	zl.Info("tripbud api listening",
		zap.String("addr", cfg.API.Addr),
		zap.String("provider", itinerarySvc.ProviderName()),
		zap.Bool("postgres", catalogStore != nil),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zl.Fatal("serve", zap.Error(err))
	}
}
