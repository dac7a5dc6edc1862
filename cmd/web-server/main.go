package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"movierecommender/internal/client"
	"movierecommender/internal/config"
	"movierecommender/internal/logging"
	"movierecommender/internal/recommend"
	"movierecommender/internal/web"
)

func main() {
	// 1️⃣ Load config
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		logging.Fatal().Err(err).Msg("could not load config")
	}
	if err := cfg.Validate(); err != nil {
		logging.Fatal().Err(err).Msg("invalid config")
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2️⃣ Recommendation API client
	apiClient := client.NewRecommendClient(cfg.RecommendAPIURL,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithRateLimit(cfg.ClientRateLimit, cfg.ClientRateBurst),
		client.WithLogger(logging.Component("client")),
	)

	// 3️⃣ Setup Gin
	r := web.NewRouter(apiClient, recommend.NewFlightTable(), cfg.GameURL, logging.Component("web"))

	srv := &http.Server{
		Addr:    cfg.Address(),
		Handler: r,
	}

	go func() {
		logging.Info().Str("addr", srv.Addr).Str("api", apiClient.BaseURL()).Msg("web front end listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("forced shutdown")
	}
}
