package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kvasnikov/workorders/internal/adapters/cache"
	"github.com/kvasnikov/workorders/internal/adapters/database"
	"github.com/kvasnikov/workorders/internal/api/handlers"
	"github.com/kvasnikov/workorders/internal/api/middleware"
	"github.com/kvasnikov/workorders/internal/api/routes"
	"github.com/kvasnikov/workorders/internal/application/services"
	"github.com/kvasnikov/workorders/internal/domain/providers"
	"github.com/kvasnikov/workorders/internal/infrastructure/clients/postgres"
	"github.com/kvasnikov/workorders/internal/infrastructure/clients/redis"
	"github.com/kvasnikov/workorders/internal/infrastructure/observability"
	"github.com/kvasnikov/workorders/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("workorders-api", cfg.Env)

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()

	// Redis is optional; the API works without caching.
	var cacheProvider providers.CacheProvider
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, running without response cache")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		log.Info().Msg("Redis client initialized")
	}

	userAdapter := database.NewUserAdapter(pgClient)
	orderAdapter := database.NewOrderAdapter(pgClient)
	offerAdapter := database.NewOfferAdapter(pgClient)

	orderListing := services.NewOrderListingService(orderAdapter, userAdapter)

	userHandler := handlers.NewUserHandler(userAdapter)
	orderHandler := handlers.NewOrderHandler(orderAdapter, orderListing)
	offerHandler := handlers.NewOfferHandler(offerAdapter)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
	}

	router := routes.NewRouter(userHandler, orderHandler, offerHandler, cacheMiddleware)
	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
