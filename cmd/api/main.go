package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cryptonews/db"
	"cryptonews/internal/aggregator"
	"cryptonews/internal/config"
	"cryptonews/internal/handler"
	"cryptonews/internal/logger"
	"cryptonews/internal/repository"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	if _, err := logger.Setup(os.Stderr, cfg.LogLevel); err != nil {
		log.Fatalf("error setting up logger: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	var cache aggregator.Cache
	var pinger handler.Pinger
	if cfg.RedisURL != "" {
		redisClient, err := db.ConnectRedis(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer redisClient.Close()

		newsCache := repository.NewNewsCache(redisClient, cfg.CacheTTL)
		cache = newsCache
		pinger = newsCache
		slog.Info("news cache enabled", "ttl", cfg.CacheTTL.String())
	}

	clients := aggregator.ClientsFromConfig(cfg)
	sources := make([]string, 0, len(clients))
	for _, c := range clients {
		sources = append(sources, c.Name())
	}
	slog.Info("news sources configured", "sources", sources)

	agg := aggregator.New(clients, cache)

	allowedOrigins := append([]string{}, handler.DefaultAllowedOrigins...)
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	r := handler.NewRouter(handler.RouterConfig{
		News:           handler.NewNewsHandler(agg),
		Static:         handler.NewStaticHandler(),
		Health:         handler.NewHealthHandler(pinger),
		AllowedOrigins: allowedOrigins,
	})

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	go func() {
		slog.Info("server listening", "addr", "http://"+cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("error starting server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
}
