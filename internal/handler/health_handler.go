package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	cache Pinger
}

// NewHealthHandler accepts a nil cache when caching is disabled.
func NewHealthHandler(cache Pinger) *HealthHandler {
	return &HealthHandler{cache: cache}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	if h.cache == nil {
		c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
		return
	}

	if err := h.cache.Ping(c.Request.Context()); err != nil {
		slog.Error("cache health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy", Cache: "disconnected"})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Cache: "connected"})
}
