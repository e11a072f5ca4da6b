package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// DefaultAllowedOrigins covers the bundled front end on its default address.
var DefaultAllowedOrigins = []string{"http://127.0.0.1:8080", "http://localhost:8080"}

type RouterConfig struct {
	News           *NewsHandler
	Static         *StaticHandler
	Health         *HealthHandler
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = DefaultAllowedOrigins
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/news", cfg.News.GetNews)
	r.GET("/health", cfg.Health.GetHealth)

	r.GET("/", cfg.Static.GetIndex)
	r.GET("/style.css", cfg.Static.GetStyle)
	r.GET("/script.js", cfg.Static.GetScript)

	return r
}
