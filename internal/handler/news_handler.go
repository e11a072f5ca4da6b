package handler

import (
	"context"
	"log/slog"
	"net/http"

	"cryptonews/pkg/news"

	"github.com/gin-gonic/gin"
)

type NewsSearcher interface {
	Search(ctx context.Context, query string) []news.Article
}

type NewsHandler struct {
	searcher NewsSearcher
}

func NewNewsHandler(searcher NewsSearcher) *NewsHandler {
	return &NewsHandler{searcher: searcher}
}

// GetNews always answers 200 with a JSON array once a query is present;
// upstream failures only shrink the array.
func (h *NewsHandler) GetNews(c *gin.Context) {
	query, ok := c.GetQuery("query")
	if !ok {
		slog.Warn("missing query parameter", "param", "query", "path", c.FullPath())
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}

	articles := h.searcher.Search(c.Request.Context(), query)

	slog.Info("news search served", "query", query, "count", len(articles))
	c.JSON(http.StatusOK, toArticleResponses(articles))
}
