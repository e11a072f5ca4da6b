package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cryptonews/pkg/news"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeSearcher struct {
	articles  []news.Article
	lastQuery string
	calls     int
}

func (f *fakeSearcher) Search(ctx context.Context, query string) []news.Article {
	f.calls++
	f.lastQuery = query
	return f.articles
}

func newTestNewsRouter(searcher NewsSearcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewNewsHandler(searcher)
	r.GET("/news", h.GetNews)
	return r
}

func TestGetNews_ReturnsArticles(t *testing.T) {
	searcher := &fakeSearcher{
		articles: []news.Article{
			{Title: "Bitcoin rallies", URL: "https://example.com/1", Source: "coindesk", Date: "2026-10-18 08:00:00"},
			{Title: "Overview of BTC", URL: "https://bitcoin.org/", Source: "CoinMarketCap", Date: "2026-10-18T09:00:00Z"},
		},
	}

	r := newTestNewsRouter(searcher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news?query=BTC", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "BTC", searcher.lastQuery)

	var res []ArticleResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, len(res))
	assert.Equal(t, "Bitcoin rallies", res[0].Title)
	assert.Equal(t, "CoinMarketCap", res[1].Source)
	assert.Equal(t, "https://bitcoin.org/", res[1].URL)
}

func TestGetNews_WireFormat(t *testing.T) {
	searcher := &fakeSearcher{
		articles: []news.Article{{Title: "t", URL: "u", Source: "s", Date: "d"}},
	}

	r := newTestNewsRouter(searcher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news?query=eth", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, `[{"title":"t","url":"u","source":"s","date":"d"}]`, w.Body.String())
}

func TestGetNews_EmptyIsArray(t *testing.T) {
	searcher := &fakeSearcher{}
	r := newTestNewsRouter(searcher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news?query=NOTACOIN", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetNews_EmptyQueryIsAccepted(t *testing.T) {
	searcher := &fakeSearcher{}
	r := newTestNewsRouter(searcher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news?query=", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, searcher.calls)
	assert.Equal(t, "", searcher.lastQuery)
}

func TestGetNews_MissingQuery(t *testing.T) {
	searcher := &fakeSearcher{}
	r := newTestNewsRouter(searcher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, searcher.calls)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "query parameter is required", res["error"])
}
