package news

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const newsDataEndpoint = "https://newsdata.io/api/1/news"

type NewsDataClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewNewsDataClient(apiKey string, timeout time.Duration) *NewsDataClient {
	return &NewsDataClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *NewsDataClient) Name() string {
	return "NewsData.io"
}

func (c *NewsDataClient) Search(ctx context.Context, query string) ([]Article, error) {
	term := strings.ToLower(ResolveCoinName(query))

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("q", term)
	params.Set("language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, newsDataEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("newsdata request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsdata fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("unexpected upstream status", "source", c.Name(), "status", resp.StatusCode, "query", query)
	}

	var raw newsDataResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		slog.Debug("undecodable upstream body", "source", c.Name(), "error", err)
		return []Article{}, nil
	}

	var results []json.RawMessage
	if err := json.Unmarshal(raw.Results, &results); err != nil {
		return []Article{}, nil
	}

	if len(results) > maxArticlesPerSource {
		results = results[:maxArticlesPerSource]
	}

	articles := make([]Article, 0, len(results))
	for _, entry := range results {
		// Entries that are not objects still yield a record of defaults.
		var item map[string]any
		if err := json.Unmarshal(entry, &item); err != nil {
			item = nil
		}

		articles = append(articles, Article{
			Title:  stringField(item, "title", ""),
			URL:    stringField(item, "link", ""),
			Source: stringField(item, "source_id", c.Name()),
			Date:   stringField(item, "pubDate", ""),
		})
	}

	return articles, nil
}

// stringField returns m[key] when it holds a string, def otherwise.
func stringField(m map[string]any, key, def string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return def
}

type newsDataResponse struct {
	Results json.RawMessage `json:"results"`
}
