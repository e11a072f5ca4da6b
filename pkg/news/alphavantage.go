package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const alphaVantageEndpoint = "https://www.alphavantage.co/query"

type AlphaVantageClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewAlphaVantageClient(apiKey string, timeout time.Duration) *AlphaVantageClient {
	return &AlphaVantageClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *AlphaVantageClient) Name() string {
	return "AlphaVantage"
}

func (c *AlphaVantageClient) Search(ctx context.Context, query string) ([]Article, error) {
	params := url.Values{}
	params.Set("function", "NEWS_SENTIMENT")
	params.Set("tickers", "CRYPTO:"+strings.ToUpper(query))
	params.Set("sort", "LATEST")
	params.Set("limit", strconv.Itoa(maxArticlesPerSource))
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, alphaVantageEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("alphavantage request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw avResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}

	feed := raw.Feed
	if len(feed) > maxArticlesPerSource {
		feed = feed[:maxArticlesPerSource]
	}

	articles := make([]Article, 0, len(feed))
	for _, item := range feed {
		source := item.Source
		if source == "" {
			source = c.Name()
		}

		articles = append(articles, Article{
			Title:  item.Title,
			URL:    item.URL,
			Source: source,
			Date:   formatTimePublished(item.TimePublished),
		})
	}

	return articles, nil
}

// formatTimePublished converts Alpha Vantage's compact timestamp to RFC 3339.
// Values that do not parse are returned unchanged.
func formatTimePublished(value string) string {
	publishedAt, err := time.Parse("20060102T150405", value)
	if err != nil {
		return value
	}
	return publishedAt.Format(time.RFC3339)
}

type avResponse struct {
	Feed []avFeedItem `json:"feed"`
}

type avFeedItem struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Source        string `json:"source"`
	TimePublished string `json:"time_published"`
}
