package news

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnHubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnHubClient(apiKey string, timeout time.Duration) *FinnHubClient {
	return newFinnHubClient(apiKey, &http.Client{Timeout: timeout})
}

func newFinnHubClient(apiKey string, httpClient *http.Client) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	cfg.HTTPClient = httpClient
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{client: client}
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

// Search pulls the crypto market news feed and keeps the items that mention
// the query or its display name.
func (c *FinnHubClient) Search(ctx context.Context, query string) ([]Article, error) {
	res, _, err := c.client.MarketNews(ctx).Category("crypto").Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub fetch: %w", err)
	}

	terms := []string{strings.ToLower(query)}
	if name := strings.ToLower(ResolveCoinName(query)); name != terms[0] {
		terms = append(terms, name)
	}

	articles := []Article{}
	for _, item := range res {
		if len(articles) == maxArticlesPerSource {
			break
		}

		if !mentionsAny(terms, item.Headline, item.Summary, item.Related) {
			continue
		}

		a := Article{Source: c.Name()}

		if item.Headline != nil {
			a.Title = *item.Headline
		}

		if item.Url != nil {
			a.URL = *item.Url
		}

		if item.Source != nil && *item.Source != "" {
			a.Source = *item.Source
		}

		if item.Datetime != nil {
			a.Date = time.Unix(*item.Datetime, 0).UTC().Format(time.RFC3339)
		}

		articles = append(articles, a)
	}

	return articles, nil
}

func mentionsAny(terms []string, fields ...*string) bool {
	for _, f := range fields {
		if f == nil {
			continue
		}
		text := strings.ToLower(*f)
		for _, term := range terms {
			if term != "" && strings.Contains(text, term) {
				return true
			}
		}
	}
	return false
}
