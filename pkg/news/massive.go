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

const massiveEndpoint = "https://api.massive.com/v2/reference/news"

type MassiveClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewMassiveClient(apiKey string, timeout time.Duration) *MassiveClient {
	return &MassiveClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *MassiveClient) Name() string {
	return "Massive"
}

func (c *MassiveClient) Search(ctx context.Context, query string) ([]Article, error) {
	params := url.Values{}
	params.Set("ticker", "X:"+strings.ToUpper(query)+"USD")
	params.Set("limit", strconv.Itoa(maxArticlesPerSource))
	params.Set("order", "desc")
	params.Set("sort", "published_utc")
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, massiveEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("massive request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("massive fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw massiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("massive decode: %w", err)
	}

	results := raw.Results
	if len(results) > maxArticlesPerSource {
		results = results[:maxArticlesPerSource]
	}

	articles := make([]Article, 0, len(results))
	for _, item := range results {
		source := item.Publisher.Name
		if source == "" {
			source = c.Name()
		}

		articles = append(articles, Article{
			Title:  item.Title,
			URL:    item.ArticleURL,
			Source: source,
			Date:   item.PublishedUTC,
		})
	}

	return articles, nil
}

type massiveResponse struct {
	Results []massiveResult `json:"results"`
}

type massiveResult struct {
	Title        string           `json:"title"`
	ArticleURL   string           `json:"article_url"`
	PublishedUTC string           `json:"published_utc"`
	Publisher    massivePublisher `json:"publisher"`
}

type massivePublisher struct {
	Name string `json:"name"`
}
