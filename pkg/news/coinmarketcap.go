package news

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const coinMarketCapEndpoint = "https://pro-api.coinmarketcap.com/v1/cryptocurrency/info"

// CoinMarketCapSource labels the overview records, whose date is the time the
// response was handled.
const CoinMarketCapSource = "CoinMarketCap"

type CoinMarketCapClient struct {
	apiKey     string
	httpClient *http.Client
	now        func() time.Time
}

func NewCoinMarketCapClient(apiKey string, timeout time.Duration) *CoinMarketCapClient {
	return &CoinMarketCapClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

func (c *CoinMarketCapClient) Name() string {
	return CoinMarketCapSource
}

// Search looks the query up verbatim as a symbol and returns at most one
// overview record pointing at the project's website.
func (c *CoinMarketCapClient) Search(ctx context.Context, query string) ([]Article, error) {
	params := url.Values{}
	params.Set("symbol", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, coinMarketCapEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("coinmarketcap request: %w", err)
	}
	req.Header.Set("X-CMC_PRO_API_KEY", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coinmarketcap fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("unexpected upstream status", "source", c.Name(), "status", resp.StatusCode, "query", query)
	}

	var raw cmcResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		slog.Debug("undecodable upstream body", "source", c.Name(), "error", err)
		return []Article{}, nil
	}

	entry, ok := raw.Data[query]
	if !ok {
		return []Article{}, nil
	}

	var info cmcInfo
	if err := json.Unmarshal(entry, &info); err != nil {
		return []Article{}, nil
	}

	if len(info.URLs.Website) == 0 {
		return []Article{}, nil
	}

	website, ok := info.URLs.Website[0].(string)
	if !ok {
		return []Article{}, nil
	}

	return []Article{{
		Title:  "Overview of " + query,
		URL:    website,
		Source: c.Name(),
		Date:   c.now().UTC().Format(time.RFC3339),
	}}, nil
}

type cmcResponse struct {
	Data map[string]json.RawMessage `json:"data"`
}

type cmcInfo struct {
	URLs struct {
		Website []any `json:"website"`
	} `json:"urls"`
}
