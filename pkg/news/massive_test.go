package news

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestMassiveSearch(t *testing.T) {
	var gotTicker string

	payload := map[string]interface{}{
		"results": []map[string]interface{}{
			{
				"id":            "576d99da",
				"title":         "Solana Network Upgrade Goes Live",
				"article_url":   "https://example.com/sol-upgrade",
				"published_utc": "2026-02-26T11:02:00Z",
				"publisher": map[string]interface{}{
					"name": "GlobeNewswire Inc.",
				},
			},
		},
		"status": "OK",
	}

	_, httpClient := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotTicker = r.URL.Query().Get("ticker")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	})

	client := &MassiveClient{apiKey: "test-key", httpClient: httpClient}

	articles, err := client.Search(context.Background(), "sol")

	assert.Equal(t, nil, err)
	assert.Equal(t, "X:SOLUSD", gotTicker)
	assert.Equal(t, 1, len(articles))

	a := articles[0]
	assert.Equal(t, "Solana Network Upgrade Goes Live", a.Title)
	assert.Equal(t, "https://example.com/sol-upgrade", a.URL)
	assert.Equal(t, "GlobeNewswire Inc.", a.Source)
	assert.Equal(t, "2026-02-26T11:02:00Z", a.Date)
}

func TestMassiveSearch_MissingPublisher(t *testing.T) {
	_, httpClient := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [{"title": "Market Update", "article_url": "https://example.com/market"}]}`))
	})

	client := &MassiveClient{apiKey: "test-key", httpClient: httpClient}

	articles, err := client.Search(context.Background(), "BTC")

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, "Massive", articles[0].Source)
}
