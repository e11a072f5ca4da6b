// Package aggregator fans a search out to every configured news source and
// merges whatever comes back.
package aggregator

import (
	"context"
	"log/slog"
	"time"

	"cryptonews/pkg/news"

	"golang.org/x/sync/errgroup"
)

// Cache stores merged results per query. Implementations must treat a miss
// as (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, query string) ([]news.Article, bool, error)
	Set(ctx context.Context, query string, articles []news.Article) error
}

type Aggregator struct {
	clients []news.NewsClient
	cache   Cache
	now     func() time.Time
}

// New returns an aggregator over clients, merged in the given order. cache
// may be nil.
func New(clients []news.NewsClient, cache Cache) *Aggregator {
	return &Aggregator{clients: clients, cache: cache, now: time.Now}
}

// Search queries every client concurrently and waits for all of them. Failed
// clients are logged and contribute nothing. The result is never nil.
func (a *Aggregator) Search(ctx context.Context, query string) []news.Article {
	if a.cache != nil {
		cached, found, err := a.cache.Get(ctx, query)
		if err != nil {
			slog.Warn("error reading news cache", "query", query, "error", err)
		} else if found {
			slog.Debug("news cache hit", "query", query, "count", len(cached))
			return a.restampOverviews(cached)
		}
	}

	results := make([][]news.Article, len(a.clients))
	failed := make([]bool, len(a.clients))

	// Goroutines always return nil; a failed source must not stop the others.
	var g errgroup.Group
	for i, client := range a.clients {
		g.Go(func() error {
			articles, err := client.Search(ctx, query)
			if err != nil {
				slog.Error("error fetching news", "source", client.Name(), "query", query, "error", err)
				failed[i] = true
				return nil
			}
			results[i] = articles
			return nil
		})
	}
	g.Wait()

	combined := []news.Article{}
	complete := true
	for i, articles := range results {
		if failed[i] {
			complete = false
			continue
		}
		combined = append(combined, articles...)
	}

	if a.cache != nil && complete {
		if err := a.cache.Set(ctx, query, combined); err != nil {
			slog.Warn("error writing news cache", "query", query, "error", err)
		}
	}

	return combined
}

// restampOverviews gives cached CoinMarketCap overview records the current
// time, as a fresh lookup would.
func (a *Aggregator) restampOverviews(articles []news.Article) []news.Article {
	date := a.now().UTC().Format(time.RFC3339)
	for i := range articles {
		if articles[i].Source == news.CoinMarketCapSource {
			articles[i].Date = date
		}
	}
	return articles
}
