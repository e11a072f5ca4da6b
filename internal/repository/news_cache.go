package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cryptonews/pkg/news"

	"github.com/redis/go-redis/v9"
)

const newsCacheKeyPrefix = "cryptonews:news:"

// NewsCache keeps merged search results in Redis for a fixed TTL.
type NewsCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewNewsCache(client *redis.Client, ttl time.Duration) *NewsCache {
	return &NewsCache{redis: client, ttl: ttl}
}

func newsCacheKey(query string) string {
	return newsCacheKeyPrefix + query
}

func (r *NewsCache) Get(ctx context.Context, query string) ([]news.Article, bool, error) {
	data, err := r.redis.Get(ctx, newsCacheKey(query)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var articles []news.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, false, err
	}

	if articles == nil {
		articles = []news.Article{}
	}

	return articles, true, nil
}

func (r *NewsCache) Set(ctx context.Context, query string, articles []news.Article) error {
	data, err := json.Marshal(articles)
	if err != nil {
		return err
	}
	return r.redis.Set(ctx, newsCacheKey(query), data, r.ttl).Err()
}

func (r *NewsCache) Ping(ctx context.Context) error {
	return r.redis.Ping(ctx).Err()
}
