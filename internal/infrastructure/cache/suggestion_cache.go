package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/yatradesk/tourism-directory-backend/internal/logger"
)

const (
	suggestionKeyPrefix = "directory:suggestions:"
	suggestionTTL       = 5 * time.Minute
)

// SuggestionCache stores autocomplete results in Redis, keyed by normalized
// prefix. Every failure degrades to a cache miss; callers recompute.
type SuggestionCache struct {
	client *redis.Client
}

func NewSuggestionCache(client *redis.Client) *SuggestionCache {
	return &SuggestionCache{client: client}
}

func (c *SuggestionCache) Get(ctx context.Context, prefix string) ([]string, bool) {
	raw, err := c.client.Get(ctx, suggestionKeyPrefix+prefix).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.L().Warn("suggestion cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		logger.L().Warn("suggestion cache entry corrupt", zap.String("prefix", prefix), zap.Error(err))
		return nil, false
	}
	return values, true
}

func (c *SuggestionCache) Set(ctx context.Context, prefix string, values []string) {
	raw, err := json.Marshal(values)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, suggestionKeyPrefix+prefix, raw, suggestionTTL).Err(); err != nil {
		logger.L().Warn("suggestion cache write failed", zap.Error(err))
	}
}
