package repo

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// SearchCache keeps recent image-search responses so repeated picker
// queries skip the upstream call.
type SearchCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSearchCache(rdb *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{rdb: rdb, ttl: ttl}
}

func cacheKey(query string) string { return "unsplash:search:" + query }

// Get returns the cached payload, or ok=false on a miss. Redis errors are
// treated as misses; the cache never fails a search.
func (c *SearchCache) Get(ctx context.Context, query string) ([]byte, bool) {
	b, err := c.rdb.Get(ctx, cacheKey(query)).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *SearchCache) Set(ctx context.Context, query string, payload []byte) {
	c.rdb.Set(ctx, cacheKey(query), payload, c.ttl)
}
