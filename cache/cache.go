package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how long a rendered page survives without revalidation.
const DefaultTTL = time.Hour

// PageCache stores rendered pages. Each path holds any number of variants
// (typically the query string); invalidating a path drops all of them.
//
// Every path also carries a generation that Invalidate bumps. A render reads
// the generation before touching the store and passes it to Set; Set discards
// the page when the path was invalidated in between.
type PageCache interface {
	Get(ctx context.Context, path, variant string) ([]byte, bool, error)
	Generation(ctx context.Context, path string) (int64, error)
	Set(ctx context.Context, path, variant string, gen int64, body []byte) error
	Invalidate(ctx context.Context, paths ...string) error
}

// New returns a Redis-backed cache when redisURL is set, otherwise an
// in-process one. The second result closes the underlying client.
func New(ctx context.Context, redisURL string) (PageCache, func(), error) {
	if redisURL == "" {
		log.Println("REDIS_URL not set, using in-memory page cache")
		return NewMemoryCache(DefaultTTL), func() {}, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	log.Println("Redis page cache connected")
	return NewRedisCache(client, DefaultTTL), func() { _ = client.Close() }, nil
}
