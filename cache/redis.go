package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pageKeyPrefix = "page:"     // hash per path: page:{path} -> {variant: html}
	genKeyPrefix  = "page-gen:" // counter per path, bumped by Invalidate
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, path, variant string) ([]byte, bool, error) {
	body, err := c.client.HGet(ctx, pageKey(path), variant).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached page: %w", err)
	}
	return body, true, nil
}

func (c *RedisCache) Generation(ctx context.Context, path string) (int64, error) {
	gen, err := c.client.Get(ctx, genKey(path)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read page generation: %w", err)
	}
	return gen, nil
}

// Set stores body unless path was invalidated since gen was read. The
// generation key is watched, so an Invalidate racing the write aborts it.
func (c *RedisCache) Set(ctx context.Context, path, variant string, gen int64, body []byte) error {
	key := pageKey(path)

	err := c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey(path)).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != gen {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, variant, body)
			pipe.Expire(ctx, key, c.ttl)
			return nil
		})
		return err
	}, genKey(path))

	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to cache page: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	pipe := c.client.TxPipeline()
	for _, p := range paths {
		pipe.Del(ctx, pageKey(p))
		pipe.Incr(ctx, genKey(p))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to invalidate pages: %w", err)
	}
	return nil
}

func pageKey(path string) string {
	return pageKeyPrefix + path
}

func genKey(path string) string {
	return genKeyPrefix + path
}
