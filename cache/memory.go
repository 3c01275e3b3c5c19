package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	variants map[string][]byte
	expires  time.Time
}

type MemoryCache struct {
	mu    sync.RWMutex
	pages map[string]*memoryEntry
	gens  map[string]int64
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		pages: map[string]*memoryEntry{},
		gens:  map[string]int64{},
		ttl:   ttl,
		now:   time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, path, variant string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.pages[path]
	if !ok || c.now().After(entry.expires) {
		return nil, false, nil
	}
	body, ok := entry.variants[variant]
	return body, ok, nil
}

func (c *MemoryCache) Generation(_ context.Context, path string) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.gens[path], nil
}

// Set stores body unless path was invalidated since gen was read.
func (c *MemoryCache) Set(_ context.Context, path, variant string, gen int64, body []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gens[path] != gen {
		return nil
	}

	entry, ok := c.pages[path]
	if !ok || c.now().After(entry.expires) {
		entry = &memoryEntry{variants: map[string][]byte{}}
		c.pages[path] = entry
	}
	entry.variants[variant] = append([]byte(nil), body...)
	entry.expires = c.now().Add(c.ttl)
	return nil
}

func (c *MemoryCache) Invalidate(_ context.Context, paths ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range paths {
		delete(c.pages, p)
		c.gens[p]++
	}
	return nil
}
