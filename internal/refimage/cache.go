package refimage

import (
	"context"
	"sync"
)

// Cache remembers fetched bytes per seed so the on-screen preview and the
// scorer share one fetch. Failed fetches are not cached.
type Cache struct {
	next Provider
	max  int

	mu    sync.Mutex
	data  map[string][]byte
	order []string // insertion order for eviction
}

// NewCache wraps p, keeping at most max entries (64 when max <= 0).
func NewCache(p Provider, max int) *Cache {
	if max <= 0 {
		max = 64
	}
	return &Cache{next: p, max: max, data: make(map[string][]byte)}
}

// Fetch returns cached bytes for seed or fetches them from the wrapped provider.
func (c *Cache) Fetch(ctx context.Context, seed string) ([]byte, error) {
	c.mu.Lock()
	if b, ok := c.data[seed]; ok {
		c.mu.Unlock()
		return b, nil
	}
	c.mu.Unlock()

	b, err := c.next.Fetch(ctx, seed)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[seed]; !ok {
		if len(c.order) >= c.max {
			delete(c.data, c.order[0])
			c.order = c.order[1:]
		}
		c.order = append(c.order, seed)
	}
	c.data[seed] = b
	return b, nil
}

// Len returns the number of cached seeds.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}
