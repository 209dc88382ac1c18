package cache

import (
	"context"
	"sync"
	"time"

	"meditrack_pro/internal/usecase/interfaces"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemorySummaryCache is the single-instance fallback used when Redis is not
// configured. A zero ttl never expires.
type MemorySummaryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

var _ interfaces.ISummaryCache = (*MemorySummaryCache)(nil)

func NewMemorySummaryCache() *MemorySummaryCache {
	return &MemorySummaryCache{entries: make(map[string]memoryEntry), now: time.Now}
}

func (c *MemorySummaryCache) Get(ctx context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return "", false, nil
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return "", false, nil
	}
	return e.value, true, nil
}

func (c *MemorySummaryCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.entries[key] = e
	return nil
}
