package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryRevocationStore keeps revoked token ids in process memory. Entries
// expire lazily: an expired id is dropped when it is next looked up or when
// a later Revoke sweeps it.
type MemoryRevocationStore struct {
	entries map[string]time.Time
	mu      sync.RWMutex
	now     func() time.Time
}

// NewMemoryRevocationStore creates an empty in-memory store.
func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Revoke marks id as revoked for ttl.
func (c *MemoryRevocationStore) Revoke(_ context.Context, id string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, expiresAt := range c.entries {
		if now.After(expiresAt) {
			delete(c.entries, key)
		}
	}
	c.entries[id] = now.Add(ttl)
	return nil
}

// IsRevoked reports whether id was revoked and has not expired yet.
func (c *MemoryRevocationStore) IsRevoked(_ context.Context, id string) (bool, error) {
	c.mu.RLock()
	expiresAt, exists := c.entries[id]
	c.mu.RUnlock()
	if !exists {
		return false, nil
	}
	if c.now().After(expiresAt) {
		c.mu.Lock()
		delete(c.entries, id)
		c.mu.Unlock()
		return false, nil
	}
	return true, nil
}
