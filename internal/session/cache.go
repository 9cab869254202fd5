package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachedSession wraps a session with version metadata for cache invalidation
type cachedSession struct {
	Version  string
	Session  *Session
	CachedAt time.Time
}

// sessionCache keeps active sessions in an LRU with time-based expiration.
type sessionCache struct {
	lru *expirable.LRU[uuid.UUID, *cachedSession]
}

func newSessionCache(size int, ttl time.Duration) *sessionCache {
	return &sessionCache{
		lru: expirable.NewLRU[uuid.UUID, *cachedSession](size, nil, ttl),
	}
}

// Get returns the cached session. Entries with a stale version are dropped.
func (c *sessionCache) Get(id uuid.UUID) (*Session, bool) {
	entry, found := c.lru.Get(id)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		return nil, false
	}

	return entry.Session, true
}

func (c *sessionCache) Set(s *Session) {
	c.lru.Add(s.ID, &cachedSession{
		Version:  CacheSchemaVersion,
		Session:  s,
		CachedAt: time.Now(),
	})
}

func (c *sessionCache) Invalidate(id uuid.UUID) {
	c.lru.Remove(id)
}

func (c *sessionCache) Len() int {
	return c.lru.Len()
}
