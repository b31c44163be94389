// pkg/memcache/list_cache.go
package mem

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// ListStore caches short string lists (e.g. place names per city) for a
// fixed TTL. Keys are case-insensitive.
type ListStore interface {
	Set(key string, values []string)

	// Get returns the cached list if present and not expired.
	Get(key string) ([]string, bool)
}

type ListCache struct {
	c *cache.Cache
}

func NewListCache(ttl time.Duration) *ListCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ListCache{
		c: cache.New(ttl, 2*ttl),
	}
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func (s *ListCache) Set(key string, values []string) {
	// Copy so callers cannot mutate the cached slice.
	s.c.Set(normalizeKey(key), append([]string(nil), values...), cache.DefaultExpiration)
}

func (s *ListCache) Get(key string) ([]string, bool) {
	v, ok := s.c.Get(normalizeKey(key))
	if !ok {
		return nil, false
	}
	values := v.([]string)
	return append([]string(nil), values...), true
}
