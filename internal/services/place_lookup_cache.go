package services

import (
	"context"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// --------- In-memory cache per lookup query ---------

// CachedPlaceLookup remembers non-empty answers per normalised query so the
// same landmark is not looked up again within TTL. Errors and empty results
// are never cached.
type CachedPlaceLookup struct {
	next  PlaceLookup
	cache *cache.Cache
	ttl   time.Duration
}

func NewCachedPlaceLookup(next PlaceLookup, ttl time.Duration) *CachedPlaceLookup {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &CachedPlaceLookup{
		next:  next,
		cache: cache.New(ttl, time.Hour),
		ttl:   ttl,
	}
}

func queryKey(query string) string {
	return strings.ToLower(strings.Join(strings.Fields(query), " "))
}

func (c *CachedPlaceLookup) Search(ctx context.Context, query string) ([]PlaceCandidate, error) {
	k := queryKey(query)
	if v, ok := c.cache.Get(k); ok {
		return append([]PlaceCandidate(nil), v.([]PlaceCandidate)...), nil
	}

	candidates, err := c.next.Search(ctx, query)
	if err != nil || len(candidates) == 0 {
		return candidates, err
	}
	c.cache.Set(k, append([]PlaceCandidate(nil), candidates...), c.ttl)
	return candidates, nil
}
