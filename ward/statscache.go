package ward

import (
	"context"
	"encoding/json"
	"time"

	"github.com/allegro/bigcache/v3"
)

type (
	// StatsCache keeps dashboard stats warm for a short TTL so the four
	// count queries do not run once per dashboard refresh.
	StatsCache struct {
		cache *bigcache.BigCache
	}
)

const statsCacheKey = "dashboard-stats"

func NewStatsCache(ttl time.Duration) *StatsCache {
	cache, _ := bigcache.NewBigCache(bigcache.DefaultConfig(ttl))
	return &StatsCache{cache: cache}
}

func (s *StatsCache) Stats(ctx context.Context, reg *Registry) (Stats, error) {
	if buf, err := s.cache.Get(statsCacheKey); err == nil {
		var st Stats
		if json.Unmarshal(buf, &st) == nil {
			return st, nil
		}
	}
	st, err := reg.Stats(ctx)
	if err != nil {
		return Stats{}, err
	}
	if buf, err := json.Marshal(st); err == nil {
		s.cache.Set(statsCacheKey, buf)
	}
	return st, nil
}
