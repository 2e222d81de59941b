package suggest

import (
	"sync/atomic"
	"time"

	"github.com/bastiangx/worddict/pkg/dictionary"
	"github.com/charmbracelet/log"
	"github.com/patrickmn/go-cache"
)

// PrefixCache keeps recent autocomplete results keyed by prefix.
// A ttl <= 0 disables caching.
type PrefixCache struct {
	items   *cache.Cache
	enabled bool
	hits    atomic.Int64
	misses  atomic.Int64
}

func NewPrefixCache(ttl time.Duration) *PrefixCache {
	if ttl <= 0 {
		return &PrefixCache{}
	}
	return &PrefixCache{
		items:   cache.New(ttl, 2*ttl),
		enabled: true,
	}
}

// Get returns a copy of the cached suggestions for prefix.
func (pc *PrefixCache) Get(prefix string) ([]dictionary.WordFrequency, bool) {
	if !pc.enabled {
		return nil, false
	}
	v, ok := pc.items.Get(prefix)
	if !ok {
		pc.misses.Add(1)
		return nil, false
	}
	pc.hits.Add(1)
	return clone(v.([]dictionary.WordFrequency)), true
}

func (pc *PrefixCache) Set(prefix string, suggestions []dictionary.WordFrequency) {
	if !pc.enabled {
		return
	}
	pc.items.Set(prefix, clone(suggestions), cache.DefaultExpiration)
}

// Flush drops every cached prefix.
func (pc *PrefixCache) Flush() {
	if !pc.enabled {
		return
	}
	n := pc.items.ItemCount()
	pc.items.Flush()
	if n > 0 {
		log.Debugf("Flushed %d cached prefixes", n)
	}
}

func (pc *PrefixCache) Stats() map[string]int {
	count := 0
	if pc.enabled {
		count = pc.items.ItemCount()
	}
	return map[string]int{
		"cachedPrefixes": count,
		"cacheHits":      int(pc.hits.Load()),
		"cacheMisses":    int(pc.misses.Load()),
	}
}

func clone(s []dictionary.WordFrequency) []dictionary.WordFrequency {
	out := make([]dictionary.WordFrequency, len(s))
	copy(out, s)
	return out
}
