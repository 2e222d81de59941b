package suggest

import (
	"sync"
	"time"

	"github.com/bastiangx/worddict/pkg/dictionary"
	"github.com/charmbracelet/log"
)

// Completer serializes access to one dictionary backend. Reads share the
// lock; Build, Add and Delete hold it exclusively and flush the prefix cache
// when they change anything.
type Completer struct {
	mu    sync.RWMutex
	dict  dictionary.Dictionary
	kind  Kind
	cache *PrefixCache
}

var _ ICompleter = (*Completer)(nil)

// NewCompleter creates a completer over an empty backend of the given kind.
func NewCompleter(kind Kind, cacheTTL time.Duration) (*Completer, error) {
	dict, err := New(kind)
	if err != nil {
		return nil, err
	}
	log.Debugf("Init completer: backend=[%s], cacheTTL=[%v]", kind, cacheTTL)
	return &Completer{
		dict:  dict,
		kind:  kind,
		cache: NewPrefixCache(cacheTTL),
	}, nil
}

// Kind returns the backend the completer wraps.
func (c *Completer) Kind() Kind {
	return c.kind
}

func (c *Completer) Build(entries []dictionary.WordFrequency) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	if err := c.dict.Build(entries); err != nil {
		return err
	}
	c.cache.Flush()
	log.Debugf("Built %s dictionary from %d entries in %v", c.kind, len(entries), time.Since(start))
	return nil
}

func (c *Completer) Search(word string) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dict.Search(word)
}

func (c *Completer) Add(wf dictionary.WordFrequency) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ok, err := c.dict.Add(wf)
	if ok {
		c.cache.Flush()
	}
	return ok, err
}

func (c *Completer) Delete(word string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ok, err := c.dict.Delete(word)
	if ok {
		c.cache.Flush()
	}
	return ok, err
}

// Complete returns the ranked suggestions for prefix, from the cache when a
// previous call already computed them.
func (c *Completer) Complete(prefix string) []dictionary.WordFrequency {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if cached, ok := c.cache.Get(prefix); ok {
		return cached
	}
	suggestions := c.dict.Autocomplete(prefix)
	// still under the read lock, so no mutation can flush in between
	c.cache.Set(prefix, suggestions)
	return suggestions
}

func (c *Completer) Stats() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := map[string]int{
		"totalWords": -1,
	}
	if sizer, ok := c.dict.(dictionary.Sizer); ok {
		stats["totalWords"] = sizer.Len()
	}
	for k, v := range c.cache.Stats() {
		stats[k] = v
	}
	return stats
}
