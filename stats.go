package propcat

import (
	"fmt"
	"maps"
	"strings"
	"sync"
	"time"
)

const overflowStatKey = "__overflow__"

type resolverStats struct {
	mu              sync.Mutex
	catalogLoads    map[string]int
	loadFailures    map[string]int
	localeFallbacks map[string]int
	missingMessages map[string]int
	droppedEvents   map[string]int
	maxKeys         int
	lastLoadAt      time.Time
}

func newResolverStats(maxKeys int) *resolverStats {
	s := &resolverStats{maxKeys: maxKeys}
	s.reset()
	return s
}

func sanitizeStatKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return "unknown"
	}
	if len(key) > 120 {
		return key[:120]
	}
	return key
}

// increment bumps target[key]; once maxKeys distinct keys exist new keys
// are folded into the overflow bucket.
func (s *resolverStats) increment(target map[string]int, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key = sanitizeStatKey(key)
	if s.maxKeys > 0 {
		if _, exists := target[key]; !exists {
			if _, hasOverflow := target[overflowStatKey]; hasOverflow {
				if len(target) >= s.maxKeys {
					key = overflowStatKey
				}
			} else if len(target) >= s.maxKeys-1 {
				key = overflowStatKey
			}
		}
	}
	target[key]++
}

func (s *resolverStats) incrementCatalogLoad(path string, at time.Time) {
	s.increment(s.catalogLoads, path)
	s.mu.Lock()
	s.lastLoadAt = at
	s.mu.Unlock()
}

func (s *resolverStats) incrementLoadFailure(path string) {
	s.increment(s.loadFailures, path)
}

func (s *resolverStats) incrementLocaleFallback(requested string, resolved string) {
	s.increment(s.localeFallbacks, fmt.Sprintf("%s->%s", requested, resolved))
}

func (s *resolverStats) incrementMissingMessage(locale string, key string) {
	s.increment(s.missingMessages, fmt.Sprintf("%s:%s", locale, key))
}

func (s *resolverStats) incrementDroppedEvent(reason string) {
	s.increment(s.droppedEvents, reason)
}

func (s *resolverStats) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogLoads = map[string]int{}
	s.loadFailures = map[string]int{}
	s.localeFallbacks = map[string]int{}
	s.missingMessages = map[string]int{}
	s.droppedEvents = map[string]int{}
	s.lastLoadAt = time.Time{}
}

func (s *resolverStats) snapshot() MessageResolverStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return MessageResolverStats{
		CatalogLoads:    maps.Clone(s.catalogLoads),
		LoadFailures:    maps.Clone(s.loadFailures),
		LocaleFallbacks: maps.Clone(s.localeFallbacks),
		MissingMessages: maps.Clone(s.missingMessages),
		DroppedEvents:   maps.Clone(s.droppedEvents),
		LastLoadAt:      s.lastLoadAt,
	}
}
