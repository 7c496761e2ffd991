package propcat

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

type catalogSnapshot struct {
	entries map[string]string
	modTime time.Time
	loaded  bool
}

var emptySnapshot = &catalogSnapshot{entries: map[string]string{}}

// Catalog holds the parsed contents of one catalog file. Its entries and
// modification time are swapped together, so readers see either the state
// before a reload or the state after it.
type Catalog struct {
	path     string
	snapshot atomic.Pointer[catalogSnapshot]
	// mu serializes loads; readers never take it.
	mu sync.Mutex
	// ready is closed once the creator's first load attempt finished.
	ready chan struct{}
}

func newCatalog(path string) *Catalog {
	c := &Catalog{path: path, ready: make(chan struct{})}
	c.snapshot.Store(emptySnapshot)
	return c
}

func (c *Catalog) Path() string {
	return c.path
}

// Get returns the value for key. Empty values count as absent.
func (c *Catalog) Get(key string) (string, bool) {
	value := c.snapshot.Load().entries[key]
	return value, value != ""
}

// ModTime is the source modification time of the loaded entries.
func (c *Catalog) ModTime() time.Time {
	return c.snapshot.Load().modTime
}

// Loaded reports whether any version of the source has been parsed.
func (c *Catalog) Loaded() bool {
	return c.snapshot.Load().loaded
}

func (c *Catalog) Len() int {
	return len(c.snapshot.Load().entries)
}

// Keys returns the keys in sorted order.
func (c *Catalog) Keys() []string {
	entries := c.snapshot.Load().entries
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func (c *Catalog) waitReady() {
	<-c.ready
}

// catalog returns the cached catalog for path, creating and loading it on
// first use. Absent files are not cached and yield nil.
func (r *DefaultMessageResolver) catalog(path string) *Catalog {
	if cached, ok := r.catalogs.Load(path); ok {
		c := cached.(*Catalog)
		c.waitReady()
		if r.cfg.Reloadable && r.provider.HasResource(path) {
			r.reload(c)
		}
		return c
	}

	if !r.provider.HasResource(path) {
		return nil
	}
	actual, loaded := r.catalogs.LoadOrStore(path, newCatalog(path))
	c := actual.(*Catalog)
	if loaded {
		// another caller created it first and owns the initial load
		c.waitReady()
	} else {
		defer close(c.ready)
	}
	r.reload(c)
	return c
}

// reload parses the source when it is newer than the loaded version, or when
// nothing has been loaded yet. Failures keep the previous entries.
func (r *DefaultMessageResolver) reload(c *Catalog) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resource, err := r.provider.Resource(c.path)
	if err != nil {
		r.onCatalogLoadFailed(newLoadError(c.path, err))
		return
	}
	current := c.snapshot.Load()
	modTime := resource.ModTime()
	if current.loaded && !modTime.After(current.modTime) {
		return
	}

	entries, err := r.parse(resource)
	if err != nil {
		r.onCatalogLoadFailed(newLoadError(c.path, err))
		return
	}
	c.snapshot.Store(&catalogSnapshot{entries: entries, modTime: modTime, loaded: true})
	r.onCatalogLoaded(c.path)
}

func (r *DefaultMessageResolver) parse(resource Resource) (map[string]string, error) {
	body, err := resource.Open()
	if err != nil {
		return nil, err
	}
	defer body.Close()

	entries, err := r.parser.Parse(body, r.encoding())
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = map[string]string{}
	}
	return entries, nil
}

func (r *DefaultMessageResolver) encoding() string {
	if r.cfg.MessageEncoding == "" {
		return DefaultEncoding
	}
	return r.cfg.MessageEncoding
}
