// Package propcat resolves message keys against locale-specific property
// catalogs (messages_en_US.properties, messages_en.properties,
// messages.properties), falling back from the most specific locale to the
// base catalog and returning the key itself when nothing matches.
package propcat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	optionEngine          = "engine"
	optionReloadable      = "reloadable"
	optionMessageEncoding = "message.encoding"
	optionMessageSuffix   = "message.suffix"
	optionMessageBasename = "message.basename"
	optionMessageFormat   = "message.format"
)

// MessageResolver maps message keys to localized strings. Lookups never
// fail: a key without a translation is returned unchanged.
type MessageResolver interface {
	// Message resolves key for the ambient locale.
	Message(key string, args ...any) string
	// MessageLocale resolves key for locale; a zero Locale means the
	// ambient locale.
	MessageLocale(key string, locale Locale, args ...any) string
	// MessageWithCtx resolves key for the locale stored with WithLocale,
	// or the ambient locale when ctx carries none.
	MessageWithCtx(ctx context.Context, key string, args ...any) string
}

// DefaultMessageResolver caches one Catalog per property file and reloads
// changed files when Config.Reloadable is set. It is safe for concurrent use.
type DefaultMessageResolver struct {
	cfg      Config
	provider ResourceProvider
	parser   PropertyParser
	// catalogs maps file path to *Catalog.
	catalogs sync.Map
	stats    *resolverStats
	now      func() time.Time

	observerMu   sync.RWMutex
	observerCh   chan observerEvent
	observerDone chan struct{}
}

// Message resolves key for the ambient locale of Config.Resolver.
func (r *DefaultMessageResolver) Message(key string, args ...any) string {
	if r.passthrough(key) {
		return key
	}
	suffix := ""
	if locale, ok := ambientLocale(r.cfg.Resolver); ok {
		suffix = "_" + locale
	}
	return r.resolve(key, suffix, args)
}

func (r *DefaultMessageResolver) MessageLocale(key string, locale Locale, args ...any) string {
	if r.passthrough(key) {
		return key
	}
	if locale.IsZero() {
		return r.Message(key, args...)
	}
	return r.resolve(key, localeSuffix(locale.String()), args)
}

func (r *DefaultMessageResolver) MessageWithCtx(ctx context.Context, key string, args ...any) string {
	if r.passthrough(key) {
		return key
	}
	if locale, ok := localeFromContext(ctx); ok {
		return r.resolve(key, "_"+locale, args)
	}
	return r.Message(key, args...)
}

func (r *DefaultMessageResolver) passthrough(key string) bool {
	return key == "" || r.cfg.MessageBasename == ""
}

// resolve looks key up along the chain of requested ("_en_US", or "" for
// the base catalog only) and formats the first non-empty value.
func (r *DefaultMessageResolver) resolve(key string, requested string, args []any) string {
	locale := suffixLocale(requested)
	value, resolved, found := r.findByLocale(requested, key)
	if !found {
		r.onMessageMissing(locale, key)
		return key
	}
	if resolved != requested {
		r.onLocaleFallback(locale, suffixLocale(resolved))
	}
	if len(args) == 0 {
		return value
	}
	return r.cfg.MessageFormat.Format(ParseLocale(locale), value, args...)
}

// findByLocale walks "_en_US" -> "_en" -> "" and stops at the first catalog
// holding a non-empty value for key.
func (r *DefaultMessageResolver) findByLocale(suffix string, key string) (string, string, bool) {
	for _, candidate := range suffixChain(suffix) {
		c := r.catalog(r.cfg.MessageBasename + candidate + r.cfg.MessageSuffix)
		if c == nil {
			continue
		}
		if value, ok := c.Get(key); ok {
			return value, candidate, true
		}
	}
	return "", "", false
}

// Catalog returns the catalog file for a locale string ("" for the base
// catalog), loading it if needed. It reports false when the file does not
// exist.
func (r *DefaultMessageResolver) Catalog(locale string) (*Catalog, bool) {
	if r.cfg.MessageBasename == "" {
		return nil, false
	}
	c := r.catalog(r.cfg.MessageBasename + localeSuffix(locale) + r.cfg.MessageSuffix)
	return c, c != nil
}

// Config returns the effective configuration, defaults applied.
func (r *DefaultMessageResolver) Config() Config {
	return r.cfg
}

// SnapshotStats returns a copy of the load, fallback and miss counters.
func (r *DefaultMessageResolver) SnapshotStats() MessageResolverStats {
	return r.stats.snapshot()
}

func (r *DefaultMessageResolver) ResetStats() {
	r.stats.reset()
}

// Close stops the observer worker after it drained queued events.
func (r *DefaultMessageResolver) Close() {
	r.observerMu.Lock()
	defer r.observerMu.Unlock()
	r.stopObserverWorker()
}

func SnapshotStats(resolver MessageResolver) (MessageResolverStats, error) {
	statsProvider, ok := resolver.(interface{ SnapshotStats() MessageResolverStats })
	if !ok {
		return MessageResolverStats{}, fmt.Errorf("resolver does not support stats snapshots")
	}
	return statsProvider.SnapshotStats(), nil
}

func ResetStats(resolver MessageResolver) error {
	statsProvider, ok := resolver.(interface{ ResetStats() })
	if !ok {
		return fmt.Errorf("resolver does not support stats reset")
	}
	statsProvider.ResetStats()
	return nil
}

func Close(resolver MessageResolver) error {
	closer, ok := resolver.(interface{ Close() })
	if !ok {
		return fmt.Errorf("resolver does not support close")
	}
	closer.Close()
	return nil
}

// NewMessageResolver validates cfg, applies defaults and starts the
// observer worker when an Observer is configured.
func NewMessageResolver(cfg Config) (*DefaultMessageResolver, error) {
	if !cfg.MessageFormat.valid() {
		return nil, newConfigError(optionMessageFormat, cfg.MessageFormat.String(), ErrUnsupportedFormat)
	}
	if cfg.MessageBasename != "" && cfg.Provider == nil {
		return nil, newConfigError(optionEngine, "", errors.New("a resource provider is required when message.basename is set"))
	}
	if cfg.Parser == nil {
		cfg.Parser = PropertiesParser{}
	}
	if cfg.ObserverBuffer <= 0 {
		cfg.ObserverBuffer = 1024
	}
	if cfg.StatsMaxKeys <= 0 {
		cfg.StatsMaxKeys = 512
	}

	r := &DefaultMessageResolver{
		cfg:      cfg,
		provider: cfg.Provider,
		parser:   cfg.Parser,
		stats:    newResolverStats(cfg.StatsMaxKeys),
		now:      time.Now,
	}
	r.startObserverWorker()
	return r, nil
}

// MustNewMessageResolver is NewMessageResolver for static setup code.
func MustNewMessageResolver(cfg Config) *DefaultMessageResolver {
	r, err := NewMessageResolver(cfg)
	if err != nil {
		panic(err)
	}
	return r
}
