package propcat

import "time"

// Config is set once before NewMessageResolver and not mutated afterwards.
type Config struct {
	// Provider supplies catalog files ("engine" option). Required whenever
	// MessageBasename is set.
	Provider ResourceProvider
	// Reloadable makes every lookup re-check the catalog file's modification
	// time. When false a catalog is loaded once and kept.
	Reloadable bool
	// MessageEncoding of catalog files, UTF-8 when empty.
	MessageEncoding string
	// MessageSuffix is the file extension, e.g. ".properties".
	MessageSuffix string
	// MessageBasename is the file name prefix, e.g. "messages". Lookups
	// return the key unchanged while it is empty.
	MessageBasename string
	MessageFormat   MessageFormat
	// Resolver provides the ambient "locale" variable.
	Resolver VariableResolver
	// Logger receives load failures; nil drops them.
	Logger Logger
	// Parser defaults to PropertiesParser.
	Parser PropertyParser
	// Observer is notified asynchronously of loads, failures, fallbacks and
	// missing messages.
	Observer       Observer
	ObserverBuffer int
	StatsMaxKeys   int
}

// MessageResolverStats is a snapshot of resolver counters.
type MessageResolverStats struct {
	// CatalogLoads counts successful parses per catalog path.
	CatalogLoads map[string]int
	// LoadFailures counts failed reads or parses per catalog path.
	LoadFailures map[string]int
	// LocaleFallbacks counts hits found in a less specific catalog,
	// keyed "requested->resolved" with "" standing for the base catalog.
	LocaleFallbacks map[string]int
	// MissingMessages counts keys returned unchanged, keyed "locale:key".
	MissingMessages map[string]int
	// DroppedEvents counts observer events that could not be queued.
	DroppedEvents map[string]int
	LastLoadAt    time.Time
}
