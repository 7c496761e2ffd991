// Package promstats exports propcat resolver counters to Prometheus.
package promstats

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/loopcontext/propcat"
)

const defaultNamespace = "propcat"

// StatsSource is implemented by *propcat.DefaultMessageResolver.
type StatsSource interface {
	SnapshotStats() propcat.MessageResolverStats
}

// Collector reads a stats snapshot on every scrape.
type Collector struct {
	source StatsSource

	catalogLoads    *prometheus.Desc
	loadFailures    *prometheus.Desc
	localeFallbacks *prometheus.Desc
	missingMessages *prometheus.Desc
	droppedEvents   *prometheus.Desc
	lastLoad        *prometheus.Desc
}

// NewCollector builds a collector for source. An empty namespace defaults
// to "propcat".
func NewCollector(source StatsSource, namespace string) *Collector {
	if namespace == "" {
		namespace = defaultNamespace
	}
	desc := func(name string, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, labels, nil)
	}
	return &Collector{
		source:          source,
		catalogLoads:    desc("catalog_loads_total", "Successful catalog parses.", "path"),
		loadFailures:    desc("catalog_load_failures_total", "Failed catalog reads or parses.", "path"),
		localeFallbacks: desc("locale_fallbacks_total", "Messages found in a less specific catalog than requested.", "requested", "resolved"),
		missingMessages: desc("missing_messages_total", "Keys returned unchanged because no catalog had them.", "locale", "key"),
		droppedEvents:   desc("observer_dropped_events_total", "Observer events dropped because the queue was full.", "reason"),
		lastLoad:        desc("last_catalog_load_timestamp_seconds", "Unix time of the last successful catalog parse."),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.catalogLoads
	ch <- c.loadFailures
	ch <- c.localeFallbacks
	ch <- c.missingMessages
	ch <- c.droppedEvents
	ch <- c.lastLoad
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.SnapshotStats()
	for path, n := range stats.CatalogLoads {
		ch <- prometheus.MustNewConstMetric(c.catalogLoads, prometheus.CounterValue, float64(n), path)
	}
	for path, n := range stats.LoadFailures {
		ch <- prometheus.MustNewConstMetric(c.loadFailures, prometheus.CounterValue, float64(n), path)
	}
	for entry, n := range stats.LocaleFallbacks {
		requested, resolved := splitEntry(entry, "->")
		ch <- prometheus.MustNewConstMetric(c.localeFallbacks, prometheus.CounterValue, float64(n), requested, resolved)
	}
	for entry, n := range stats.MissingMessages {
		locale, key := splitEntry(entry, ":")
		ch <- prometheus.MustNewConstMetric(c.missingMessages, prometheus.CounterValue, float64(n), locale, key)
	}
	for reason, n := range stats.DroppedEvents {
		ch <- prometheus.MustNewConstMetric(c.droppedEvents, prometheus.CounterValue, float64(n), reason)
	}
	if !stats.LastLoadAt.IsZero() {
		ch <- prometheus.MustNewConstMetric(c.lastLoad, prometheus.GaugeValue, float64(stats.LastLoadAt.UnixNano())/1e9)
	}
}

// splitEntry splits a stats key at the first sep. Keys without sep, such as
// the overflow bucket, go to the second label.
func splitEntry(entry string, sep string) (string, string) {
	first, second, ok := strings.Cut(entry, sep)
	if !ok {
		return "", entry
	}
	return first, second
}
