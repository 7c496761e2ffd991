package propcat

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestResolverStatsOverflow(t *testing.T) {
	s := newResolverStats(3)
	for i := 0; i < 10; i++ {
		s.incrementMissingMessage("en", fmt.Sprintf("key.%d", i))
	}
	snapshot := s.snapshot()
	if len(snapshot.MissingMessages) != 3 {
		t.Fatalf("MissingMessages has %d keys, want 3: %v", len(snapshot.MissingMessages), snapshot.MissingMessages)
	}
	if snapshot.MissingMessages[overflowStatKey] != 8 {
		t.Errorf("overflow bucket = %d, want 8", snapshot.MissingMessages[overflowStatKey])
	}
	s.incrementMissingMessage("en", "key.0")
	if got := s.snapshot().MissingMessages["en:key.0"]; got != 2 {
		t.Errorf("existing key count = %d, want 2", got)
	}
}

func TestResolverStatsSnapshotIsCopy(t *testing.T) {
	s := newResolverStats(0)
	at := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	s.incrementCatalogLoad("messages.properties", at)
	s.incrementLocaleFallback("en_US", "en")

	snapshot := s.snapshot()
	snapshot.CatalogLoads["messages.properties"] = 99
	if got := s.snapshot().CatalogLoads["messages.properties"]; got != 1 {
		t.Errorf("snapshot mutation leaked: %d", got)
	}
	if !snapshot.LastLoadAt.Equal(at) {
		t.Errorf("LastLoadAt = %v", snapshot.LastLoadAt)
	}
	if snapshot.LocaleFallbacks["en_US->en"] != 1 {
		t.Errorf("LocaleFallbacks = %v", snapshot.LocaleFallbacks)
	}

	s.reset()
	if after := s.snapshot(); len(after.CatalogLoads) != 0 || !after.LastLoadAt.IsZero() {
		t.Errorf("reset left %+v", after)
	}
}

func TestSanitizeStatKey(t *testing.T) {
	if got := sanitizeStatKey("  "); got != "unknown" {
		t.Errorf("sanitizeStatKey(blank) = %q", got)
	}
	long := fmt.Sprintf("%0200d", 0)
	if got := sanitizeStatKey(long); len(got) != 120 {
		t.Errorf("sanitizeStatKey(long) has length %d", len(got))
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []string
}

func (o *recordingObserver) record(event string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) OnCatalogLoaded(path string) { o.record("loaded:" + path) }
func (o *recordingObserver) OnCatalogLoadFailed(path string, err error) {
	o.record("failed:" + path)
}
func (o *recordingObserver) OnLocaleFallback(requested string, resolved string) {
	o.record("fallback:" + requested + "->" + resolved)
}
func (o *recordingObserver) OnMessageMissing(locale string, key string) {
	o.record("missing:" + locale + ":" + key)
	panic("observer panics are recovered")
}

func TestObserverReceivesEvents(t *testing.T) {
	provider := newStubProvider()
	provider.put("messages.properties", "base=Base", time.Unix(1, 0))
	provider.put("messages_en.properties", "en=English", time.Unix(1, 0))
	obs := &recordingObserver{}
	r, err := NewMessageResolver(Config{
		Provider:        provider,
		MessageBasename: "messages",
		MessageSuffix:   ".properties",
		Observer:        obs,
	})
	if err != nil {
		t.Fatal(err)
	}

	r.MessageLocale("base", ParseLocale("en_US"))
	r.MessageLocale("nope", ParseLocale("en"))
	r.MessageLocale("again", ParseLocale("en"))
	r.Close()

	want := []string{
		"loaded:messages_en.properties",
		"loaded:messages.properties",
		"fallback:en_US->",
		"missing:en:nope",
		"missing:en:again",
	}
	obs.mu.Lock()
	defer obs.mu.Unlock()
	if fmt.Sprint(obs.events) != fmt.Sprint(want) {
		t.Errorf("events = %v, want %v", obs.events, want)
	}

	// publishing after Close is a no-op
	r.onMessageMissing("en", "late")
}
