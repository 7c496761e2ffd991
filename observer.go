package propcat

//go:generate mockgen -source=$GOFILE -package mock_propcat -destination=test/mock/$GOFILE

// Observer receives resolver events on a background goroutine. Panics in
// callbacks are recovered; events are dropped when the queue is full.
type Observer interface {
	OnCatalogLoaded(path string)
	OnCatalogLoadFailed(path string, err error)
	OnLocaleFallback(requestedLocale string, resolvedLocale string)
	OnMessageMissing(locale string, key string)
}

type observerEventType int

const (
	observerEventCatalogLoaded observerEventType = iota
	observerEventCatalogLoadFailed
	observerEventLocaleFallback
	observerEventMessageMissing
)

type observerEvent struct {
	kind      observerEventType
	path      string
	err       error
	requested string
	resolved  string
	key       string
}

func safeObserverCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

func (r *DefaultMessageResolver) startObserverWorker() {
	if r.cfg.Observer == nil || r.observerCh != nil {
		return
	}
	r.observerCh = make(chan observerEvent, r.cfg.ObserverBuffer)
	r.observerDone = make(chan struct{})
	go func() {
		defer close(r.observerDone)
		for evt := range r.observerCh {
			switch evt.kind {
			case observerEventCatalogLoaded:
				safeObserverCall(func() {
					r.cfg.Observer.OnCatalogLoaded(evt.path)
				})
			case observerEventCatalogLoadFailed:
				safeObserverCall(func() {
					r.cfg.Observer.OnCatalogLoadFailed(evt.path, evt.err)
				})
			case observerEventLocaleFallback:
				safeObserverCall(func() {
					r.cfg.Observer.OnLocaleFallback(evt.requested, evt.resolved)
				})
			case observerEventMessageMissing:
				safeObserverCall(func() {
					r.cfg.Observer.OnMessageMissing(evt.requested, evt.key)
				})
			}
		}
	}()
}

func (r *DefaultMessageResolver) stopObserverWorker() {
	if r.observerCh == nil {
		return
	}
	close(r.observerCh)
	<-r.observerDone
	r.observerCh = nil
	r.observerDone = nil
}

func (r *DefaultMessageResolver) publishObserverEvent(evt observerEvent) {
	r.observerMu.RLock()
	defer r.observerMu.RUnlock()
	if r.cfg.Observer == nil || r.observerCh == nil {
		return
	}
	select {
	case r.observerCh <- evt:
	default:
		r.stats.incrementDroppedEvent("observer_queue_full")
	}
}

func (r *DefaultMessageResolver) onCatalogLoaded(path string) {
	r.stats.incrementCatalogLoad(path, r.now())
	r.publishObserverEvent(observerEvent{kind: observerEventCatalogLoaded, path: path})
}

func (r *DefaultMessageResolver) onCatalogLoadFailed(err *LoadError) {
	r.stats.incrementLoadFailure(err.Path)
	logLoadError(r.cfg.Logger, err)
	r.publishObserverEvent(observerEvent{kind: observerEventCatalogLoadFailed, path: err.Path, err: err})
}

func (r *DefaultMessageResolver) onLocaleFallback(requested string, resolved string) {
	r.stats.incrementLocaleFallback(requested, resolved)
	r.publishObserverEvent(observerEvent{kind: observerEventLocaleFallback, requested: requested, resolved: resolved})
}

func (r *DefaultMessageResolver) onMessageMissing(locale string, key string) {
	r.stats.incrementMissingMessage(locale, key)
	r.publishObserverEvent(observerEvent{kind: observerEventMessageMissing, requested: locale, key: key})
}
