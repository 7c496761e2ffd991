// Package test holds fixtures shared by the propcat test suites.
package test

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"sync"
	"sync/atomic"
	"time"

	"github.com/loopcontext/propcat"
)

// ErrOpenFailed is returned by MemoryProvider when FailOpen is set.
var ErrOpenFailed = errors.New("test: open failed")

type memoryFile struct {
	content []byte
	modTime time.Time
}

// MemoryProvider is an in-memory propcat.ResourceProvider with explicit
// modification times and call counters.
type MemoryProvider struct {
	mu       sync.RWMutex
	files    map[string]memoryFile
	failOpen map[string]bool

	hasCalls  atomic.Int64
	opens     atomic.Int64
	openDelay time.Duration
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		files:    map[string]memoryFile{},
		failOpen: map[string]bool{},
	}
}

// Put stores content under path with the given modification time.
func (p *MemoryProvider) Put(path string, content string, modTime time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.files[path] = memoryFile{content: []byte(content), modTime: modTime}
}

func (p *MemoryProvider) Remove(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.files, path)
}

// FailOpen makes Open on path fail until cleared.
func (p *MemoryProvider) FailOpen(path string, fail bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failOpen[path] = fail
}

// SlowOpen delays every Open, widening races in concurrency tests.
func (p *MemoryProvider) SlowOpen(delay time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.openDelay = delay
}

// Opens counts successful and failed Open calls, i.e. parse attempts.
func (p *MemoryProvider) Opens() int64 {
	return p.opens.Load()
}

// Calls counts HasResource calls.
func (p *MemoryProvider) Calls() int64 {
	return p.hasCalls.Load()
}

func (p *MemoryProvider) HasResource(path string) bool {
	p.hasCalls.Add(1)
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.files[path]
	return ok
}

func (p *MemoryProvider) Resource(path string) (propcat.Resource, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	file, ok := p.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return &memoryResource{provider: p, path: path, file: file}, nil
}

type memoryResource struct {
	provider *MemoryProvider
	path     string
	file     memoryFile
}

func (r *memoryResource) Name() string {
	return r.path
}

func (r *memoryResource) ModTime() time.Time {
	return r.file.modTime
}

func (r *memoryResource) Open() (io.ReadCloser, error) {
	r.provider.opens.Add(1)
	r.provider.mu.RLock()
	fail := r.provider.failOpen[r.path]
	delay := r.provider.openDelay
	r.provider.mu.RUnlock()
	if delay > 0 {
		time.Sleep(delay)
	}
	if fail {
		return nil, &fs.PathError{Op: "open", Path: r.path, Err: ErrOpenFailed}
	}
	return io.NopCloser(bytes.NewReader(r.file.content)), nil
}
