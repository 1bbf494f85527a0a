package eventsource

import (
	"sort"
	"sync"

	"github.com/kbukum/ssemock/errors"
)

// Factory creates event sources. Consumers take a Factory instead of
// constructing sources themselves so tests can hand them a Registry.
type Factory interface {
	NewEventSource(url string, opts ...Option) EventSource
}

// Registry maps a URL to the most recently created source for it.
// Entries are replaced by newer sources and are not removed on Close.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]*MockEventSource
}

// Default is the process-wide registry used by New when no registry is given.
var Default = NewRegistry()

// ensure Registry satisfies Factory.
var _ Factory = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sources: make(map[string]*MockEventSource),
	}
}

// New creates a source recorded in this registry.
func (r *Registry) New(url string, opts ...Option) *MockEventSource {
	opts = append(opts, WithRegistry(r))
	return New(url, opts...)
}

// NewEventSource implements Factory.
func (r *Registry) NewEventSource(url string, opts ...Option) EventSource {
	return r.New(url, opts...)
}

func (r *Registry) put(es *MockEventSource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[es.url] = es
}

// Lookup returns the source registered for url.
func (r *Registry) Lookup(url string) (*MockEventSource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	es, ok := r.sources[url]
	return es, ok
}

// Get returns the source registered for url, or a NOT_FOUND AppError.
func (r *Registry) Get(url string) (*MockEventSource, error) {
	es, ok := r.Lookup(url)
	if !ok {
		return nil, errors.NotFound("event source", url)
	}
	return es, nil
}

// URLs returns the registered URLs in sorted order.
func (r *Registry) URLs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	urls := make([]string, 0, len(r.sources))
	for url := range r.sources {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return urls
}

// Len returns the number of registered sources.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sources)
}

// Reset forgets every registered source without closing it.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources = make(map[string]*MockEventSource)
}

// CloseAll closes every registered source. The entries stay in place.
func (r *Registry) CloseAll() {
	for _, es := range r.all() {
		es.Close()
	}
}

func (r *Registry) all() []*MockEventSource {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*MockEventSource, 0, len(r.sources))
	for _, es := range r.sources {
		out = append(out, es)
	}
	return out
}

// entries returns a copy of the URL to source map.
func (r *Registry) entries() map[string]*MockEventSource {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*MockEventSource, len(r.sources))
	for url, es := range r.sources {
		out[url] = es
	}
	return out
}

// replace swaps in a copy of sources as the registry contents.
func (r *Registry) replace(sources map[string]*MockEventSource) {
	next := make(map[string]*MockEventSource, len(sources))
	for url, es := range sources {
		next[url] = es
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources = next
}
