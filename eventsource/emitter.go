package eventsource

import (
	"sort"
	"sync"
)

// topicKind separates the single-slot callbacks from named listeners so that
// AddEventListener("message", ...) and SetOnMessage never share an entry.
type topicKind uint8

const (
	kindNamed topicKind = iota
	kindSlot
)

type topic struct {
	kind topicKind
	name string
}

func namedTopic(name string) topic { return topic{kind: kindNamed, name: name} }
func slotTopic(name string) topic  { return topic{kind: kindSlot, name: name} }

// entry is one registration in the subscription table. Slot entries have a
// nil listener and are only ever replaced as a whole.
type entry struct {
	listener Listener
	call     func(payload any)
}

func listenerEntry(l Listener) entry {
	return entry{
		listener: l,
		call: func(payload any) {
			ev, _ := payload.(*MessageEvent)
			l.HandleEvent(ev)
		},
	}
}

// emitter is the subscription table behind a MockEventSource: topic to an
// ordered list of entries, insertion order, duplicates kept.
type emitter struct {
	mu     sync.RWMutex
	topics map[topic][]entry
}

func newEmitter() *emitter {
	return &emitter{topics: make(map[topic][]entry)}
}

// on appends e to the entries for t.
func (e *emitter) on(t topic, en entry) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.topics[t] = append(e.topics[t], en)
	return len(e.topics[t])
}

// off removes the first entry for t registered with l.
func (e *emitter) off(t topic, l Listener) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	entries := e.topics[t]
	for i, en := range entries {
		if !sameListener(en.listener, l) {
			continue
		}
		remaining := make([]entry, 0, len(entries)-1)
		remaining = append(remaining, entries[:i]...)
		remaining = append(remaining, entries[i+1:]...)
		if len(remaining) == 0 {
			delete(e.topics, t)
		} else {
			e.topics[t] = remaining
		}
		return true
	}
	return false
}

// set replaces every entry for t with en, or clears t when en is nil.
func (e *emitter) set(t topic, en *entry) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if en == nil {
		delete(e.topics, t)
		return
	}
	e.topics[t] = []entry{*en}
}

// emit calls every entry for t in order and returns how many were called.
// The entry list is copied first so callbacks may register or remove
// listeners; such changes apply from the next emit. The lock is not held
// while callbacks run and a panicking callback stops the dispatch.
func (e *emitter) emit(t topic, payload any) int {
	e.mu.RLock()
	entries := append([]entry(nil), e.topics[t]...)
	e.mu.RUnlock()

	for _, en := range entries {
		en.call(payload)
	}
	return len(entries)
}

func (e *emitter) count(t topic) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.topics[t])
}

// listeners returns the listeners registered for t, in order.
func (e *emitter) listeners(t topic) []Listener {
	e.mu.RLock()
	defer e.mu.RUnlock()

	entries := e.topics[t]
	out := make([]Listener, 0, len(entries))
	for _, en := range entries {
		out = append(out, en.listener)
	}
	return out
}

// names returns the sorted topic names of the given kind that have entries.
func (e *emitter) names(kind topicKind) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]string, 0, len(e.topics))
	for t := range e.topics {
		if t.kind == kind {
			out = append(out, t.name)
		}
	}
	sort.Strings(out)
	return out
}
