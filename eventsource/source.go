package eventsource

import (
	"sync"

	"github.com/google/uuid"

	"github.com/kbukum/ssemock/logger"
)

const componentName = "eventsource"

// EventSource is the client surface a consumer of push events depends on.
// MockEventSource implements it; production code can supply a real client.
type EventSource interface {
	URL() string
	WithCredentials() bool
	ReadyState() ReadyState
	AddEventListener(eventName string, listener Listener)
	RemoveEventListener(eventName string, listener Listener)
	SetOnOpen(fn func())
	SetOnMessage(fn func(ev *MessageEvent))
	SetOnError(fn func(err error))
	Close()
}

// MockEventSource is a test-drivable stand-in for a push-event client.
type MockEventSource struct {
	id              string
	url             string
	withCredentials bool

	mu         sync.RWMutex
	readyState ReadyState

	emitter *emitter
	log     *logger.Logger
}

// ensure MockEventSource satisfies EventSource.
var _ EventSource = (*MockEventSource)(nil)

// New creates a source for url in the CONNECTING state and records it in
// the registry chosen by the options (Default when none is given),
// replacing any earlier source with the same URL.
func New(url string, opts ...Option) *MockEventSource {
	o := options{registry: Default}
	for _, opt := range opts {
		opt(&o)
	}

	log := o.log
	if log == nil {
		log = logger.Get(componentName)
	}

	id := uuid.NewString()
	es := &MockEventSource{
		id:              id,
		url:             url,
		withCredentials: o.config.WithCredentials,
		readyState:      Connecting,
		emitter:         newEmitter(),
		log: log.WithFields(map[string]interface{}{
			"source_id": id,
			"url":       url,
		}),
	}

	if o.registry != nil {
		o.registry.put(es)
	}

	es.log.Debug("[EVENTSOURCE] Source created", map[string]interface{}{
		"with_credentials": es.withCredentials,
		"registered":       o.registry != nil,
	})
	return es
}

// ID returns the identifier assigned at construction.
func (es *MockEventSource) ID() string { return es.id }

// URL returns the endpoint the source was created for.
func (es *MockEventSource) URL() string { return es.url }

// WithCredentials reports whether the source was created credential-bearing.
func (es *MockEventSource) WithCredentials() bool { return es.withCredentials }

// ReadyState returns the current lifecycle phase.
func (es *MockEventSource) ReadyState() ReadyState {
	es.mu.RLock()
	defer es.mu.RUnlock()
	return es.readyState
}

// AddEventListener appends listener to the listeners of eventName.
// Adding the same listener twice makes it run twice per emission.
func (es *MockEventSource) AddEventListener(eventName string, listener Listener) {
	if listener == nil {
		return
	}
	n := es.emitter.on(namedTopic(eventName), listenerEntry(listener))
	es.log.Debug("[EVENTSOURCE] Listener added", map[string]interface{}{
		"event":     eventName,
		"listeners": n,
	})
}

// RemoveEventListener removes the first registration of listener under
// eventName. Unknown listeners are ignored.
func (es *MockEventSource) RemoveEventListener(eventName string, listener Listener) {
	if !es.emitter.off(namedTopic(eventName), listener) {
		return
	}
	es.log.Debug("[EVENTSOURCE] Listener removed", map[string]interface{}{
		"event":     eventName,
		"listeners": es.emitter.count(namedTopic(eventName)),
	})
}

// Listeners returns the listeners registered for eventName, in order.
func (es *MockEventSource) Listeners(eventName string) []Listener {
	return es.emitter.listeners(namedTopic(eventName))
}

// ListenerCount returns how many registrations eventName has.
func (es *MockEventSource) ListenerCount(eventName string) int {
	return es.emitter.count(namedTopic(eventName))
}

// EventNames returns the sorted names that have at least one listener.
func (es *MockEventSource) EventNames() []string {
	return es.emitter.names(kindNamed)
}

// SetOnOpen sets the onopen slot. nil clears it.
func (es *MockEventSource) SetOnOpen(fn func()) {
	if fn == nil {
		es.emitter.set(slotTopic(EventTypeOpen), nil)
		return
	}
	es.emitter.set(slotTopic(EventTypeOpen), &entry{call: func(any) { fn() }})
}

// SetOnMessage sets the onmessage slot. nil clears it.
func (es *MockEventSource) SetOnMessage(fn func(ev *MessageEvent)) {
	if fn == nil {
		es.emitter.set(slotTopic(EventTypeMessage), nil)
		return
	}
	es.emitter.set(slotTopic(EventTypeMessage), &entry{call: func(payload any) {
		ev, _ := payload.(*MessageEvent)
		fn(ev)
	}})
}

// SetOnError sets the onerror slot. nil clears it.
func (es *MockEventSource) SetOnError(fn func(err error)) {
	if fn == nil {
		es.emitter.set(slotTopic(EventTypeError), nil)
		return
	}
	es.emitter.set(slotTopic(EventTypeError), &entry{call: func(payload any) {
		err, _ := payload.(error)
		fn(err)
	}})
}

// HasOnOpen reports whether the onopen slot is set.
func (es *MockEventSource) HasOnOpen() bool { return es.emitter.count(slotTopic(EventTypeOpen)) > 0 }

// HasOnMessage reports whether the onmessage slot is set.
func (es *MockEventSource) HasOnMessage() bool {
	return es.emitter.count(slotTopic(EventTypeMessage)) > 0
}

// HasOnError reports whether the onerror slot is set.
func (es *MockEventSource) HasOnError() bool { return es.emitter.count(slotTopic(EventTypeError)) > 0 }

// Close moves the source to CLOSED. Listeners stay registered and the
// Emit methods keep dispatching, so teardown code can still be observed.
func (es *MockEventSource) Close() {
	es.mu.Lock()
	prev := es.readyState
	es.readyState = Closed
	es.mu.Unlock()

	if prev != Closed {
		es.log.Debug("[EVENTSOURCE] Source closed", map[string]interface{}{
			"previous_state": prev.String(),
		})
	}
}

// Emit calls every listener of eventName in registration order with ev.
// A panicking listener is not recovered: the panic reaches the caller and
// the remaining listeners are skipped.
func (es *MockEventSource) Emit(eventName string, ev *MessageEvent) {
	n := es.emitter.emit(namedTopic(eventName), ev)
	es.log.Debug("[EVENTSOURCE] Event emitted", map[string]interface{}{
		"event":     eventName,
		"listeners": n,
		"state":     es.ReadyState().String(),
	})
}

// EmitOpen moves the source to OPEN from any state, including CLOSED, and
// calls the onopen slot.
func (es *MockEventSource) EmitOpen() {
	es.mu.Lock()
	es.readyState = Open
	state := es.readyState
	es.mu.Unlock()

	n := es.emitter.emit(slotTopic(EventTypeOpen), nil)
	es.log.Debug("[EVENTSOURCE] Open emitted", map[string]interface{}{
		"handled": n > 0,
		"state":   state.String(),
	})
}

// EmitMessage calls the onmessage slot with msg. Named listeners, including
// ones registered for "message", are not involved.
func (es *MockEventSource) EmitMessage(msg *MessageEvent) {
	n := es.emitter.emit(slotTopic(EventTypeMessage), msg)
	es.log.Debug("[EVENTSOURCE] Message emitted", map[string]interface{}{
		"handled": n > 0,
	})
}

// EmitError calls the onerror slot with err unchanged. readyState is not
// affected.
func (es *MockEventSource) EmitError(err error) {
	n := es.emitter.emit(slotTopic(EventTypeError), err)
	fields := map[string]interface{}{
		"handled": n > 0,
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	es.log.Debug("[EVENTSOURCE] Error emitted", fields)
}
