package eventsource

import "reflect"

// Event type names with a fixed meaning on an event stream.
const (
	EventTypeOpen    = "open"
	EventTypeMessage = "message"
	EventTypeError   = "error"
)

// MessageEvent is the simulated event handed to listeners.
type MessageEvent struct {
	// Type is the event name the event was dispatched under.
	Type string
	// Data is the event payload.
	Data string
	// LastEventID is the id the server attached to the event, if any.
	LastEventID string
	// Origin is the origin of the stream that produced the event.
	Origin string
}

// NewMessageEvent creates an event of the given type carrying data.
func NewMessageEvent(eventType, data string) *MessageEvent {
	return &MessageEvent{Type: eventType, Data: data}
}

// Listener receives named events from a MockEventSource.
type Listener interface {
	HandleEvent(ev *MessageEvent)
}

// ListenerFunc adapts a plain function to Listener. Function values are not
// comparable, so a ListenerFunc can be added but never removed again; use
// NewListener when removal matters.
type ListenerFunc func(ev *MessageEvent)

// HandleEvent calls f(ev).
func (f ListenerFunc) HandleEvent(ev *MessageEvent) { f(ev) }

type funcListener struct {
	fn func(ev *MessageEvent)
}

func (l *funcListener) HandleEvent(ev *MessageEvent) { l.fn(ev) }

// NewListener wraps fn in a Listener with its own identity, so the returned
// value can later be passed to RemoveEventListener.
func NewListener(fn func(ev *MessageEvent)) Listener {
	return &funcListener{fn: fn}
}

// sameListener reports whether a and b are the same registration target.
// Listeners whose dynamic type is not comparable never match.
func sameListener(a, b Listener) bool {
	if a == nil || b == nil {
		return false
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
