package testutil

import (
	"sync"

	"github.com/kbukum/ssemock/eventsource"
)

// Recorder is a Listener that keeps every event it receives.
type Recorder struct {
	mu     sync.Mutex
	events []*eventsource.MessageEvent
}

// ensure Recorder satisfies eventsource.Listener.
var _ eventsource.Listener = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// HandleEvent records ev.
func (r *Recorder) HandleEvent(ev *eventsource.MessageEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns the recorded events in arrival order.
func (r *Recorder) Events() []*eventsource.MessageEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*eventsource.MessageEvent(nil), r.events...)
}

// Count returns how many events were recorded.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Last returns the most recent event, or nil.
func (r *Recorder) Last() *eventsource.MessageEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}

// Reset forgets the recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// SlotRecorder captures calls to the onopen, onmessage and onerror slots.
type SlotRecorder struct {
	mu       sync.Mutex
	opens    int
	messages []*eventsource.MessageEvent
	errs     []error
}

// AttachSlots creates a SlotRecorder and installs it in all three slots of es.
func AttachSlots(es eventsource.EventSource) *SlotRecorder {
	s := &SlotRecorder{}
	es.SetOnOpen(s.onOpen)
	es.SetOnMessage(s.onMessage)
	es.SetOnError(s.onError)
	return s
}

func (s *SlotRecorder) onOpen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opens++
}

func (s *SlotRecorder) onMessage(ev *eventsource.MessageEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, ev)
}

func (s *SlotRecorder) onError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = append(s.errs, err)
}

// Opens returns how many times onopen ran.
func (s *SlotRecorder) Opens() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opens
}

// Messages returns the events passed to onmessage.
func (s *SlotRecorder) Messages() []*eventsource.MessageEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*eventsource.MessageEvent(nil), s.messages...)
}

// Errors returns the errors passed to onerror.
func (s *SlotRecorder) Errors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]error(nil), s.errs...)
}

// CallLog records which labelled listener ran, in order.
type CallLog struct {
	mu    sync.Mutex
	calls []string
}

// Listener returns a removable listener that appends label to the log.
func (l *CallLog) Listener(label string) eventsource.Listener {
	return eventsource.NewListener(func(*eventsource.MessageEvent) {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.calls = append(l.calls, label)
	})
}

// Calls returns the recorded labels.
func (l *CallLog) Calls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}
