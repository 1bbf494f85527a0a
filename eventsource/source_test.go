package eventsource_test

import (
	stderrors "errors"
	"testing"

	"github.com/kbukum/ssemock/eventsource"
	"github.com/kbukum/ssemock/testutil"
)

const testURL = "https://example.com/events"

func newSource(t *testing.T, opts ...eventsource.Option) *eventsource.MockEventSource {
	t.Helper()
	opts = append(opts, eventsource.WithRegistry(eventsource.NewRegistry()))
	return eventsource.New(testURL, opts...)
}

func TestNewDefaults(t *testing.T) {
	es := newSource(t)

	if es.URL() != testURL {
		t.Errorf("expected url %q, got %q", testURL, es.URL())
	}
	if es.WithCredentials() {
		t.Error("expected withCredentials to default to false")
	}
	if es.ReadyState() != eventsource.Connecting {
		t.Errorf("expected CONNECTING, got %s", es.ReadyState())
	}
	if es.ID() == "" {
		t.Error("expected a non-empty id")
	}
	if es.HasOnOpen() || es.HasOnMessage() || es.HasOnError() {
		t.Error("expected all slots unset")
	}
	if names := es.EventNames(); len(names) != 0 {
		t.Errorf("expected no listeners, got %v", names)
	}
}

func TestNewWithCredentials(t *testing.T) {
	tests := []struct {
		name string
		opts []eventsource.Option
		want bool
	}{
		{"config object", []eventsource.Option{eventsource.WithConfig(eventsource.Config{WithCredentials: true})}, true},
		{"option", []eventsource.Option{eventsource.WithCredentials(true)}, true},
		{"later option wins", []eventsource.Option{eventsource.WithCredentials(true), eventsource.WithConfig(eventsource.Config{})}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			es := newSource(t, tt.opts...)
			if es.WithCredentials() != tt.want {
				t.Errorf("expected withCredentials=%v, got %v", tt.want, es.WithCredentials())
			}
		})
	}
}

func TestNewIDsAreUnique(t *testing.T) {
	a := newSource(t)
	b := newSource(t)
	if a.ID() == b.ID() {
		t.Errorf("expected distinct ids, both %q", a.ID())
	}
}

func TestEmitCallsListenersInOrder(t *testing.T) {
	es := newSource(t)
	log := &testutil.CallLog{}
	a := log.Listener("a")
	b := log.Listener("b")

	es.AddEventListener("foo", a)
	es.AddEventListener("foo", b)
	es.AddEventListener("foo", a)
	es.AddEventListener("other", log.Listener("other"))

	if n := es.ListenerCount("foo"); n != 3 {
		t.Fatalf("expected 3 registrations, got %d", n)
	}

	es.Emit("foo", eventsource.NewMessageEvent("foo", "x"))

	calls := log.Calls()
	want := []string{"a", "b", "a"}
	if len(calls) != len(want) {
		t.Fatalf("expected %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d: expected %q, got %q", i, want[i], calls[i])
		}
	}
}

func TestEmitPassesEventUnchanged(t *testing.T) {
	es := newSource(t)
	rec := testutil.NewRecorder()
	es.AddEventListener("EVENT_NAME", rec)

	ev := &eventsource.MessageEvent{Type: "custom", Data: "message event data", LastEventID: "42"}
	es.Emit("EVENT_NAME", ev)

	if rec.Count() != 1 {
		t.Fatalf("expected 1 event, got %d", rec.Count())
	}
	if rec.Last() != ev {
		t.Error("expected the same event pointer to be delivered")
	}
}

func TestEmitUnknownEventIsNoop(t *testing.T) {
	es := newSource(t)
	es.Emit("nobody", eventsource.NewMessageEvent("nobody", ""))
	es.Emit("nobody", nil)
}

func TestEmitDoesNotChangeReadyState(t *testing.T) {
	es := newSource(t)
	es.AddEventListener("foo", testutil.NewRecorder())
	es.Emit("foo", nil)
	if es.ReadyState() != eventsource.Connecting {
		t.Errorf("expected CONNECTING after emit, got %s", es.ReadyState())
	}
}

func TestRemoveEventListener(t *testing.T) {
	es := newSource(t)
	log := &testutil.CallLog{}
	a := log.Listener("a")
	b := log.Listener("b")
	es.AddEventListener("foo", a)
	es.AddEventListener("foo", b)
	es.AddEventListener("foo", a)

	es.RemoveEventListener("foo", a)
	es.Emit("foo", nil)

	calls := log.Calls()
	if len(calls) != 2 || calls[0] != "b" || calls[1] != "a" {
		t.Errorf("expected only the first registration removed, got %v", calls)
	}

	es.RemoveEventListener("foo", a)
	es.RemoveEventListener("foo", b)
	if n := es.ListenerCount("foo"); n != 0 {
		t.Errorf("expected no listeners left, got %d", n)
	}
}

func TestRemoveUnknownListenerIsNoop(t *testing.T) {
	es := newSource(t)
	rec := testutil.NewRecorder()
	es.AddEventListener("foo", rec)

	es.RemoveEventListener("foo", testutil.NewRecorder())
	es.RemoveEventListener("bar", rec)
	es.RemoveEventListener("foo", nil)

	if n := es.ListenerCount("foo"); n != 1 {
		t.Errorf("expected listener kept, got %d", n)
	}
}

func TestListenerFuncCannotBeRemoved(t *testing.T) {
	es := newSource(t)
	calls := 0
	fn := eventsource.ListenerFunc(func(*eventsource.MessageEvent) { calls++ })
	es.AddEventListener("foo", fn)
	es.RemoveEventListener("foo", fn)

	es.Emit("foo", nil)
	if calls != 1 {
		t.Errorf("expected ListenerFunc to stay registered, got %d calls", calls)
	}
}

func TestAddNilListenerIsIgnored(t *testing.T) {
	es := newSource(t)
	es.AddEventListener("foo", nil)
	if n := es.ListenerCount("foo"); n != 0 {
		t.Errorf("expected nil listener ignored, got %d", n)
	}
}

func TestListenersAndEventNames(t *testing.T) {
	es := newSource(t)
	a := testutil.NewRecorder()
	b := testutil.NewRecorder()
	es.AddEventListener("zeta", a)
	es.AddEventListener("alpha", b)
	es.AddEventListener("alpha", a)

	names := es.EventNames()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("expected [alpha zeta], got %v", names)
	}

	ls := es.Listeners("alpha")
	if len(ls) != 2 || ls[0] != eventsource.Listener(b) || ls[1] != eventsource.Listener(a) {
		t.Errorf("unexpected listeners %v", ls)
	}
}

func TestPanicPropagatesAndStopsDispatch(t *testing.T) {
	es := newSource(t)
	after := testutil.NewRecorder()
	es.AddEventListener("foo", eventsource.ListenerFunc(func(*eventsource.MessageEvent) {
		panic("listener failed")
	}))
	es.AddEventListener("foo", after)

	func() {
		defer func() {
			if r := recover(); r != "listener failed" {
				t.Errorf("expected panic to reach the caller, got %v", r)
			}
		}()
		es.Emit("foo", nil)
	}()

	if after.Count() != 0 {
		t.Error("expected listeners after the panicking one to be skipped")
	}
}

func TestEmitOpen(t *testing.T) {
	es := newSource(t)
	slots := testutil.AttachSlots(es)

	var seen eventsource.ReadyState
	es.SetOnOpen(func() { seen = es.ReadyState() })
	es.EmitOpen()

	if es.ReadyState() != eventsource.Open {
		t.Errorf("expected OPEN, got %s", es.ReadyState())
	}
	if seen != eventsource.Open {
		t.Errorf("expected onopen to observe OPEN, got %s", seen)
	}
	if slots.Opens() != 0 {
		t.Error("expected the replaced onopen slot not to run")
	}
}

func TestEmitOpenWithoutSlot(t *testing.T) {
	es := newSource(t)
	es.EmitOpen()
	if es.ReadyState() != eventsource.Open {
		t.Errorf("expected OPEN, got %s", es.ReadyState())
	}
}

func TestEmitOpenAfterClose(t *testing.T) {
	es := newSource(t)
	slots := testutil.AttachSlots(es)
	es.Close()
	es.EmitOpen()

	if es.ReadyState() != eventsource.Open {
		t.Errorf("expected EmitOpen to reopen a closed source, got %s", es.ReadyState())
	}
	if slots.Opens() != 1 {
		t.Errorf("expected onopen to still run, got %d", slots.Opens())
	}
}

func TestEmitMessage(t *testing.T) {
	es := newSource(t)
	slots := testutil.AttachSlots(es)
	named := testutil.NewRecorder()
	es.AddEventListener(eventsource.EventTypeMessage, named)

	msg := eventsource.NewMessageEvent(eventsource.EventTypeMessage, "hello")
	es.EmitMessage(msg)

	msgs := slots.Messages()
	if len(msgs) != 1 || msgs[0] != msg {
		t.Errorf("expected onmessage to receive the message, got %v", msgs)
	}
	if named.Count() != 0 {
		t.Error("expected named \"message\" listeners not to run on EmitMessage")
	}

	es.Emit(eventsource.EventTypeMessage, msg)
	if named.Count() != 1 || len(slots.Messages()) != 1 {
		t.Error("expected Emit(\"message\") to reach only named listeners")
	}
}

func TestEmitError(t *testing.T) {
	es := newSource(t)
	slots := testutil.AttachSlots(es)
	es.EmitOpen()

	want := stderrors.New("upstream went away")
	es.EmitError(want)
	es.EmitError(nil)

	errs := slots.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
	if errs[0] != want {
		t.Errorf("expected the error delivered verbatim, got %v", errs[0])
	}
	if errs[1] != nil {
		t.Errorf("expected nil error delivered as nil, got %v", errs[1])
	}
	if es.ReadyState() != eventsource.Open {
		t.Errorf("expected EmitError to leave OPEN, got %s", es.ReadyState())
	}
}

func TestUnsetSlotsAreNoops(t *testing.T) {
	es := newSource(t)
	slots := testutil.AttachSlots(es)
	es.SetOnOpen(nil)
	es.SetOnMessage(nil)
	es.SetOnError(nil)

	if es.HasOnOpen() || es.HasOnMessage() || es.HasOnError() {
		t.Fatal("expected all slots cleared")
	}

	es.EmitOpen()
	es.EmitMessage(eventsource.NewMessageEvent(eventsource.EventTypeMessage, "x"))
	es.EmitError(stderrors.New("x"))

	if slots.Opens() != 0 || len(slots.Messages()) != 0 || len(slots.Errors()) != 0 {
		t.Error("expected cleared slots not to run")
	}
}

func TestSlotReplacement(t *testing.T) {
	es := newSource(t)
	first, second := 0, 0
	es.SetOnError(func(error) { first++ })
	es.SetOnError(func(error) { second++ })

	es.EmitError(stderrors.New("x"))
	if first != 0 || second != 1 {
		t.Errorf("expected only the latest onerror to run, got first=%d second=%d", first, second)
	}
}

func TestClose(t *testing.T) {
	es := newSource(t)
	rec := testutil.NewRecorder()
	es.AddEventListener("foo", rec)

	es.Close()
	es.Close()

	if es.ReadyState() != eventsource.Closed {
		t.Errorf("expected CLOSED, got %s", es.ReadyState())
	}
	if int(es.ReadyState()) != 2 {
		t.Errorf("expected numeric readyState 2, got %d", int(es.ReadyState()))
	}

	es.Emit("foo", nil)
	if rec.Count() != 1 {
		t.Error("expected listeners to survive Close")
	}
}

func TestEndToEnd(t *testing.T) {
	reg := eventsource.NewRegistry()
	var got *eventsource.MessageEvent

	consumer := func(f eventsource.Factory) eventsource.EventSource {
		src := f.NewEventSource(testURL)
		src.AddEventListener("EVENT_NAME", eventsource.ListenerFunc(func(ev *eventsource.MessageEvent) {
			got = ev
			src.Close()
		}))
		return src
	}
	consumer(reg)

	es, err := reg.Get(testURL)
	if err != nil {
		t.Fatalf("expected source to be registered: %v", err)
	}
	es.EmitOpen()
	es.Emit("EVENT_NAME", eventsource.NewMessageEvent("EVENT_NAME", "message event data"))

	if got == nil || got.Data != "message event data" {
		t.Fatalf("expected listener to receive the event, got %+v", got)
	}
	if es.ReadyState() != eventsource.Closed {
		t.Errorf("expected CLOSED, got %s", es.ReadyState())
	}
}

func TestReadyStateString(t *testing.T) {
	tests := map[eventsource.ReadyState]string{
		eventsource.Connecting:    "CONNECTING",
		eventsource.Open:          "OPEN",
		eventsource.Closed:        "CLOSED",
		eventsource.ReadyState(7): "ReadyState(7)",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}
