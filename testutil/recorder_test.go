package testutil_test

import (
	"errors"
	"testing"

	"github.com/kbukum/ssemock/eventsource"
	"github.com/kbukum/ssemock/testutil"
)

func TestRecorder(t *testing.T) {
	src := eventsource.New("https://example.com/events", eventsource.WithRegistry(nil))
	rec := testutil.NewRecorder()
	src.AddEventListener("foo", rec)

	if rec.Last() != nil {
		t.Error("expected no last event before emission")
	}

	first := eventsource.NewMessageEvent("foo", "1")
	second := eventsource.NewMessageEvent("foo", "2")
	src.Emit("foo", first)
	src.Emit("foo", second)

	if rec.Count() != 2 {
		t.Fatalf("expected 2 events, got %d", rec.Count())
	}
	events := rec.Events()
	if events[0] != first || events[1] != second {
		t.Errorf("expected events in emission order, got %v", events)
	}
	if rec.Last() != second {
		t.Errorf("expected last event to be the second one")
	}

	rec.Reset()
	if rec.Count() != 0 {
		t.Errorf("expected 0 events after Reset, got %d", rec.Count())
	}
}

func TestSlotRecorder(t *testing.T) {
	src := eventsource.New("https://example.com/events", eventsource.WithRegistry(nil))
	slots := testutil.AttachSlots(src)

	msg := eventsource.NewMessageEvent(eventsource.EventTypeMessage, "hi")
	boom := errors.New("boom")

	src.EmitOpen()
	src.EmitMessage(msg)
	src.EmitError(boom)

	if slots.Opens() != 1 {
		t.Errorf("expected 1 open, got %d", slots.Opens())
	}
	if got := slots.Messages(); len(got) != 1 || got[0] != msg {
		t.Errorf("expected the emitted message, got %v", got)
	}
	if got := slots.Errors(); len(got) != 1 || got[0] != boom {
		t.Errorf("expected the emitted error, got %v", got)
	}
}

func TestCallLog(t *testing.T) {
	src := eventsource.New("https://example.com/events", eventsource.WithRegistry(nil))
	var log testutil.CallLog

	src.AddEventListener("foo", log.Listener("a"))
	src.AddEventListener("foo", log.Listener("b"))
	src.Emit("foo", eventsource.NewMessageEvent("foo", ""))

	calls := log.Calls()
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Errorf("expected [a b], got %v", calls)
	}
}
