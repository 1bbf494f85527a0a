// Package testutil provides test helpers for code that consumes push events.
//
// Lifecycle helpers start and stop a TestComponent (such as
// eventsource.Component) around a test:
//
//	func TestMyFeature(t *testing.T) {
//	    comp := eventsource.NewComponent(nil)
//	    testutil.T(t).Setup(comp)
//	    // component is stopped when the test ends
//	}
//
// Recorders capture what a MockEventSource delivered:
//
//	rec := testutil.NewRecorder()
//	src.AddEventListener("foo", rec)
//	src.Emit("foo", ev)
//	if rec.Count() != 1 { ... }
//
// SlotRecorder does the same for the onopen, onmessage and onerror slots and
// CallLog records the order in which several listeners ran.
package testutil
