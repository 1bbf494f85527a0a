// Package eventsource provides an in-process stand-in for a server-sent
// events client so tests can simulate push-event streams without a network.
//
// A MockEventSource behaves like the client side of an event stream: code
// under test subscribes with AddEventListener or the OnOpen/OnMessage/OnError
// slots, and test code drives it with Emit, EmitOpen, EmitMessage and
// EmitError. Every instance is recorded in a Registry under its URL so a test
// can reach a source that the code under test constructed internally.
//
// # Architecture
//
//   - MockEventSource: one simulated connection with a readyState lifecycle
//   - Registry: URL-keyed lookup of live sources, also a Factory
//   - Component: lifecycle wrapper around a Registry for test suites
//
// # Usage
//
//	reg := eventsource.NewRegistry()
//	consumer := NewCounter(reg) // calls reg.NewEventSource(url) internally
//
//	src, err := reg.Get("http://example.com/events")
//	if err != nil {
//	    t.Fatal(err)
//	}
//	src.Emit("foo", eventsource.NewMessageEvent("foo", "1"))
package eventsource
