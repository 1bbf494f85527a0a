package eventsource_test

import (
	"fmt"
	"strconv"

	"github.com/kbukum/ssemock/eventsource"
)

// counter sums the integers pushed on the "foo" event.
type counter struct {
	src   eventsource.EventSource
	total int
}

func newCounter(f eventsource.Factory, url string) *counter {
	c := &counter{src: f.NewEventSource(url)}
	c.src.AddEventListener("foo", eventsource.ListenerFunc(func(ev *eventsource.MessageEvent) {
		n, err := strconv.Atoi(ev.Data)
		if err != nil {
			return
		}
		c.total += n
	}))
	return c
}

func (c *counter) Stop() { c.src.Close() }

func Example() {
	reg := eventsource.NewRegistry()
	c := newCounter(reg, "https://example.com/events")

	es, _ := reg.Get("https://example.com/events")
	es.EmitOpen()
	es.Emit("foo", eventsource.NewMessageEvent("foo", "1"))
	es.Emit("foo", eventsource.NewMessageEvent("foo", "2"))
	es.Emit("bar", eventsource.NewMessageEvent("bar", "100"))
	c.Stop()

	fmt.Println(c.total)
	fmt.Println(es.ReadyState(), int(es.ReadyState()))
	// Output:
	// 3
	// CLOSED 2
}

func ExampleMockEventSource_RemoveEventListener() {
	es := eventsource.New("https://example.com/events", eventsource.WithRegistry(nil))
	l := eventsource.NewListener(func(ev *eventsource.MessageEvent) {
		fmt.Println("got", ev.Data)
	})

	es.AddEventListener("foo", l)
	es.Emit("foo", eventsource.NewMessageEvent("foo", "first"))
	es.RemoveEventListener("foo", l)
	es.Emit("foo", eventsource.NewMessageEvent("foo", "second"))
	// Output:
	// got first
}
