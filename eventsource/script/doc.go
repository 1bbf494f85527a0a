// Package script drives a MockEventSource from a YAML description of a
// stream: open it, push named events and messages, raise errors, close it.
//
// # Format
//
//	url: https://example.com/events
//	steps:
//	  - action: open
//	  - action: event
//	    event: foo
//	    data: "1"
//	  - action: error
//	    error: upstream went away
//	  - action: close
//
// # Usage
//
//	s, err := script.LoadFile("testdata/counter.yml")
//	if err != nil {
//	    t.Fatal(err)
//	}
//	if err := script.Run(registry, s); err != nil {
//	    t.Fatal(err)
//	}
package script
