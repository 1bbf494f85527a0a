package eventsource

import "fmt"

// ReadyState is the lifecycle phase of a simulated connection.
type ReadyState int

// The numeric values match the constants a browser exposes on EventSource.
const (
	Connecting ReadyState = 0
	Open       ReadyState = 1
	Closed     ReadyState = 2
)

// String returns the upper-case state name.
func (s ReadyState) String() string {
	switch s {
	case Connecting:
		return "CONNECTING"
	case Open:
		return "OPEN"
	case Closed:
		return "CLOSED"
	default:
		return fmt.Sprintf("ReadyState(%d)", int(s))
	}
}
