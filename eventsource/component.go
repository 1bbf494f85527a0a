package eventsource

import (
	"context"
	"fmt"
	"sync"

	"github.com/kbukum/ssemock/component"
	"github.com/kbukum/ssemock/errors"
	"github.com/kbukum/ssemock/logger"
)

// Snapshot is the captured registry state returned by Component.Snapshot.
// It holds the same source pointers as the registry, so Restore restores
// registry membership, not source state: readyState and listener changes
// made after the snapshot remain visible.
type Snapshot map[string]*MockEventSource

// Component wraps a Registry as a lifecycle-managed component so test suites
// can start, stop, reset and snapshot it alongside other components.
type Component struct {
	registry *Registry
	mu       sync.Mutex
	started  bool
}

// ensure Component satisfies component.Component and Describable.
var (
	_ component.Component   = (*Component)(nil)
	_ component.Describable = (*Component)(nil)
)

// NewComponent creates a component around reg. A nil reg gets a fresh Registry.
func NewComponent(reg *Registry) *Component {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Component{registry: reg}
}

// Registry returns the wrapped registry.
func (c *Component) Registry() *Registry { return c.registry }

// Name returns the component name.
func (c *Component) Name() string { return componentName }

// Start marks the component as running. Sources need no background work.
func (c *Component) Start(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.started = true
	return nil
}

// Stop closes every registered source.
func (c *Component) Stop(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.registry.CloseAll()
	c.started = false
	logger.Debug("[EVENTSOURCE] Registry stopped", map[string]interface{}{
		"sources": c.registry.Len(),
	})
	return nil
}

// Health reports how many sources are registered.
func (c *Component) Health(_ context.Context) component.Health {
	c.mu.Lock()
	started := c.started
	c.mu.Unlock()

	if !started {
		return component.Health{
			Name:    c.Name(),
			Status:  component.StatusUnhealthy,
			Message: "not started",
		}
	}
	return component.Health{
		Name:    c.Name(),
		Status:  component.StatusHealthy,
		Message: fmt.Sprintf("%d sources registered", c.registry.Len()),
	}
}

// Describe returns summary info for display.
func (c *Component) Describe() component.Description {
	return component.Description{
		Name:    "EventSource Registry",
		Type:    "mock",
		Details: fmt.Sprintf("Sources: %d", c.registry.Len()),
	}
}

// Reset empties the registry.
func (c *Component) Reset(_ context.Context) error {
	c.registry.Reset()
	return nil
}

// Snapshot captures the current URL to source mapping. Sources are shared,
// not copied; see Snapshot.
func (c *Component) Snapshot(_ context.Context) (interface{}, error) {
	return Snapshot(c.registry.entries()), nil
}

// Restore reinstates a mapping captured by Snapshot.
func (c *Component) Restore(_ context.Context, snapshot interface{}) error {
	snap, ok := snapshot.(Snapshot)
	if !ok {
		return errors.InvalidInput("snapshot", fmt.Sprintf("expected eventsource.Snapshot, got %T", snapshot))
	}
	c.registry.replace(snap)
	return nil
}
