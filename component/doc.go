// Package component defines the lifecycle interfaces shared by ssemock's
// long-lived pieces and a registry that starts and stops them in order.
//
//   - Component: Start/Stop/Health lifecycle
//   - Describable: one-line summary for startup output
//   - Registry: ordered start, reverse-order stop
package component
