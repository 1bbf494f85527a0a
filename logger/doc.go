// Package logger provides structured logging for ssemock using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("eventsource")
//	log.Debug("[EVENTSOURCE] Event emitted", logger.Fields("event", "foo"))
package logger
