package main

import (
	"context"

	"github.com/kbukum/ssemock/eventsource"
	"github.com/kbukum/ssemock/eventsource/script"
	"github.com/kbukum/ssemock/logger"
)

// playAll loads and plays every script, each against a fresh source
// registered in reg. It stops at the first load error or cancellation.
func playAll(ctx context.Context, reg *eventsource.Registry, defaults eventsource.Config, paths []string) error {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		s, err := script.LoadFile(path)
		if err != nil {
			return err
		}
		if _, err := playScript(reg, defaults, s); err != nil {
			return err
		}
	}
	return nil
}

// playScript creates a source for s.URL with logging listeners on every
// event the script emits and on the three slots, then runs the script.
func playScript(reg *eventsource.Registry, defaults eventsource.Config, s *script.Script) (*eventsource.MockEventSource, error) {
	log := logger.Get("ssemock").WithFields(map[string]interface{}{
		logger.FieldScript: s.Name,
		logger.FieldURL:    s.URL,
	})

	es := reg.New(s.URL, eventsource.WithConfig(defaults))
	for _, name := range s.EventNames() {
		es.AddEventListener(name, eventsource.ListenerFunc(func(ev *eventsource.MessageEvent) {
			log.Info("event", map[string]interface{}{
				logger.FieldEvent: ev.Type,
				"data":            ev.Data,
				"last_event_id":   ev.LastEventID,
			})
		}))
	}
	es.SetOnOpen(func() {
		log.Info("open", map[string]interface{}{
			logger.FieldState: es.ReadyState().String(),
		})
	})
	es.SetOnMessage(func(ev *eventsource.MessageEvent) {
		log.Info("message", map[string]interface{}{
			"data": ev.Data,
		})
	})
	es.SetOnError(func(err error) {
		fields := map[string]interface{}{}
		if err != nil {
			fields = logger.MergeWithError(fields, err)
		}
		log.Warn("error", fields)
	})

	if err := script.Run(reg, s); err != nil {
		return nil, err
	}

	log.Info("Script finished", map[string]interface{}{
		logger.FieldState: es.ReadyState().String(),
		"steps":           len(s.Steps),
	})
	return es, nil
}
