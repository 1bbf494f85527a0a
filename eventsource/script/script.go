package script

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/kbukum/ssemock/errors"
	"github.com/kbukum/ssemock/eventsource"
	"github.com/kbukum/ssemock/logger"
	"github.com/kbukum/ssemock/validation"
)

// Step actions.
const (
	ActionOpen    = "open"
	ActionEvent   = "event"
	ActionMessage = "message"
	ActionError   = "error"
	ActionClose   = "close"
)

// Script is a scripted stream for the source created for URL.
type Script struct {
	Name  string `yaml:"name,omitempty"`
	URL   string `yaml:"url" validate:"required,url"`
	Steps []Step `yaml:"steps" validate:"min=1,dive"`
}

// Step is one action applied to the source.
type Step struct {
	Action string `yaml:"action" validate:"required,oneof=open event message error close"`
	// Event is the listener name for action "event".
	Event string `yaml:"event,omitempty" validate:"required_if=Action event"`
	Data  string `yaml:"data,omitempty"`
	// ID becomes MessageEvent.LastEventID.
	ID string `yaml:"id,omitempty"`
	// Error is the message of the error passed to onerror.
	Error string `yaml:"error,omitempty"`
}

// Target is the part of a MockEventSource a script drives.
type Target interface {
	URL() string
	EmitOpen()
	Emit(eventName string, ev *eventsource.MessageEvent)
	EmitMessage(msg *eventsource.MessageEvent)
	EmitError(err error)
	Close()
}

var _ Target = (*eventsource.MockEventSource)(nil)

// Parse decodes and validates a script document.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.InvalidInput("script", "document is empty")
		}
		return nil, errors.InvalidFormat("script", "YAML").WithCause(err)
	}
	if err := validation.Validate(&s); err != nil {
		return nil, err
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	return &s, nil
}

// check covers the rules struct tags cannot express.
func (s *Script) check() error {
	v := validation.New().AbsoluteURL("url", s.URL)
	for i, step := range s.Steps {
		v.Custom(step.Action == ActionEvent || step.Event == "",
			fmt.Sprintf("steps[%d].event", i), "is only allowed for action event")
	}
	return v.Validate()
}

// Load reads a script document from r.
func Load(r io.Reader) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.IO("script", err)
	}
	return Parse(data)
}

// LoadFile reads a script document from path. A script without a name is
// named after the file.
func LoadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IO(path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// EventNames returns the sorted, distinct names used by "event" steps.
func (s *Script) EventNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, step := range s.Steps {
		if step.Action != ActionEvent || seen[step.Event] {
			continue
		}
		seen[step.Event] = true
		names = append(names, step.Event)
	}
	sort.Strings(names)
	return names
}

// Play applies every step of s to src in order. Callback panics are not
// recovered.
func Play(src Target, s *Script) {
	log := logger.Get("script").WithFields(map[string]interface{}{
		logger.FieldScript: s.Name,
		logger.FieldURL:    src.URL(),
	})

	for i, step := range s.Steps {
		log.Debug("[SCRIPT] Step", map[string]interface{}{
			logger.FieldStep:  i,
			"action":          step.Action,
			logger.FieldEvent: step.Event,
		})
		apply(src, step)
	}
	log.Debug("[SCRIPT] Played", map[string]interface{}{
		"steps": len(s.Steps),
	})
}

func apply(src Target, step Step) {
	origin := originOf(src.URL())
	switch step.Action {
	case ActionOpen:
		src.EmitOpen()
	case ActionEvent:
		src.Emit(step.Event, step.messageEvent(step.Event, origin))
	case ActionMessage:
		src.EmitMessage(step.messageEvent(eventsource.EventTypeMessage, origin))
	case ActionError:
		src.EmitError(stderrors.New(step.Error))
	case ActionClose:
		src.Close()
	}
}

func (step Step) messageEvent(eventType, origin string) *eventsource.MessageEvent {
	ev := eventsource.NewMessageEvent(eventType, step.Data)
	ev.LastEventID = step.ID
	ev.Origin = origin
	return ev
}

// originOf returns the scheme and host of rawURL, or "" when it has none.
func originOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// Run plays s against the source registered in reg for s.URL.
func Run(reg *eventsource.Registry, s *Script) error {
	src, err := reg.Get(s.URL)
	if err != nil {
		return err
	}
	Play(src, s)
	return nil
}
