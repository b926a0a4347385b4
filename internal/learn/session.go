package learn

import (
	"fmt"
	"log/slog"

	"github.com/rsimai/xtouch-mini/internal/control"
	"github.com/rsimai/xtouch-mini/internal/mapping"
)

// Session is the interactive learn protocol. It sits idle until an event for
// an unknown control arrives, prompts for a target and a control type, writes
// the new binding into the store and returns to idle. Already-bound controls
// are never re-prompted; removing the record first is the only way to
// reprogram one.
type Session struct {
	store    *mapping.Store
	prompter Prompter
}

// NewSession creates a learn session over the given store.
func NewSession(store *mapping.Store, prompter Prompter) *Session {
	return &Session{store: store, prompter: prompter}
}

// Handle processes one control event. Release events and value events at
// level 0 (a knob at rest, or a button release arriving as a zero-value
// control change) never trigger prompting. A prompter failure aborts the
// in-progress prompt without creating a partial binding.
//
// The store is saved after every new binding, so an interrupted session
// keeps everything learned so far.
func (s *Session) Handle(ev control.Event) error {
	if ev.Kind == control.KindRelease {
		slog.Debug("ignoring release", "control", ev.Key)
		return nil
	}
	if ev.Kind == control.KindAbsolute && ev.Level == 0 {
		slog.Debug("ignoring zero-value event", "control", ev.Key)
		return nil
	}
	if existing, ok := s.store.Get(ev.Key); ok {
		slog.Debug("control already mapped", "control", ev.Key, "target", existing.Target.String(), "type", existing.Type)
		return nil
	}

	binding, err := s.prompt(ev)
	if err != nil {
		return fmt.Errorf("prompting for control %s: %w", ev.Key, err)
	}

	s.store.Put(ev.Key, binding)
	if err := s.store.Save(); err != nil {
		return fmt.Errorf("saving bindings: %w", err)
	}
	slog.Info("mapped control", "control", ev.Key, "target", binding.Target.String(), "type", binding.Type)
	return nil
}

func (s *Session) prompt(ev control.Event) (mapping.Binding, error) {
	target, err := s.askTarget(ev)
	if err != nil {
		return mapping.Binding{}, err
	}
	typ, err := s.askType()
	if err != nil {
		return mapping.Binding{}, err
	}
	return mapping.NewBinding(target, typ), nil
}

// askTarget re-prompts until the answer is a channel number 1-16, "aux" or
// "master". Invalid input is never silently defaulted.
func (s *Session) askTarget(ev control.Event) (control.Target, error) {
	question := fmt.Sprintf("new control %s: channel number (1-16, 'aux' or 'master'): ", ev.Key)
	for {
		answer, err := s.prompter.Ask(question)
		if err != nil {
			return control.Target{}, err
		}
		target, perr := control.ParseTarget(answer)
		if perr == nil {
			return target, nil
		}
		question = fmt.Sprintf("%v, try again: ", perr)
	}
}

func (s *Session) askType() (control.Type, error) {
	question := "control type (1: volume, 2: mute, 3: solo): "
	for {
		answer, err := s.prompter.Ask(question)
		if err != nil {
			return "", err
		}
		typ, perr := control.ParseType(answer)
		if perr == nil {
			return typ, nil
		}
		question = fmt.Sprintf("%v, try again: ", perr)
	}
}
