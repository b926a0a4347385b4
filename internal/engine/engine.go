package engine

import (
	"log/slog"
	"sync"

	"github.com/rsimai/xtouch-mini/internal/control"
	"github.com/rsimai/xtouch-mini/internal/mapping"
)

// Output accepts translated mixer commands and owns their wire encoding.
type Output interface {
	SetVolume(target control.Target, level float64) error
	SetToggle(target control.Target, typ control.Type, on bool) error
}

// Engine translates raw control events into mixer commands using the binding
// table and the toggle tracker. Events for unmapped controls, release events
// and type/event combinations that carry no meaning are silently dropped.
type Engine struct {
	mu      sync.Mutex
	store   *mapping.Store
	toggles *Toggles
	out     Output
}

// New creates an engine. The mutex inside the engine is the single exclusion
// boundary for toggle state, so a toggle flip and the command it produces are
// never interleaved with another flip of the same key.
func New(store *mapping.Store, toggles *Toggles, out Output) *Engine {
	return &Engine{store: store, toggles: toggles, out: out}
}

// Handle processes one control event and emits at most one mixer command.
// Only transport failures from the output surface as errors; everything the
// engine drops by design is a normal outcome.
func (e *Engine) Handle(ev control.Event) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	binding, ok := e.store.Get(ev.Key)
	if !ok {
		slog.Debug("ignoring unmapped control", "control", ev.Key)
		return nil
	}

	switch binding.Type {
	case control.TypeVolume:
		// Press/release on a volume binding carries no level.
		if ev.Kind != control.KindAbsolute {
			slog.Debug("dropping non-value event on volume binding", "control", ev.Key, "kind", ev.Kind)
			return nil
		}
		level := float64(ev.Level) / 127.0
		if err := e.out.SetVolume(binding.Target, level); err != nil {
			return err
		}
		slog.Info("volume", "control", ev.Key, "target", binding.Target.String(), "level", level)

	case control.TypeMute, control.TypeSolo:
		// Only presses act; releases and stray value events are dropped.
		if ev.Kind != control.KindPress {
			slog.Debug("dropping non-press event on toggle binding", "control", ev.Key, "kind", ev.Kind)
			return nil
		}
		on := e.toggles.Toggle(ev.Key, binding.Type)
		if err := e.out.SetToggle(binding.Target, binding.Type, on); err != nil {
			return err
		}
		slog.Info("toggle", "control", ev.Key, "target", binding.Target.String(), "type", binding.Type, "on", on)
	}

	return nil
}
