package engine

import "github.com/rsimai/xtouch-mini/internal/control"

type toggleKey struct {
	control string
	typ     control.Type
}

// Toggles tracks per-button on/off state for mute and solo bindings. State is
// keyed by (control key, control type) so a rebound control starts fresh.
// It lives in memory only and resets on every process start.
//
// Toggles is not internally synchronized; the Engine's exclusion boundary
// covers it together with command emission.
type Toggles struct {
	states map[toggleKey]bool
}

// NewToggles creates an empty tracker. Every key starts out off.
func NewToggles() *Toggles {
	return &Toggles{states: map[toggleKey]bool{}}
}

// Toggle flips and returns the new state for the given control and type.
func (t *Toggles) Toggle(controlKey string, typ control.Type) bool {
	k := toggleKey{control: controlKey, typ: typ}
	t.states[k] = !t.states[k]
	return t.states[k]
}

// Current returns the state without flipping it.
func (t *Toggles) Current(controlKey string, typ control.Type) bool {
	return t.states[toggleKey{control: controlKey, typ: typ}]
}
