package engine

import (
	"testing"

	"github.com/rsimai/xtouch-mini/internal/control"
)

func TestToggleStartsOffAndAlternates(t *testing.T) {
	toggles := NewToggles()

	if toggles.Current("144_32", control.TypeMute) {
		t.Error("Unseen key should start off")
	}
	if !toggles.Toggle("144_32", control.TypeMute) {
		t.Error("First toggle should turn on")
	}
	if toggles.Toggle("144_32", control.TypeMute) {
		t.Error("Second toggle should turn off")
	}

	// Even number of flips returns to the original state, odd flips it.
	for i := 0; i < 6; i++ {
		toggles.Toggle("144_32", control.TypeMute)
	}
	if toggles.Current("144_32", control.TypeMute) {
		t.Error("Even number of toggles should leave state off")
	}
	toggles.Toggle("144_32", control.TypeMute)
	if !toggles.Current("144_32", control.TypeMute) {
		t.Error("Odd number of toggles should leave state on")
	}
}

func TestToggleKeyedByControlAndType(t *testing.T) {
	toggles := NewToggles()

	toggles.Toggle("144_32", control.TypeMute)
	if toggles.Current("144_32", control.TypeSolo) {
		t.Error("Solo state must be independent of mute state for the same control")
	}
	if toggles.Current("144_33", control.TypeMute) {
		t.Error("State must be independent across controls")
	}
}

func TestCurrentDoesNotMutate(t *testing.T) {
	toggles := NewToggles()
	toggles.Current("176_1", control.TypeSolo)
	toggles.Current("176_1", control.TypeSolo)
	if toggles.Current("176_1", control.TypeSolo) {
		t.Error("Current must not flip state")
	}
}
