package midi

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register rtmidi driver

	"github.com/rsimai/xtouch-mini/internal/control"
)

// Manager handles MIDI input port discovery and listening.
type Manager struct{}

// NewManager creates a new MIDI manager.
func NewManager() *Manager {
	return &Manager{}
}

// Close cleans up the MIDI driver.
func (m *Manager) Close() {
	midi.CloseDriver()
}

// ListInPorts returns the names of available MIDI input ports.
func (m *Manager) ListInPorts() []string {
	ins := midi.GetInPorts()
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

func (m *Manager) findInPort(name string) drivers.In {
	for _, in := range midi.GetInPorts() {
		if in.String() == name {
			return in
		}
	}
	return nil
}

// Listen opens the named input port and feeds every note and control-change
// message to fn as a control event. Note on with velocity > 0 is a press,
// note off (or note on at velocity 0) a release, and a control change an
// absolute value. The returned function stops the listener.
//
// Control keys are "<status>_<data1>"; a note's release normalizes to the
// note-on status so press and release share one key.
func (m *Manager) Listen(portName string, fn func(control.Event)) (func(), error) {
	inPort := m.findInPort(portName)
	if inPort == nil {
		return nil, fmt.Errorf("input port not found: %s", portName)
	}

	stop, err := midi.ListenTo(inPort, func(msg midi.Message, timestampms int32) {
		var channel, key, velocity uint8

		switch {
		case msg.GetNoteOn(&channel, &key, &velocity):
			kind := control.KindPress
			if velocity == 0 {
				kind = control.KindRelease
			}
			fn(control.Event{Key: noteKey(channel, key), Kind: kind})
		case msg.GetNoteOff(&channel, &key, &velocity):
			fn(control.Event{Key: noteKey(channel, key), Kind: control.KindRelease})
		case msg.GetControlChange(&channel, &key, &velocity):
			fn(control.Event{Key: ccKey(channel, key), Kind: control.KindAbsolute, Level: velocity})
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start listening: %w", err)
	}
	return stop, nil
}

func noteKey(channel, key uint8) string {
	return fmt.Sprintf("%d_%d", 0x90|channel, key)
}

func ccKey(channel, cc uint8) string {
	return fmt.Sprintf("%d_%d", 0xB0|channel, cc)
}
