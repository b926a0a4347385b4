package control

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a raw control event.
type Kind string

const (
	KindPress    Kind = "press"    // button down (note on, velocity > 0)
	KindRelease  Kind = "release"  // button up (note off, or note on with velocity 0)
	KindAbsolute Kind = "absolute" // continuous value (control change), 0-127
)

// Event is a single raw action on the control surface. Key is the stable
// hardware address of the control ("<status>_<data1>", e.g. "176_16" for
// CC 16 on MIDI channel 1). Level is only meaningful for KindAbsolute.
type Event struct {
	Key   string
	Kind  Kind
	Level uint8
}

// Type is the mixer function a control is bound to.
type Type string

const (
	TypeVolume Type = "volume"
	TypeMute   Type = "mute"
	TypeSolo   Type = "solo"
)

// ParseType parses user input into a control type. The numeric aliases
// match the menu the learn prompt prints (1: volume, 2: mute, 3: solo).
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "volume", "1":
		return TypeVolume, nil
	case "mute", "2":
		return TypeMute, nil
	case "solo", "3":
		return TypeSolo, nil
	}
	return "", fmt.Errorf("control type must be volume, mute or solo, got %q", s)
}

// Valid reports whether t is one of the known control types.
func (t Type) Valid() bool {
	return t == TypeVolume || t == TypeMute || t == TypeSolo
}

// IsToggle reports whether the type carries on/off state rather than a level.
func (t Type) IsToggle() bool {
	return t == TypeMute || t == TypeSolo
}

// TargetKind discriminates the addressable mixer entities.
type TargetKind string

const (
	TargetChannel TargetKind = "channel"
	TargetAux     TargetKind = "aux"
	TargetMaster  TargetKind = "master"
)

// Target is an addressable mixer entity: a numbered channel (1-16), the aux
// return or the master bus. Channel is only meaningful for TargetChannel.
type Target struct {
	Kind    TargetKind
	Channel int
}

// ChannelTarget returns a channel target. The caller must pass 1-16.
func ChannelTarget(n int) Target { return Target{Kind: TargetChannel, Channel: n} }

// Aux is the aux return target.
var Aux = Target{Kind: TargetAux}

// Master is the master bus target.
var Master = Target{Kind: TargetMaster}

// ParseTarget parses user input into a Target: an integer 1-16, or the
// literals "aux" or "master".
func ParseTarget(s string) (Target, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "master":
		return Master, nil
	case "aux":
		return Aux, nil
	default:
		n, err := strconv.Atoi(v)
		if err != nil {
			return Target{}, fmt.Errorf("target must be a channel number 1-16, 'aux' or 'master', got %q", s)
		}
		if n < 1 || n > 16 {
			return Target{}, fmt.Errorf("channel number must be between 1 and 16, got %d", n)
		}
		return ChannelTarget(n), nil
	}
}

// Valid reports whether the target addresses a real mixer entity.
func (t Target) Valid() bool {
	switch t.Kind {
	case TargetAux, TargetMaster:
		return true
	case TargetChannel:
		return t.Channel >= 1 && t.Channel <= 16
	}
	return false
}

func (t Target) String() string {
	switch t.Kind {
	case TargetAux:
		return "aux"
	case TargetMaster:
		return "master"
	default:
		return fmt.Sprintf("channel %d", t.Channel)
	}
}

// MarshalJSON stores channels as their bare number and the buses as the
// literals "aux"/"master", the same shape the controls file has always had.
func (t Target) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case TargetAux:
		return json.Marshal("aux")
	case TargetMaster:
		return json.Marshal("master")
	case TargetChannel:
		return json.Marshal(t.Channel)
	}
	return nil, fmt.Errorf("cannot marshal invalid target %+v", t)
}

func (t *Target) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, perr := ParseTarget(s)
		if perr != nil {
			return perr
		}
		*t = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("target must be a channel number or \"aux\"/\"master\": %w", err)
	}
	if n < 1 || n > 16 {
		return fmt.Errorf("channel number must be between 1 and 16, got %d", n)
	}
	*t = ChannelTarget(n)
	return nil
}
