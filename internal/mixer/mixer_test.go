package mixer

import (
	"testing"

	"github.com/rsimai/xtouch-mini/internal/control"
)

func TestFaderAddresses(t *testing.T) {
	cases := map[string]struct {
		target control.Target
		want   string
	}{
		"channel":       {control.ChannelTarget(5), "/ch/05/mix/fader"},
		"channel 2-dig": {control.ChannelTarget(16), "/ch/16/mix/fader"},
		"master":        {control.Master, "/lr/mix/fader"},
		"aux":           {control.Aux, "/rtn/aux/mix/fader"},
	}
	for name, c := range cases {
		if got := faderAddress(c.target); got != c.want {
			t.Errorf("%s: faderAddress = %q, want %q", name, got, c.want)
		}
	}
}

func TestMuteAndSoloAddresses(t *testing.T) {
	if got := muteAddress(control.ChannelTarget(3)); got != "/ch/03/mix/on" {
		t.Errorf("channel mute address = %q", got)
	}
	if got := muteAddress(control.Master); got != "/lr/mix/on" {
		t.Errorf("master mute address = %q", got)
	}
	if got := muteAddress(control.Aux); got != "/rtn/aux/mix/on" {
		t.Errorf("aux mute address = %q", got)
	}

	if got := soloAddress(control.ChannelTarget(3)); got != "/-stat/solosw/03" {
		t.Errorf("channel solo address = %q", got)
	}
	if got := soloAddress(control.Master); got != "/-stat/solosw/lr" {
		t.Errorf("master solo address = %q", got)
	}
	if got := soloAddress(control.Aux); got != "/rtn/aux/mix/solo" {
		t.Errorf("aux solo address = %q", got)
	}
}

func TestToggleMessageMuteIsInverted(t *testing.T) {
	// The XR18 address is a channel-on switch: muted means 0.
	address, value, err := toggleMessage(control.ChannelTarget(3), control.TypeMute, true)
	if err != nil {
		t.Fatal(err)
	}
	if address != "/ch/03/mix/on" || value != 0 {
		t.Errorf("mute on: got %q=%d, want /ch/03/mix/on=0", address, value)
	}

	_, value, err = toggleMessage(control.ChannelTarget(3), control.TypeMute, false)
	if err != nil {
		t.Fatal(err)
	}
	if value != 1 {
		t.Errorf("mute off: got %d, want 1", value)
	}
}

func TestToggleMessageSoloIsDirect(t *testing.T) {
	address, value, err := toggleMessage(control.Master, control.TypeSolo, true)
	if err != nil {
		t.Fatal(err)
	}
	if address != "/-stat/solosw/lr" || value != 1 {
		t.Errorf("solo on: got %q=%d, want /-stat/solosw/lr=1", address, value)
	}

	_, value, err = toggleMessage(control.Master, control.TypeSolo, false)
	if err != nil {
		t.Fatal(err)
	}
	if value != 0 {
		t.Errorf("solo off: got %d, want 0", value)
	}
}

func TestToggleMessageRejectsVolume(t *testing.T) {
	if _, _, err := toggleMessage(control.Aux, control.TypeVolume, true); err == nil {
		t.Error("Expected an error for a volume toggle")
	}
}
