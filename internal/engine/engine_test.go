package engine

import (
	"path/filepath"
	"testing"

	"github.com/rsimai/xtouch-mini/internal/control"
	"github.com/rsimai/xtouch-mini/internal/mapping"
)

type command struct {
	address control.Target
	typ     control.Type
	level   float64
	on      bool
	volume  bool
}

type fakeOutput struct {
	commands []command
}

func (f *fakeOutput) SetVolume(target control.Target, level float64) error {
	f.commands = append(f.commands, command{address: target, level: level, volume: true})
	return nil
}

func (f *fakeOutput) SetToggle(target control.Target, typ control.Type, on bool) error {
	f.commands = append(f.commands, command{address: target, typ: typ, on: on})
	return nil
}

func newEngine(t *testing.T, bindings map[string]mapping.Binding) (*Engine, *fakeOutput) {
	t.Helper()
	store := mapping.NewStore(filepath.Join(t.TempDir(), "bindings.json"))
	for key, b := range bindings {
		store.Put(key, b)
	}
	out := &fakeOutput{}
	return New(store, NewToggles(), out), out
}

func TestUnmappedControlIsNoOp(t *testing.T) {
	eng, out := newEngine(t, nil)
	events := []control.Event{
		{Key: "144_1", Kind: control.KindPress},
		{Key: "144_1", Kind: control.KindRelease},
		{Key: "176_1", Kind: control.KindAbsolute, Level: 100},
	}
	for _, ev := range events {
		if err := eng.Handle(ev); err != nil {
			t.Fatalf("Handle(%+v) failed: %v", ev, err)
		}
	}
	if len(out.commands) != 0 {
		t.Errorf("Expected no commands for unmapped controls, got %d", len(out.commands))
	}
}

func TestVolumeTranslation(t *testing.T) {
	eng, out := newEngine(t, map[string]mapping.Binding{
		"176_16": mapping.NewBinding(control.Master, control.TypeVolume),
	})

	levels := map[uint8]float64{
		0:   0.0,
		64:  64.0 / 127.0,
		127: 1.0,
	}
	for level, want := range levels {
		out.commands = nil
		if err := eng.Handle(control.Event{Key: "176_16", Kind: control.KindAbsolute, Level: level}); err != nil {
			t.Fatal(err)
		}
		if len(out.commands) != 1 {
			t.Fatalf("Level %d: expected 1 command, got %d", level, len(out.commands))
		}
		got := out.commands[0]
		if !got.volume || got.address != control.Master || got.level != want {
			t.Errorf("Level %d: got %+v, want volume %v on master", level, got, want)
		}
	}
}

func TestVolumeIgnoresPressAndRelease(t *testing.T) {
	eng, out := newEngine(t, map[string]mapping.Binding{
		"144_16": mapping.NewBinding(control.ChannelTarget(2), control.TypeVolume),
	})
	if err := eng.Handle(control.Event{Key: "144_16", Kind: control.KindPress}); err != nil {
		t.Fatal(err)
	}
	if err := eng.Handle(control.Event{Key: "144_16", Kind: control.KindRelease}); err != nil {
		t.Fatal(err)
	}
	if len(out.commands) != 0 {
		t.Errorf("Expected no commands, got %+v", out.commands)
	}
}

func TestMuteToggleSequence(t *testing.T) {
	eng, out := newEngine(t, map[string]mapping.Binding{
		"144_32": mapping.NewBinding(control.ChannelTarget(3), control.TypeMute),
	})

	press := control.Event{Key: "144_32", Kind: control.KindPress}
	if err := eng.Handle(press); err != nil {
		t.Fatal(err)
	}
	if err := eng.Handle(press); err != nil {
		t.Fatal(err)
	}

	if len(out.commands) != 2 {
		t.Fatalf("Expected 2 commands, got %d", len(out.commands))
	}
	first, second := out.commands[0], out.commands[1]
	if first.typ != control.TypeMute || first.address != control.ChannelTarget(3) || !first.on {
		t.Errorf("First press: got %+v, want mute on for channel 3", first)
	}
	if second.on {
		t.Errorf("Second press: got %+v, want mute off", second)
	}
}

func TestToggleIgnoresReleaseAndValues(t *testing.T) {
	eng, out := newEngine(t, map[string]mapping.Binding{
		"144_32": mapping.NewBinding(control.ChannelTarget(3), control.TypeSolo),
	})
	if err := eng.Handle(control.Event{Key: "144_32", Kind: control.KindRelease}); err != nil {
		t.Fatal(err)
	}
	if err := eng.Handle(control.Event{Key: "144_32", Kind: control.KindAbsolute, Level: 127}); err != nil {
		t.Fatal(err)
	}
	if len(out.commands) != 0 {
		t.Errorf("Expected no commands, got %+v", out.commands)
	}

	// Non-press events must not have flipped the state either.
	if err := eng.Handle(control.Event{Key: "144_32", Kind: control.KindPress}); err != nil {
		t.Fatal(err)
	}
	if len(out.commands) != 1 || !out.commands[0].on {
		t.Errorf("First press should turn solo on, got %+v", out.commands)
	}
}

func TestIndependentToggleStatePerControl(t *testing.T) {
	eng, out := newEngine(t, map[string]mapping.Binding{
		"144_32": mapping.NewBinding(control.ChannelTarget(3), control.TypeMute),
		"144_33": mapping.NewBinding(control.ChannelTarget(3), control.TypeSolo),
	})

	if err := eng.Handle(control.Event{Key: "144_32", Kind: control.KindPress}); err != nil {
		t.Fatal(err)
	}
	if err := eng.Handle(control.Event{Key: "144_33", Kind: control.KindPress}); err != nil {
		t.Fatal(err)
	}

	if len(out.commands) != 2 {
		t.Fatalf("Expected 2 commands, got %d", len(out.commands))
	}
	if !out.commands[0].on || out.commands[0].typ != control.TypeMute {
		t.Errorf("Expected mute on, got %+v", out.commands[0])
	}
	if !out.commands[1].on || out.commands[1].typ != control.TypeSolo {
		t.Errorf("Expected solo on, got %+v", out.commands[1])
	}
}
