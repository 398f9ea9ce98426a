package battle

import (
	"testing"

	"github.com/vovakirdan/tank-arcade/internal/core"
	"github.com/vovakirdan/tank-arcade/internal/games/battle/sim"
)

var oneSeat = []core.PlayerID{core.Player1}

func frameWith(seat core.PlayerID, pressed []core.Action, released ...core.Action) core.MultiInputFrame {
	f := core.NewInputFrame()
	for _, a := range pressed {
		f.Set(a)
	}
	for _, a := range released {
		f.Release(a)
	}
	m := core.NewMultiInputFrame()
	m.SetPlayer(seat, f)
	return m
}

func idle() core.MultiInputFrame {
	return core.NewMultiInputFrame()
}

func TestControlsPressOnce(t *testing.T) {
	c := NewControls(100)

	events := c.Translate(frameWith(core.Player1, []core.Action{core.ActionUp}), oneSeat, 20)
	if len(events) != 1 || events[0] != (sim.ControlEvent{Seat: core.Player1, Control: sim.ControlUp, Down: true}) {
		t.Fatalf("Translate() = %+v, expected one Up key-down", events)
	}

	// Terminal key repeat must not produce a second key-down.
	events = c.Translate(frameWith(core.Player1, []core.Action{core.ActionUp}), oneSeat, 20)
	if len(events) != 0 {
		t.Errorf("Translate() on repeat = %+v, expected none", events)
	}
}

func TestControlsHoldTimeoutReleases(t *testing.T) {
	c := NewControls(100)
	c.Translate(frameWith(core.Player1, []core.Action{core.ActionLeft}), oneSeat, 20)

	for i := range 4 {
		if events := c.Translate(idle(), oneSeat, 20); len(events) != 0 {
			t.Fatalf("tick %d: Translate() = %+v, expected none before timeout", i, events)
		}
	}
	events := c.Translate(idle(), oneSeat, 20)
	if len(events) != 1 || events[0].Control != sim.ControlLeft || events[0].Down {
		t.Errorf("Translate() at timeout = %+v, expected Left key-up", events)
	}
}

func TestControlsExplicitRelease(t *testing.T) {
	c := NewControls(0)
	c.Translate(frameWith(core.Player1, []core.Action{core.ActionDown}), oneSeat, 20)

	// Without a hold timeout the key stays down until released.
	for range 10 {
		if events := c.Translate(idle(), oneSeat, 20); len(events) != 0 {
			t.Fatalf("Translate() = %+v, expected key to stay down", events)
		}
	}
	events := c.Translate(frameWith(core.Player1, nil, core.ActionDown), oneSeat, 20)
	if len(events) != 1 || events[0].Control != sim.ControlDown || events[0].Down {
		t.Errorf("Translate() = %+v, expected Down key-up", events)
	}
}

func TestControlsNewDirectionReleasesOld(t *testing.T) {
	c := NewControls(100)
	c.Translate(frameWith(core.Player1, []core.Action{core.ActionUp}), oneSeat, 20)

	events := c.Translate(frameWith(core.Player1, []core.Action{core.ActionRight}), oneSeat, 20)
	expected := []sim.ControlEvent{
		{Seat: core.Player1, Control: sim.ControlUp, Down: false},
		{Seat: core.Player1, Control: sim.ControlRight, Down: true},
	}
	if len(events) != len(expected) {
		t.Fatalf("Translate() = %+v, expected %+v", events, expected)
	}
	for i := range expected {
		if events[i] != expected[i] {
			t.Errorf("event %d = %+v, expected %+v", i, events[i], expected[i])
		}
	}
}

func TestControlsFireEveryPress(t *testing.T) {
	c := NewControls(100)
	for i := range 3 {
		events := c.Translate(frameWith(core.Player1, []core.Action{core.ActionFire}), oneSeat, 20)
		if len(events) != 1 || events[0].Control != sim.ControlFire || !events[0].Down {
			t.Errorf("press %d: Translate() = %+v, expected fire", i, events)
		}
	}
}

func TestControlsSeatsAreIndependent(t *testing.T) {
	c := NewControls(100)
	seats := []core.PlayerID{core.Player1, core.Player2}

	in := frameWith(core.Player2, []core.Action{core.ActionLeft})
	p1 := core.NewInputFrame()
	p1.Set(core.ActionUp)
	in.SetPlayer(core.Player1, p1)

	events := c.Translate(in, seats, 20)
	if len(events) != 2 {
		t.Fatalf("Translate() = %+v, expected two events", events)
	}
	if events[0].Seat != core.Player1 || events[0].Control != sim.ControlUp {
		t.Errorf("events[0] = %+v, expected P1 Up", events[0])
	}
	if events[1].Seat != core.Player2 || events[1].Control != sim.ControlLeft {
		t.Errorf("events[1] = %+v, expected P2 Left", events[1])
	}

	c.Reset()
	if events := c.Translate(idle(), seats, 20); len(events) != 0 {
		t.Errorf("Translate() after Reset = %+v, expected none", events)
	}
}
