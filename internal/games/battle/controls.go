package battle

import (
	"github.com/vovakirdan/tank-arcade/internal/core"
	"github.com/vovakirdan/tank-arcade/internal/games/battle/sim"
)

// Direction actions in the order the simulation's controls expect.
var directionActions = [4]struct {
	action  core.Action
	control sim.Control
}{
	{core.ActionUp, sim.ControlUp},
	{core.ActionRight, sim.ControlRight},
	{core.ActionDown, sim.ControlDown},
	{core.ActionLeft, sim.ControlLeft},
}

// Controls turns per-tick input frames into key-down/key-up events.
//
// Frontends that report real key releases put them in InputFrame.Released.
// Terminals only repeat the last pressed key, so a direction that stops
// repeating for holdMs is released, and pressing a new direction alone
// releases the others.
type Controls struct {
	holdMs int
	held   map[core.PlayerID]*[4]int // ms since the direction was last seen; -1 when up
}

// NewControls creates a translator with the given hold timeout.
func NewControls(holdMs int) *Controls {
	return &Controls{holdMs: holdMs, held: make(map[core.PlayerID]*[4]int)}
}

func (c *Controls) state(seat core.PlayerID) *[4]int {
	st, ok := c.held[seat]
	if !ok {
		st = &[4]int{-1, -1, -1, -1}
		c.held[seat] = st
	}
	return st
}

// Translate produces the events for one tick of tickMs milliseconds.
func (c *Controls) Translate(in core.MultiInputFrame, seats []core.PlayerID, tickMs int) []sim.ControlEvent {
	var events []sim.ControlEvent
	for _, seat := range seats {
		frame := in.Player(seat)
		st := c.state(seat)

		if frame.Has(core.ActionFire) {
			events = append(events, sim.ControlEvent{Seat: seat, Control: sim.ControlFire, Down: true})
		}

		pressedAny := false
		for _, da := range directionActions {
			if frame.Has(da.action) {
				pressedAny = true
			}
		}

		for i, da := range directionActions {
			switch {
			case frame.Has(da.action):
				if st[i] < 0 {
					events = append(events, sim.ControlEvent{Seat: seat, Control: da.control, Down: true})
				}
				st[i] = 0
			case st[i] < 0:
			case frame.WasReleased(da.action) || pressedAny:
				st[i] = -1
				events = append(events, sim.ControlEvent{Seat: seat, Control: da.control, Down: false})
			default:
				st[i] += tickMs
				if c.holdMs > 0 && st[i] >= c.holdMs {
					st[i] = -1
					events = append(events, sim.ControlEvent{Seat: seat, Control: da.control, Down: false})
				}
			}
		}
	}
	return events
}

// Reset forgets every held direction.
func (c *Controls) Reset() {
	clear(c.held)
}
