package sim

import "github.com/vovakirdan/tank-arcade/internal/core"

// Control is one of the five logical player actions.
type Control int

const (
	ControlFire Control = iota
	ControlUp
	ControlRight
	ControlDown
	ControlLeft
)

// direction maps a movement control to its heading.
func (c Control) direction() (Direction, bool) {
	switch c {
	case ControlUp:
		return DirUp, true
	case ControlRight:
		return DirRight, true
	case ControlDown:
		return DirDown, true
	case ControlLeft:
		return DirLeft, true
	default:
		return 0, false
	}
}

// ControlEvent is a key transition already resolved to a player seat.
type ControlEvent struct {
	Seat    core.PlayerID
	Control Control
	Down    bool
}

// Trophies counts what a player collected during the current stage.
type Trophies struct {
	Kills [EnemyKindCount]int
	Bonus int
}

// TotalKills sums the kills of every enemy kind.
func (t Trophies) TotalKills() int {
	n := 0
	for _, k := range t.Kills {
		n += k
	}
	return n
}

// Player is an input-driven tank with lives and score.
type Player struct {
	Tank     TankState
	Seat     core.PlayerID
	Lives    int
	Score    int
	Kills    int // enemies destroyed over the whole game
	Trophies Trophies
	Out      bool // no lives left

	start        core.Point
	pressed      [4]bool // indexed by Direction
	pendingBonus *Bonus
	paralyseTmr  Handle
}

// Player spawn points at the bottom of the field, either side of the castle.
var playerStarts = map[core.PlayerID]core.Point{
	core.Player1: {X: 8*TileSize + (2*TileSize-TankSize)/2, Y: 24*TileSize + (2*TileSize-TankSize)/2},
	core.Player2: {X: 16*TileSize + (2*TileSize-TankSize)/2, Y: 24*TileSize + (2*TileSize-TankSize)/2},
}

func newPlayer(id EntityID, seat core.PlayerID, lives, speed int) *Player {
	p := &Player{
		Seat:  seat,
		Lives: lives,
		start: playerStarts[seat],
	}
	p.Tank = TankState{
		ID:    id,
		Side:  SidePlayer,
		Speed: speed,
	}
	p.reset()
	return p
}

// reset puts the tank back at its start point with default stats.
func (p *Player) reset() {
	t := &p.Tank
	t.Rect = core.NewRect(p.start.X, p.start.Y, TankSize, TankSize)
	rotate(t, DirUp)
	t.Superpowers = 0
	t.MaxActiveBullets = 1
	t.Health = DefaultHealth
	t.Paralysed = false
	t.Paused = false
	t.Status = StatusAlive
	t.explosion = 0
	p.pressed = [4]bool{}
	p.pendingBonus = nil
}

// State implements Behavior.
func (p *Player) State() *TankState {
	return &p.Tank
}

// Pressed reports whether a direction key is held.
func (p *Player) Pressed(d Direction) bool {
	return p.pressed[d]
}

// handle applies a key transition. Fire acts on key-down immediately.
func (p *Player) handle(w *World, ev ControlEvent) {
	if ev.Control == ControlFire {
		if ev.Down && fire(w, &p.Tank) {
			w.emit(SoundFire)
		}
		return
	}
	if d, ok := ev.Control.direction(); ok {
		p.pressed[d] = ev.Down
	}
}

// DecideIntent picks the held direction with priority up, right, down, left.
func (p *Player) DecideIntent(_ *World) Intent {
	for _, d := range Directions {
		if p.pressed[d] {
			return Intent{Move: true, Dir: d}
		}
	}
	return Intent{}
}

// Observe records a bonus touched during the move for the loop to apply.
func (p *Player) Observe(_ *World, _ Intent, r MoveResult) {
	if r.Bonus != nil {
		p.pendingBonus = r.Bonus
	}
}
