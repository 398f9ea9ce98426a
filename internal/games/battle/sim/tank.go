package sim

import "github.com/vovakirdan/tank-arcade/internal/core"

// Direction is a tank or bullet heading.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Directions lists the headings clockwise from up.
var Directions = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// Delta returns the unit step for the heading.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	default:
		return -1, 0
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Vertical reports whether the heading moves along the y axis.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// String returns the heading name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "left"
	}
}

// Side tells players and enemies apart for friendly fire.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// TankStatus is the tank life-cycle.
type TankStatus int

const (
	StatusSpawning TankStatus = iota
	StatusAlive
	StatusExploding
	StatusDead
)

// String returns the status name.
func (s TankStatus) String() string {
	switch s {
	case StatusSpawning:
		return "spawning"
	case StatusAlive:
		return "alive"
	case StatusExploding:
		return "exploding"
	default:
		return "dead"
	}
}

// Tank geometry and defaults.
const (
	TankSize      = 26
	DefaultHealth = 100
	BulletSpeed   = 5
	FastBullet    = 8
)

// TankState is the data shared by players and enemies. The movement,
// firing and impact rules operate on it as free functions.
type TankState struct {
	ID               EntityID
	Side             Side
	Rect             core.Rect
	Dir              Direction
	Speed            int
	Health           int
	Status           TankStatus
	Shielded         bool
	Paused           bool // frozen by the clock bonus: no movement, no firing
	Paralysed        bool // hit by a team mate: no movement
	Superpowers      int
	MaxActiveBullets int

	explosion   EntityID
	shieldTimer Handle
}

// Intent is what a tank wants to do this tick.
type Intent struct {
	Move bool
	Dir  Direction
	Fire bool
}

// Blocker says what stopped a movement attempt.
type Blocker int

const (
	BlockNone Blocker = iota
	BlockBounds
	BlockObstacle
	BlockTank
)

// MoveResult reports the outcome of a movement attempt.
type MoveResult struct {
	Moved   bool
	Blocker Blocker
	Bonus   *Bonus // bonus overlapped by the new position, if any
}

// Behavior decides what a tank does each tick. Players read controls,
// enemies run their wandering policy.
type Behavior interface {
	State() *TankState
	DecideIntent(w *World) Intent
	Observe(w *World, intent Intent, result MoveResult)
}

// rotate changes the heading. The position never changes.
func rotate(t *TankState, d Direction) {
	t.Dir = d
}

// snapToLattice aligns the cross-axis coordinate to the 8px lattice the
// spawn points sit on (16k+3).
func snapToLattice(r core.Rect, d Direction) core.Rect {
	if d.Vertical() {
		r.X = core.Nearest(r.X-3, 8) + 3
	} else {
		r.Y = core.Nearest(r.Y-3, 8) + 3
	}
	return r
}

// probeMove checks whether the tank can occupy target.
func probeMove(w *World, t *TankState, target core.Rect) Blocker {
	if !target.Inside(fieldRect) {
		return BlockBounds
	}
	if target.IntersectsAny(w.tiles.Obstacles()) >= 0 {
		return BlockObstacle
	}
	for _, other := range w.tanks() {
		if other.ID == t.ID || other.Status == StatusDead {
			continue
		}
		if target.Intersects(other.Rect) {
			return BlockTank
		}
	}
	return BlockNone
}

// tryMove steps the tank by its speed in direction d. When the tank has
// just switched axis and snap is set, a lattice-aligned step is tried
// first. A rejected move leaves the position unchanged. Touching a bonus
// never blocks.
func tryMove(w *World, t *TankState, d Direction, snap bool) MoveResult {
	dx, dy := d.Delta()
	plain := t.Rect.Move(dx*t.Speed, dy*t.Speed)

	target := plain
	blocker := BlockNone
	if snap {
		snapped := snapToLattice(t.Rect, d).Move(dx*t.Speed, dy*t.Speed)
		if snapped != plain && probeMove(w, t, snapped) == BlockNone {
			target = snapped
		} else {
			blocker = probeMove(w, t, plain)
		}
	} else {
		blocker = probeMove(w, t, plain)
	}
	if blocker != BlockNone {
		return MoveResult{Blocker: blocker}
	}

	res := MoveResult{Moved: true}
	for _, b := range w.bonuses {
		if b.Active && target.Intersects(b.Rect) {
			res.Bonus = b
			break
		}
	}
	t.Rect = target
	return res
}

// activeBullets counts the bullets of a tank still in flight.
func activeBullets(w *World, owner EntityID) int {
	n := 0
	for _, b := range w.bullets {
		if b.Owner == owner && b.State == BulletActive {
			n++
		}
	}
	return n
}

// fire spawns a bullet at the muzzle when the tank is below its bullet
// cap. It reports whether a bullet was created.
func fire(w *World, t *TankState) bool {
	if t.Status != StatusAlive {
		return false
	}
	if activeBullets(w, t.ID) >= t.MaxActiveBullets {
		return false
	}
	w.addBullet(newBullet(t))
	return true
}

// bulletImpact applies a bullet hit to a tank and reports whether the
// bullet is consumed. Shields absorb everything. Hostile bullets deal
// damage. Friendly bullets pass through enemies and paralyse players.
func bulletImpact(w *World, t *TankState, b *Bullet) bool {
	if t.Shielded {
		return true
	}
	friendly := b.OwnerSide == t.Side
	if !friendly || (t.Side == SidePlayer && w.cfg.Gameplay.FriendlyFire) {
		t.Health -= b.Damage
		if t.Health <= 0 {
			w.killTank(t, b)
		}
		return true
	}
	if t.Side == SideEnemy {
		return false
	}
	if !w.cfg.Gameplay.Paralysis {
		return false
	}
	if p := w.player(t.ID); p != nil && !t.Paralysed {
		w.paralyse(p)
	}
	return true
}

// finishExplosion moves an exploding tank to Dead once its animation ends.
func finishExplosion(w *World, t *TankState) {
	if t.Status == StatusExploding && w.explosion(t.explosion).Done() {
		t.Status = StatusDead
		t.explosion = 0
	}
}
