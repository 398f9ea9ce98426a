package sim

import "github.com/vovakirdan/tank-arcade/internal/core"

// EntityID identifies any world object that timers may refer to.
type EntityID uint64

// Explosion is a short visual animation. It has no gameplay effect.
type Explosion struct {
	ID     EntityID
	Pos    core.Point // top-left of the 32x32 drawn area
	Frames int
	Frame  int
	Active bool
}

// Done reports whether the animation has finished.
func (e *Explosion) Done() bool {
	return e == nil || !e.Active
}

// advance moves to the next frame, finishing after the last one.
func (e *Explosion) advance() {
	if e.Frame < e.Frames-1 {
		e.Frame++
		return
	}
	e.Active = false
}

// Label is a floating text such as the points awarded for a kill.
type Label struct {
	ID     EntityID
	Pos    core.Point
	Text   string
	Active bool
}

// CastleState is the objective's life-cycle.
type CastleState int

const (
	CastleStanding CastleState = iota
	CastleExploding
	CastleDestroyed
)

// CastleRect is the fixed position of the objective.
var CastleRect = core.NewRect(12*TileSize, 24*TileSize, 32, 32)

// Castle is the objective the players defend. Active gates game over.
type Castle struct {
	Rect      core.Rect
	State     CastleState
	Active    bool
	explosion EntityID
}

// NewCastle returns a standing castle.
func NewCastle() *Castle {
	c := &Castle{Rect: CastleRect}
	c.Rebuild()
	return c
}

// Rebuild restores the castle for a new stage.
func (c *Castle) Rebuild() {
	c.State = CastleStanding
	c.Active = true
	c.explosion = 0
}

// BonusKind enumerates pickups.
type BonusKind int

const (
	BonusGrenade BonusKind = iota
	BonusHelmet
	BonusShovel
	BonusStar
	BonusTank
	BonusClock
	bonusKindCount
)

// String returns the bonus name.
func (k BonusKind) String() string {
	switch k {
	case BonusGrenade:
		return "grenade"
	case BonusHelmet:
		return "helmet"
	case BonusShovel:
		return "shovel"
	case BonusStar:
		return "star"
	case BonusTank:
		return "tank"
	case BonusClock:
		return "clock"
	default:
		return "?"
	}
}

// BonusSize is the edge of a bonus box in pixels.
const BonusSize = 32

// Bonus is a stationary pickup. It blinks while waiting and expires.
type Bonus struct {
	ID      EntityID
	Kind    BonusKind
	Rect    core.Rect
	Active  bool
	Visible bool

	blinkTimer  Handle
	expireTimer Handle
}
