package sim

import (
	"strconv"

	"github.com/vovakirdan/tank-arcade/internal/core"
)

// EnemyKind is the enemy tank variant.
type EnemyKind int

const (
	EnemyBasic EnemyKind = iota
	EnemyFast
	EnemyPower
	EnemyArmor
	EnemyKindCount
)

// String returns the enemy kind name.
func (k EnemyKind) String() string {
	switch k {
	case EnemyBasic:
		return "basic"
	case EnemyFast:
		return "fast"
	case EnemyPower:
		return "power"
	case EnemyArmor:
		return "armor"
	default:
		return "?"
	}
}

// Points is the score awarded for destroying an enemy of this kind.
func (k EnemyKind) Points() int {
	return (int(k) + 1) * 100
}

// stageComposition lists basic, fast, power and armor counts per stage.
var stageComposition = [...][EnemyKindCount]int{
	{18, 2, 0, 0}, {14, 4, 0, 2}, {14, 4, 0, 2}, {2, 5, 10, 3}, {8, 5, 5, 2},
	{9, 2, 7, 2}, {7, 4, 6, 3}, {7, 4, 7, 2}, {6, 4, 7, 3}, {12, 2, 4, 2},
	{5, 5, 4, 6}, {0, 6, 8, 6}, {0, 8, 8, 4}, {0, 4, 10, 6}, {0, 2, 10, 8},
	{16, 2, 0, 2}, {8, 2, 8, 2}, {2, 8, 6, 4}, {4, 4, 4, 8}, {2, 8, 2, 8},
	{6, 2, 8, 4}, {6, 8, 2, 4}, {0, 10, 4, 6}, {10, 4, 4, 2}, {0, 8, 2, 10},
	{4, 6, 4, 6}, {2, 8, 2, 8}, {15, 2, 2, 1}, {0, 4, 10, 6}, {4, 8, 4, 4},
	{3, 8, 3, 6}, {6, 4, 2, 8}, {4, 4, 4, 8}, {0, 10, 4, 6}, {0, 6, 4, 10},
}

// Composition returns the enemy counts for a stage. Stages past the end of
// the table reuse its last row.
func Composition(stage int) [EnemyKindCount]int {
	if stage < 1 {
		stage = 1
	}
	if stage > len(stageComposition) {
		stage = len(stageComposition)
	}
	return stageComposition[stage-1]
}

// enemyQueue builds the shuffled spawn queue for a stage.
func enemyQueue(stage int, rng *RNG) []EnemyKind {
	counts := Composition(stage)
	var q []EnemyKind
	for kind, n := range counts {
		for range n {
			q = append(q, EnemyKind(kind))
		}
	}
	rng.Shuffle(len(q), func(i, j int) { q[i], q[j] = q[j], q[i] })
	return q
}

// Enemy spawn points along the top edge.
var enemySpawns = [3]core.Point{
	{X: 0*TileSize + 3, Y: 3},
	{X: 12*TileSize + 3, Y: 3},
	{X: 24*TileSize + 3, Y: 3},
}

// Enemy is an AI-driven tank.
type Enemy struct {
	Tank    TankState
	Kind    EnemyKind
	Carrier bool // drops a bonus when destroyed

	pathDir    Direction
	pathLeft   int
	fireQueued bool
	fireTimer  Handle
	spawnTimer Handle
}

func newEnemy(id EntityID, kind EnemyKind, pos core.Point) *Enemy {
	e := &Enemy{Kind: kind}
	e.Tank = TankState{
		ID:               id,
		Side:             SideEnemy,
		Rect:             core.NewRect(pos.X, pos.Y, TankSize, TankSize),
		Dir:              DirDown,
		Speed:            1,
		Health:           DefaultHealth,
		Status:           StatusSpawning,
		MaxActiveBullets: 1,
	}
	switch kind {
	case EnemyFast:
		e.Tank.Speed = 3
	case EnemyPower:
		e.Tank.Superpowers = 1
	case EnemyArmor:
		e.Tank.Health = 4 * DefaultHealth
	}
	e.pathDir = DirDown
	return e
}

// State implements Behavior.
func (e *Enemy) State() *TankState {
	return &e.Tank
}

// newPath picks a heading and a distance. The preferred heading is tried
// first, the reverse of it last, the other two in random order. The first
// heading with room for a step wins.
func (e *Enemy) newPath(w *World, preferred Direction) {
	order := []Direction{preferred}
	side := []Direction{(preferred + 1) % 4, (preferred + 3) % 4}
	w.rng.Shuffle(len(side), func(i, j int) { side[i], side[j] = side[j], side[i] })
	order = append(order, side...)
	order = append(order, preferred.Opposite())

	e.pathDir = preferred.Opposite()
	for _, d := range order {
		dx, dy := d.Delta()
		probe := e.Tank.Rect.Move(dx*TileSize/2, dy*TileSize/2)
		if probe.Inside(fieldRect) && probe.IntersectsAny(w.tiles.Obstacles()) < 0 {
			e.pathDir = d
			break
		}
	}
	e.pathLeft = (1 + w.rng.Intn(12)) * TileSize
}

// preferredDirection biases wandering: mostly keep going, sometimes head
// down toward the castle, occasionally pick anything.
func (e *Enemy) preferredDirection(w *World) Direction {
	switch n := w.rng.Intn(8); {
	case n < 4:
		return e.pathDir
	case n < 6:
		return DirDown
	default:
		return Directions[w.rng.Intn(4)]
	}
}

// DecideIntent continues the current path and fires when a shot is queued
// and the lane ahead is worth shooting down.
func (e *Enemy) DecideIntent(w *World) Intent {
	if e.Tank.Paused {
		return Intent{}
	}
	if e.pathLeft <= 0 {
		e.newPath(w, e.preferredDirection(w))
	}
	in := Intent{Move: true, Dir: e.pathDir}
	if e.fireQueued && e.laneOpen(w) && w.rng.Float64() < w.fireChance {
		in.Fire = true
	}
	return in
}

// Observe shortens the path, or re-plans when blocked. Bumping into a
// tank turns the enemy around.
func (e *Enemy) Observe(w *World, in Intent, r MoveResult) {
	if in.Fire && fire(w, &e.Tank) {
		e.fireQueued = false
	}
	if !in.Move {
		return
	}
	if r.Bonus != nil {
		w.discardBonus(r.Bonus)
	}
	switch r.Blocker {
	case BlockNone:
		e.pathLeft -= e.Tank.Speed
	case BlockTank:
		e.newPath(w, e.pathDir.Opposite())
	default:
		e.newPath(w, e.preferredDirection(w))
	}
}

// laneOpen walks the bullet path ahead. The lane is closed by a fellow
// enemy or by steel the bullet cannot break; anything else is fair game.
func (e *Enemy) laneOpen(w *World) bool {
	probe := newBullet(&e.Tank)
	dx, dy := probe.Dir.Delta()
	for r := probe.Rect; r.Inside(fieldRect); r = r.Move(dx*TileSize/2, dy*TileSize/2) {
		for _, p := range w.players {
			if p.Tank.Status == StatusAlive && r.Intersects(p.Tank.Rect) {
				return true
			}
		}
		for _, o := range w.enemies {
			if o != e && o.Tank.Status != StatusDead && r.Intersects(o.Tank.Rect) {
				return false
			}
		}
		for _, i := range r.IntersectsAll(w.tiles.Obstacles()) {
			c, ok := CellAt(w.tiles.Obstacles()[i].TopLeft())
			if ok && w.tiles.Kind(c) == TileSteel && probe.Power < 2 {
				return false
			}
		}
	}
	return true
}

// killLabel is the floating score shown where an enemy died.
func killLabel(k EnemyKind) string {
	return strconv.Itoa(k.Points())
}

// ReservedAreas returns the rectangles a stage must keep free of blocking
// terrain: the enemy spawn points, the player starts and the castle.
func ReservedAreas() []core.Rect {
	out := make([]core.Rect, 0, len(enemySpawns)+len(playerStarts)+1)
	for _, p := range enemySpawns {
		out = append(out, core.NewRect(p.X, p.Y, TankSize, TankSize))
	}
	for _, seat := range []core.PlayerID{core.Player1, core.Player2} {
		p := playerStarts[seat]
		out = append(out, core.NewRect(p.X, p.Y, TankSize, TankSize))
	}
	return append(out, CastleRect)
}
