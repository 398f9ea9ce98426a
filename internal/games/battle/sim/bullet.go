package sim

import "github.com/vovakirdan/tank-arcade/internal/core"

// BulletState is the bullet life-cycle. Removed is terminal.
type BulletState int

const (
	BulletActive BulletState = iota
	BulletExploding
	BulletRemoved
)

// Bullet is a projectile fired by a tank.
type Bullet struct {
	ID        EntityID
	Rect      core.Rect
	Dir       Direction
	Speed     int
	Damage    int
	Power     int // 2 destroys steel
	OwnerSide Side
	Owner     EntityID
	State     BulletState

	explosion EntityID
}

// newBullet builds a bullet at the muzzle of t. Superpowers speed the
// bullet up and, past the second star, let it break steel.
func newBullet(t *TankState) *Bullet {
	x, y := t.Rect.X, t.Rect.Y
	var r core.Rect
	switch t.Dir {
	case DirUp:
		r = core.NewRect(x+11, y-8, 6, 8)
	case DirRight:
		r = core.NewRect(x+26, y+11, 8, 6)
	case DirDown:
		r = core.NewRect(x+11, y+26, 6, 8)
	default:
		r = core.NewRect(x-8, y+11, 8, 6)
	}

	b := &Bullet{
		Rect:      r,
		Dir:       t.Dir,
		Speed:     BulletSpeed,
		Damage:    DefaultHealth,
		Power:     1,
		OwnerSide: t.Side,
		Owner:     t.ID,
		State:     BulletActive,
	}
	if t.Superpowers > 0 {
		b.Speed = FastBullet
	}
	if t.Superpowers > 2 {
		b.Power = 2
	}
	return b
}

// explodeBullet starts the two-frame terrain explosion.
func (w *World) explodeBullet(b *Bullet) {
	if b.State != BulletActive {
		return
	}
	b.State = BulletExploding
	b.explosion = w.spawnExplosion(b.Rect, 2).ID
}

// updateBullet advances one bullet by a tick and resolves its collisions
// in priority order: field edge, terrain, bullets, players, enemies, castle.
// The first hit ends the bullet's tick.
func (w *World) updateBullet(b *Bullet) {
	if b.State == BulletExploding && w.explosion(b.explosion).Done() {
		b.State = BulletRemoved
		return
	}
	if b.State != BulletActive {
		return
	}

	dx, dy := b.Dir.Delta()
	b.Rect = b.Rect.Move(dx*b.Speed, dy*b.Speed)
	if !b.Rect.Inside(fieldRect) {
		if b.OwnerSide == SidePlayer {
			w.emit(SoundSteel)
		}
		w.explodeBullet(b)
		return
	}

	// One bullet may break two adjacent tiles but explodes once.
	rects := w.tiles.Obstacles()
	stopped := false
	for _, i := range b.Rect.IntersectsAll(rects) {
		hit, kind := w.tiles.HitTile(rects[i].TopLeft(), b.Power)
		if hit {
			stopped = true
			if b.OwnerSide == SidePlayer {
				if kind == TileBrick {
					w.emit(SoundBrick)
				} else {
					w.emit(SoundSteel)
				}
			}
		}
	}
	if stopped {
		w.explodeBullet(b)
		return
	}

	for _, other := range w.bullets {
		if other == b || other.State != BulletActive || other.OwnerSide == b.OwnerSide {
			continue
		}
		if b.Rect.Intersects(other.Rect) {
			b.State = BulletRemoved
			other.State = BulletRemoved
			w.spawnExplosion(b.Rect, 2)
			w.spawnExplosion(other.Rect, 2)
			return
		}
	}

	for _, p := range w.players {
		if p.Tank.Status == StatusAlive && b.Rect.Intersects(p.Tank.Rect) {
			if bulletImpact(w, &p.Tank, b) {
				b.State = BulletRemoved
				return
			}
		}
	}
	for _, e := range w.enemies {
		if e.Tank.Status == StatusAlive && b.Rect.Intersects(e.Tank.Rect) {
			if bulletImpact(w, &e.Tank, b) {
				b.State = BulletRemoved
				return
			}
		}
	}

	if w.castle.Active && b.Rect.Intersects(w.castle.Rect) {
		w.destroyCastle()
		b.State = BulletRemoved
	}
}
