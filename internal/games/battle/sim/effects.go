package sim

import (
	"fmt"

	"github.com/vovakirdan/tank-arcade/internal/core"
)

// applyEffect runs one fired timer. An effect whose target has left the
// world reports ErrUnknownTarget so the scheduler evicts it.
func (w *World) applyEffect(e Effect) error {
	switch e.Kind {
	case EffectSpawnEnemy:
		w.spawnEnemy()

	case EffectExplosionFrame:
		x := w.explosion(e.Target)
		if x == nil {
			return fmt.Errorf("%w: explosion %d", ErrUnknownTarget, e.Target)
		}
		x.advance()

	case EffectEndSpawning:
		en := w.enemy(e.Target)
		if en == nil {
			return fmt.Errorf("%w: enemy %d", ErrUnknownTarget, e.Target)
		}
		if en.Tank.Status == StatusSpawning {
			en.Tank.Status = StatusAlive
		}

	case EffectShieldOff:
		t := w.tank(e.Target)
		if t == nil {
			return fmt.Errorf("%w: tank %d", ErrUnknownTarget, e.Target)
		}
		t.Shielded = false
		t.shieldTimer = 0

	case EffectFortressRevert:
		w.tiles.BuildFortress(TileBrick)
		w.fortressTimer = 0

	case EffectUnfreeze:
		w.setFreeze(false)
		w.freezeTimer = 0

	case EffectUnparalyse:
		p := w.player(e.Target)
		if p == nil {
			return fmt.Errorf("%w: player %d", ErrUnknownTarget, e.Target)
		}
		p.Tank.Paralysed = false
		p.paralyseTmr = 0

	case EffectEnemyFire:
		en := w.enemy(e.Target)
		if en == nil {
			return fmt.Errorf("%w: enemy %d", ErrUnknownTarget, e.Target)
		}
		en.fireQueued = true

	case EffectBonusBlink:
		b := w.bonus(e.Target)
		if b == nil {
			return fmt.Errorf("%w: bonus %d", ErrUnknownTarget, e.Target)
		}
		b.Visible = !b.Visible

	case EffectBonusExpire:
		b := w.bonus(e.Target)
		if b == nil {
			return fmt.Errorf("%w: bonus %d", ErrUnknownTarget, e.Target)
		}
		w.discardBonus(b)

	case EffectLabelExpire:
		l := w.label(e.Target)
		if l == nil {
			return fmt.Errorf("%w: label %d", ErrUnknownTarget, e.Target)
		}
		l.Active = false

	case EffectWaterToggle:
		w.waterFrame = 1 - w.waterFrame

	case EffectStageEnd:
		o := Outcome(e.Value)
		if o == OutcomeStageCleared && w.gameOver {
			return nil
		}
		w.outcome = o
		w.logger.Debug("stage outcome", "stage", w.stage, "outcome", o)

	default:
		return fmt.Errorf("sim: unhandled effect %v", e.Kind)
	}
	return nil
}

func (w *World) tank(id EntityID) *TankState {
	for _, t := range w.tanks() {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeStageCleared:
		return "stage-cleared"
	case OutcomeGameOver:
		return "game-over"
	default:
		return "none"
	}
}

// spawnBonus drops a random bonus somewhere on the field. Only one bonus is
// on the field at a time; a new one replaces the old.
func (w *World) spawnBonus() {
	for _, b := range w.bonuses {
		if b.Active {
			w.discardBonus(b)
		}
	}
	kind := BonusKind(w.rng.Intn(int(bonusKindCount)))
	col := w.rng.Intn(GridSize - 1)
	row := w.rng.Intn(GridSize - 1)
	b := &Bonus{
		ID:      w.newID(),
		Kind:    kind,
		Rect:    core.NewRect(col*TileSize, row*TileSize, BonusSize, BonusSize),
		Active:  true,
		Visible: true,
	}
	b.blinkTimer = w.timers.Schedule(w.cfg.Durations.BonusBlinkMs, Effect{Kind: EffectBonusBlink, Target: b.ID}, RepeatForever)
	b.expireTimer = w.timers.Schedule(w.cfg.Durations.BonusLifetimeMs, Effect{Kind: EffectBonusExpire, Target: b.ID}, 1)
	w.bonuses = append(w.bonuses, b)
	w.logger.Debug("bonus dropped", "kind", kind, "col", col, "row", row)
}

// discardBonus takes a bonus off the field and stops its timers.
func (w *World) discardBonus(b *Bonus) {
	b.Active = false
	b.Visible = false
	w.timers.Cancel(b.blinkTimer)
	w.timers.Cancel(b.expireTimer)
}

// triggerBonus applies a collected bonus to p. Every pickup is worth 500.
func (w *World) triggerBonus(b *Bonus, p *Player) {
	w.emit(SoundBonus)
	p.Score += 500
	p.Trophies.Bonus++

	switch b.Kind {
	case BonusGrenade:
		for _, e := range w.enemies {
			if e.Tank.Status == StatusAlive || e.Tank.Status == StatusSpawning {
				w.explodeTank(&e.Tank)
			}
		}
	case BonusHelmet:
		w.shield(&p.Tank, w.cfg.Durations.ShieldMs)
	case BonusShovel:
		w.tiles.BuildFortress(TileSteel)
		w.timers.Cancel(w.fortressTimer)
		w.fortressTimer = w.timers.Schedule(w.cfg.Durations.FortressMs, Effect{Kind: EffectFortressRevert}, 1)
	case BonusStar:
		p.Tank.Superpowers++
		if p.Tank.Superpowers == 2 {
			p.Tank.MaxActiveBullets = 2
		}
	case BonusTank:
		p.Lives++
	case BonusClock:
		w.setFreeze(true)
		w.timers.Cancel(w.freezeTimer)
		w.freezeTimer = w.timers.Schedule(w.cfg.Durations.FreezeMs, Effect{Kind: EffectUnfreeze}, 1)
	}

	w.discardBonus(b)
	w.addLabel(b.Rect.TopLeft(), "500")
	w.logger.Debug("bonus collected", "seat", p.Seat, "kind", b.Kind)
}
