package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects values the simulation cannot run with: non-positive
// speeds, counts and timer lengths, and probabilities outside [0, 1].
func (c BattleConfig) Validate() error {
	positive := []struct {
		name string
		val  int
	}{
		{"field.size", c.Field.Size},
		{"field.tile_size", c.Field.TileSize},
		{"player.lives", c.Player.Lives},
		{"player.speed", c.Player.Speed},
		{"player.respawn_shield_ms", c.Player.RespawnShieldMs},
		{"enemy.max_active", c.Enemy.MaxActive},
		{"enemy.spawn_interval_ms", c.Enemy.SpawnIntervalMs},
		{"enemy.fire_interval_ms", c.Enemy.FireIntervalMs},
		{"durations.shield_ms", c.Durations.ShieldMs},
		{"durations.fortress_ms", c.Durations.FortressMs},
		{"durations.freeze_ms", c.Durations.FreezeMs},
		{"durations.paralysis_ms", c.Durations.ParalysisMs},
		{"durations.spawning_ms", c.Durations.SpawningMs},
		{"durations.stage_end_ms", c.Durations.StageEndMs},
		{"durations.bonus_blink_ms", c.Durations.BonusBlinkMs},
		{"durations.bonus_lifetime_ms", c.Durations.BonusLifetimeMs},
		{"durations.label_ms", c.Durations.LabelMs},
		{"durations.water_frame_ms", c.Durations.WaterFrameMs},
		{"durations.explosion_frame_ms", c.Durations.ExplosionFrameMs},
	}
	for _, f := range positive {
		if f.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, f.name, f.val)
		}
	}

	nonNegative := []struct {
		name string
		val  int
	}{
		{"gameplay.start_stage", c.Gameplay.StartStage},
		{"gameplay.bonus_carrier", c.Gameplay.BonusCarrier},
		{"input.hold_release_ms", c.Input.HoldReleaseMs},
	}
	for _, f := range nonNegative {
		if f.val < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidConfig, f.name, f.val)
		}
	}

	if c.Enemy.FireChance < 0 || c.Enemy.FireChance > 1 {
		return fmt.Errorf("%w: enemy.fire_chance must be within [0, 1], got %g", ErrInvalidConfig, c.Enemy.FireChance)
	}
	return nil
}
