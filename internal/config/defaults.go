package config

import (
	_ "embed"
)

//go:embed defaults/battle.yaml
var defaultBattleYAML []byte

// DefaultBattleConfig returns the built-in configuration. It mirrors
// defaults/battle.yaml and is used when that file cannot be parsed.
func DefaultBattleConfig() BattleConfig {
	return BattleConfig{
		Field: FieldConfig{
			Size:     416,
			TileSize: 16,
		},
		Gameplay: GameplayConfig{
			StartStage:   1,
			FriendlyFire: false,
			Paralysis:    true,
			SnapOnTurn:   true,
			BonusCarrier: 5,
		},
		Player: PlayerConfig{
			Lives:           3,
			Speed:           2,
			RespawnShieldMs: 4000,
		},
		Enemy: EnemyConfig{
			MaxActive:       4,
			SpawnIntervalMs: 3000,
			FireIntervalMs:  1000,
			FireChance:      0.05,
		},
		Durations: DurationsConfig{
			ShieldMs:         10000,
			FortressMs:       10000,
			FreezeMs:         10000,
			ParalysisMs:      10000,
			SpawningMs:       1000,
			StageEndMs:       3000,
			BonusBlinkMs:     500,
			BonusLifetimeMs:  10000,
			LabelMs:          500,
			WaterFrameMs:     400,
			ExplosionFrameMs: 100,
		},
		Input: InputConfig{
			HoldReleaseMs: 160,
			Player1: KeyBindings{
				Fire:  "space",
				Up:    "up",
				Right: "right",
				Down:  "down",
				Left:  "left",
			},
			Player2: KeyBindings{
				Fire:  "f",
				Up:    "w",
				Right: "d",
				Down:  "s",
				Left:  "a",
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "stage",
				MaxAt: 35,
			},
			Scaling: ScalingConfig{
				FireChanceBonus:        0.10,
				SpawnIntervalReduction: 1500,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultBattleYAML
}
