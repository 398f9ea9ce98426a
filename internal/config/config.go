// Package config provides YAML-based game configuration loading and
// difficulty management for the tank battle.
package config

import "github.com/vovakirdan/tank-arcade/internal/core"

// BattleConfig contains all configuration for the tank battle game.
type BattleConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Durations  DurationsConfig  `yaml:"durations"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the play-field geometry in pixels.
type FieldConfig struct {
	Size     int `yaml:"size"`      // Square play-field edge (416)
	TileSize int `yaml:"tile_size"` // Grid cell edge (16)
}

// GameplayConfig defines rule switches.
type GameplayConfig struct {
	StartStage   int  `yaml:"start_stage"`
	FriendlyFire bool `yaml:"friendly_fire"` // Player bullets damage the other player
	Paralysis    bool `yaml:"paralysis"`     // Player bullets paralyse the other player
	SnapOnTurn   bool `yaml:"snap_on_turn"`  // Align to the 8px lattice when switching axis
	BonusCarrier int  `yaml:"bonus_carrier"` // One in N spawned enemies carries a bonus
}

// PlayerConfig defines player tank parameters.
type PlayerConfig struct {
	Lives           int `yaml:"lives"`
	Speed           int `yaml:"speed"`
	RespawnShieldMs int `yaml:"respawn_shield_ms"`
}

// EnemyConfig defines enemy spawning and firing parameters.
type EnemyConfig struct {
	MaxActive       int     `yaml:"max_active"`
	SpawnIntervalMs int     `yaml:"spawn_interval_ms"`
	FireIntervalMs  int     `yaml:"fire_interval_ms"`
	FireChance      float64 `yaml:"fire_chance"` // Probability of using a queued shot per tick
}

// DurationsConfig holds the lengths of every timed effect in milliseconds.
type DurationsConfig struct {
	ShieldMs         int `yaml:"shield_ms"`
	FortressMs       int `yaml:"fortress_ms"`
	FreezeMs         int `yaml:"freeze_ms"`
	ParalysisMs      int `yaml:"paralysis_ms"`
	SpawningMs       int `yaml:"spawning_ms"`
	StageEndMs       int `yaml:"stage_end_ms"`
	BonusBlinkMs     int `yaml:"bonus_blink_ms"`
	BonusLifetimeMs  int `yaml:"bonus_lifetime_ms"`
	LabelMs          int `yaml:"label_ms"`
	WaterFrameMs     int `yaml:"water_frame_ms"`
	ExplosionFrameMs int `yaml:"explosion_frame_ms"`
}

// InputConfig tunes the terminal input translation.
type InputConfig struct {
	// HoldReleaseMs is how long a direction stays held after its last
	// key repeat when the frontend cannot report key-up events.
	HoldReleaseMs int `yaml:"hold_release_ms"`

	Player1 KeyBindings `yaml:"player1"`
	Player2 KeyBindings `yaml:"player2"`
}

// KeyBindings names the key for each of a player's five controls.
type KeyBindings struct {
	Fire  string `yaml:"fire"`
	Up    string `yaml:"up"`
	Right string `yaml:"right"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
}

// Scheme converts the bindings into a lookup table.
func (b KeyBindings) Scheme() core.ControlScheme {
	return core.NewControlScheme(b.Fire, b.Up, b.Right, b.Down, b.Left)
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "stage" or "none"
	MaxAt int    `yaml:"max_at"` // Stage at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	FireChanceBonus        float64 `yaml:"fire_chance_bonus"`        // Added to fire chance at max difficulty
	SpawnIntervalReduction int     `yaml:"spawn_interval_reduction"` // Milliseconds removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
