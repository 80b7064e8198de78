// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// LightcycleConfig contains all configuration for Laser Bikes.
type LightcycleConfig struct {
	Grid       LightcycleGrid   `yaml:"grid"`
	Bikes      LightcycleBikes  `yaml:"bikes"`
	Round      LightcycleRound  `yaml:"round"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LightcycleGrid sizes the arena. A zero width or height derives the
// dimension from the screen size divided by the block size.
type LightcycleGrid struct {
	BlockSize int `yaml:"block_size"` // Screen cells per grid cell
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
}

// LightcycleBikes defines bike movement.
type LightcycleBikes struct {
	MoveInterval  float64 `yaml:"move_interval"`  // Seconds per cell
	StopThreshold float64 `yaml:"stop_threshold"` // Intervals at or above this stop a bike
	BrakeRate     float64 `yaml:"brake_rate"`     // Throttle change per second while braking or releasing
}

// LightcycleRound defines round presentation.
type LightcycleRound struct {
	FlashSeconds float64 `yaml:"flash_seconds"` // How long the crash cell flashes
}

// BlocksConfig contains all configuration for Blocks.
type BlocksConfig struct {
	Well       BlocksWell       `yaml:"well"`
	Timing     BlocksTiming     `yaml:"timing"`
	Scoring    BlocksScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BlocksWell sizes the play-field.
type BlocksWell struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BlocksTiming defines piece fall speed in seconds per row.
type BlocksTiming struct {
	FallInterval     float64 `yaml:"fall_interval"`
	MinFallInterval  float64 `yaml:"min_fall_interval"`
	SoftDropInterval float64 `yaml:"soft_drop_interval"`
}

// BlocksScoring defines points per clear. Line points are indexed by the
// number of rows cleared at once, minus one, and multiplied by the level.
type BlocksScoring struct {
	LinePoints    []int `yaml:"line_points"`
	LinesPerLevel int   `yaml:"lines_per_level"`
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
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name yields "", true.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
