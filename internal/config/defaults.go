package config

import (
	_ "embed"
)

//go:embed defaults/lightcycle.yaml
var defaultLightcycleYAML []byte

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultLightcycleConfig returns the default Laser Bikes configuration.
func DefaultLightcycleConfig() LightcycleConfig {
	return LightcycleConfig{
		Grid: LightcycleGrid{
			BlockSize: 1,
		},
		Bikes: LightcycleBikes{
			MoveInterval:  0.05,
			StopThreshold: 0.2,
			BrakeRate:     4.0,
		},
		Round: LightcycleRound{
			FlashSeconds: 2.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 120, // Two minutes of play
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultBlocksConfig returns the default Blocks configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Well: BlocksWell{
			Width:  10,
			Height: 20,
		},
		Timing: BlocksTiming{
			FallInterval:     0.8,
			MinFallInterval:  0.08,
			SoftDropInterval: 0.05,
		},
		Scoring: BlocksScoring{
			LinePoints:    []int{100, 300, 500, 800},
			LinesPerLevel: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 150, // Lines cleared
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 8.0,
			},
		},
	}
}
