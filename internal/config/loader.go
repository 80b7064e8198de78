package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLightcycle loads Laser Bikes configuration.
// Search order: customPath -> ~/.arcade/configs/lightcycle.yaml -> ./configs/lightcycle.yaml -> embedded default
func LoadLightcycle(customPath string) (LightcycleConfig, error) {
	cfg := DefaultLightcycleConfig()
	if err := load("lightcycle.yaml", customPath, defaultLightcycleYAML, &cfg); err != nil {
		return DefaultLightcycleConfig(), err
	}
	return cfg, nil
}

// LoadBlocks loads Blocks configuration.
// Search order: customPath -> ~/.arcade/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default
func LoadBlocks(customPath string) (BlocksConfig, error) {
	cfg := DefaultBlocksConfig()
	if err := load("blocks.yaml", customPath, defaultBlocksYAML, &cfg); err != nil {
		return DefaultBlocksConfig(), err
	}
	return cfg, nil
}

// load decodes the first readable candidate into out, which must already hold
// the hard-coded defaults so missing keys keep their default values. Only an
// explicit custom path reports errors; broken user or local files are
// skipped.
func load(filename, customPath string, embedded []byte, out any) error {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// Use embedded default YAML; the hard-coded values already in out remain
	// if it fails to decode.
	//nolint:errcheck // Fallback to hardcoded if embed fails
	yaml.Unmarshal(embedded, out)
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// applyPreset sets difficulty fields from a preset. An empty preset keeps
// the configured values.
func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		d.Enabled = false
	} else {
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplyLightcyclePreset modifies the config based on a difficulty preset.
func ApplyLightcyclePreset(cfg *LightcycleConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	// Adjust base speed based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Bikes.MoveInterval = 0.08
	case DifficultyHard:
		cfg.Bikes.MoveInterval = 0.035
	}
}

// ApplyBlocksPreset modifies the config based on a difficulty preset.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Timing.FallInterval = 1.0
	case DifficultyHard:
		cfg.Timing.FallInterval = 0.5
	}
}
