package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "ngon.yaml"

// LoadNgon loads the game configuration and validates it.
// Search order: customPath -> ~/.superngon/configs/ngon.yaml -> ./configs/ngon.yaml -> embedded default
func LoadNgon(customPath string) (NgonConfig, error) {
	cfg, err := loadNgon(customPath)
	if err != nil {
		return cfg, err
	}
	cfg.Validate()
	return cfg, nil
}

func loadNgon(customPath string) (NgonConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return NgonConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseNgon(data)
		if err != nil {
			return NgonConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseNgon(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if cfg, err := ParseNgon(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseNgon(defaultNgonYAML)
	if err != nil {
		return DefaultNgonConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseNgon decodes YAML on top of the hard-coded defaults, so a partial file
// only overrides the keys it names.
func ParseNgon(data []byte) (NgonConfig, error) {
	cfg := DefaultNgonConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".superngon", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *NgonConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	default:
		return
	}

	// Adjust handling based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Cursor.StepDegrees = 12
	case DifficultyHard:
		cfg.Walls.Relax = false
	}
}
