package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const escapeFile = "escape.yaml"

// LoadEscape loads the simulation tuning.
// Search order: customPath -> ~/.nightescape/configs/escape.yaml -> ./configs/escape.yaml -> embedded default
//
// Files are decoded on top of the built-in defaults, so a partial file only
// overrides the keys it names. Only an explicit customPath reports errors;
// broken files found on the search path are skipped.
func LoadEscape(customPath string) (EscapeConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	if userCfgPath := userConfigPath(escapeFile); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := LoadFile(filepath.Join("configs", escapeFile)); err == nil {
		return cfg, nil
	}

	cfg := DefaultEscapeConfig()
	if err := yaml.Unmarshal(defaultEscapeYAML, &cfg); err != nil {
		return DefaultEscapeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads, decodes and validates a single config file.
func LoadFile(path string) (EscapeConfig, error) {
	cfg := DefaultEscapeConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// ResolvePath returns the file LoadEscape would read for customPath, or ""
// when it would fall back to the embedded default.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	if p := userConfigPath(escapeFile); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	local := filepath.Join("configs", escapeFile)
	if _, err := os.Stat(local); err == nil {
		return local
	}
	return ""
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nightescape", "configs", filename)
}
