package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"quizzer/internal/config"
)

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadConfig loads the explicit or discovered config. A missing config is
// only an error when the path was given explicitly. The returned root is the
// directory relative paths in the config resolve against.
func loadConfig(configPath string) (config.Config, string, error) {
	explicit := strings.TrimSpace(configPath) != ""
	path, err := resolveConfigPath(configPath)
	if err != nil {
		if !explicit && errors.Is(err, config.ErrNotFound) {
			return config.Default(), "", nil
		}
		return config.Config{}, "", err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", err
	}
	return cfg, config.RootFromConfigPath(path), nil
}
