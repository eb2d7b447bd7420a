package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/archforge/archforge/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".archforge.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .archforge.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .archforge.yaml from projectPath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Validate before merging so typos in the user's raw input are caught.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// mergeConfig overlays explicit overrides on top of defaults.
// Explicit (non-zero) values always win.
func mergeConfig(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := base

	if override.Bundle != "" {
		result.Bundle = override.Bundle
	}
	if override.RootNamespace != "" {
		result.RootNamespace = override.RootNamespace
	}
	if override.SourceRoot != "" {
		result.SourceRoot = override.SourceRoot
	}
	if len(override.Layers) > 0 {
		result.Layers = override.Layers
	}
	if len(override.ExcludePaths) > 0 {
		result.ExcludePaths = override.ExcludePaths
	}

	// Rule and alias overrides replace the defaults entirely.
	result.LayerRules = override.LayerRules
	result.LayerAliases = override.LayerAliases

	return result
}
