// Package config loads engine configuration from .remedy.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/remedykit/remedy/internal/domain"
)

const fileName = ".remedy.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .remedy.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// rawConfig uses pointers so an absent key is distinguishable from an
// explicit zero and falls back to the default.
type rawConfig struct {
	SafetyMode     *bool    `yaml:"safety_mode"`
	SafeThreshold  *float64 `yaml:"safe_threshold"`
	RiskyThreshold *float64 `yaml:"risky_threshold"`
	DisabledRules  []string `yaml:"disabled_rules"`
}

// Load reads .remedy.yaml from projectPath. A missing file yields the
// defaults; a present file overlays only the keys it sets.
func (l *YAMLLoader) Load(projectPath string) (domain.EngineConfig, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return domain.EngineConfig{}, err
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.EngineConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if raw.SafetyMode != nil {
		cfg.SafetyMode = *raw.SafetyMode
	}
	if raw.SafeThreshold != nil {
		cfg.SafeThreshold = *raw.SafeThreshold
	}
	if raw.RiskyThreshold != nil {
		cfg.RiskyThreshold = *raw.RiskyThreshold
	}
	if len(raw.DisabledRules) > 0 {
		cfg.DisabledRules = raw.DisabledRules
	}

	if err := cfg.Validate(); err != nil {
		return domain.EngineConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}
