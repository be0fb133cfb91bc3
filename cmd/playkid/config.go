package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config is the YAML-file config surface layered on top of
// system.Options, per SPEC_FULL.md §10: palette name, skip_header_checks,
// ROM path, and an optional frame-count limit for batch/test runs.
type config struct {
	ROM              string `yaml:"rom"`
	Palette          string `yaml:"palette"`
	SkipHeaderChecks bool   `yaml:"skip_header_checks"`
	FrameLimit       int    `yaml:"frame_limit"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
