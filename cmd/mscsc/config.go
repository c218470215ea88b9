package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// runConfig holds the knobs a replay run can be tuned with, either via
// flags or a YAML file loaded with --config.
type runConfig struct {
	BatchSize       int  `yaml:"batchSize"`
	Minimum         bool `yaml:"minimum"`
	NoPruning       bool `yaml:"noPruning"`
	PrintEveryBatch bool `yaml:"printEveryBatch"`
}

func defaultRunConfig() runConfig {
	return runConfig{
		BatchSize:       1,
		Minimum:         false,
		NoPruning:       false,
		PrintEveryBatch: false,
	}
}

func loadRunConfig(r io.Reader) (runConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return runConfig{}, fmt.Errorf("read config: %w", err)
	}

	cfg := defaultRunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return runConfig{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 1
	}
	return cfg, nil
}

func loadRunConfigFromFile(path string) (runConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return runConfig{}, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	return loadRunConfig(f)
}
