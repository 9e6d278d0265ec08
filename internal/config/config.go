// Package config loads the workload configuration for seqbench.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Workload kinds understood by the runner.
const (
	KindVectorAppend      = "vector-append"
	KindVectorFront       = "vector-front"
	KindVectorInsertErase = "vector-insert-erase"
	KindVectorReorder     = "vector-reorder"
	KindListAppend        = "list-append"
	KindOwnerChurn        = "owner-churn"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validKinds = map[string]bool{
	KindVectorAppend:      true,
	KindVectorFront:       true,
	KindVectorInsertErase: true,
	KindVectorReorder:     true,
	KindListAppend:        true,
	KindOwnerChurn:        true,
}

type Config struct {
	Log       LogConfig     `yaml:"log"`
	Metrics   MetricsConfig `yaml:"metrics"`
	Workloads []Workload    `yaml:"workloads"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type MetricsConfig struct {
	Namespace  string `yaml:"namespace"`
	OutputPath string `yaml:"output_path"` // Prometheus text file; empty disables
}

// Workload describes one benchmark run.
type Workload struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Count    int    `yaml:"count"`     // elements per repetition
	Repeat   int    `yaml:"repeat"`    // repetitions, default 1
	Reserve  int    `yaml:"reserve"`   // vector kinds: slots to reserve up front
	NodeSize int    `yaml:"node_size"` // list-append: node capacity, 0 for default
}

// Default returns a configuration that runs every workload kind once.
func Default() *Config {
	cfg := &Config{
		Log:     LogConfig{Level: "info"},
		Metrics: MetricsConfig{Namespace: "seqbench"},
	}
	for _, kind := range []string{
		KindVectorAppend, KindVectorFront, KindVectorInsertErase,
		KindVectorReorder, KindListAppend, KindOwnerChurn,
	} {
		cfg.Workloads = append(cfg.Workloads, Workload{Name: kind, Kind: kind, Count: 1000, Repeat: 1})
	}
	return cfg
}

// Load reads and validates the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "seqbench"
	}
	for i := range c.Workloads {
		w := &c.Workloads[i]
		if w.Repeat == 0 {
			w.Repeat = 1
		}
		if w.Name == "" {
			w.Name = fmt.Sprintf("%s-%d", w.Kind, i)
		}
	}
}

// Validate checks configuration
func (c *Config) Validate() error {
	if len(c.Workloads) == 0 {
		return fmt.Errorf("%w: no workloads", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Workloads))
	for _, w := range c.Workloads {
		if err := w.Validate(); err != nil {
			return err
		}
		if seen[w.Name] {
			return fmt.Errorf("%w: duplicate workload name %q", ErrInvalidConfig, w.Name)
		}
		seen[w.Name] = true
	}
	return nil
}

// Validate checks a single workload.
func (w Workload) Validate() error {
	if !validKinds[w.Kind] {
		return fmt.Errorf("%w: workload %q: unknown kind %q", ErrInvalidConfig, w.Name, w.Kind)
	}
	if w.Count <= 0 {
		return fmt.Errorf("%w: workload %q: count must be positive", ErrInvalidConfig, w.Name)
	}
	if w.Repeat < 0 || w.Reserve < 0 || w.NodeSize < 0 {
		return fmt.Errorf("%w: workload %q: negative repeat, reserve or node_size", ErrInvalidConfig, w.Name)
	}
	return nil
}
