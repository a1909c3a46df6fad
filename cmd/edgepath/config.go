package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/edgepath/builder"
)

// errSeedRequired is returned when generate has no seed from flag or config.
var errSeedRequired = errors.New("a seed is required: pass --seed or set seed in the config file")

// Config is the YAML configuration file. Every field can be overridden by
// the flag of the same name; unset pointer fields mean "not configured".
type Config struct {
	N           int     `yaml:"n"`
	P           float64 `yaml:"p"`
	Seed        *int64  `yaml:"seed"`
	Src         uint32  `yaml:"src"`
	Dst         *uint32 `yaml:"dst"`
	Out         string  `yaml:"out"`
	In          string  `yaml:"in"`
	Report      string  `yaml:"report"`
	YAMLReport  string  `yaml:"yaml_report"`
	Engine      string  `yaml:"engine"`
	SimpleEdges bool    `yaml:"simple_edges"`
	Telemetry   bool    `yaml:"telemetry"`
	Verbose     bool    `yaml:"verbose"`
}

// defaultConfig holds the generator defaults: 50000 nodes, p = 3/133333, out 50k.bin.
func defaultConfig() Config {
	return Config{
		N:      builder.DefaultNodes,
		P:      builder.DefaultProbability,
		Out:    "50k.bin",
		Engine: "bfs",
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// target returns the configured destination or n-1 when none is set.
func (c Config) target() uint32 {
	if c.Dst != nil {
		return *c.Dst
	}
	if c.N <= 0 {
		return 0
	}
	return uint32(c.N - 1)
}
