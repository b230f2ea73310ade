package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds settings for the solarnorm daemon. ListenAddr is the HTTP
// listen address, FleetConfigPath optionally points at a YAML overrides file,
// and ShutdownTimeout bounds graceful shutdown.
type Config struct {
	ListenAddr      string
	FleetConfigPath string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// FleetConfig is the YAML overrides file: an optional capacity factor
// correction and per-site installed-capacity replacements, keyed by country
// code.
//
//	capacity_factor: 0.21
//	sites:
//	  ES: 33.5
//	  DE: 86.0
type FleetConfig struct {
	CapacityFactor *float64           `yaml:"capacity_factor"`
	Sites          map[string]float64 `yaml:"sites"`
}

func parseConfig(args []string) (*Config, error) {
	config := &Config{}

	fs := flag.NewFlagSet("solarnormd", flag.ContinueOnError)
	fs.StringVar(&config.ListenAddr, "listen", ":8080", "Address to listen on for the HTTP API")
	fs.StringVar(&config.FleetConfigPath, "fleet-config", "", "Path to YAML fleet overrides (optional)")
	fs.StringVar(&config.LogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	fs.StringVar(&config.LogFormat, "log-format", "json", "Log format (json or console)")
	fs.DurationVar(&config.ShutdownTimeout, "shutdown-timeout", 10*time.Second, "Timeout for graceful shutdown")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if config.LogFormat != "json" && config.LogFormat != "console" {
		return nil, fmt.Errorf("invalid log format %q: must be json or console", config.LogFormat)
	}

	return config, nil
}

// loadFleetConfig reads and validates the YAML overrides file.
// An empty path returns an empty config.
func loadFleetConfig(path string) (*FleetConfig, error) {
	if path == "" {
		return &FleetConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fleet config: %w", err)
	}

	var config FleetConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing fleet config: %w", err)
	}

	if config.CapacityFactor != nil {
		if cf := *config.CapacityFactor; cf <= 0 || cf > 1 {
			return nil, fmt.Errorf("capacity_factor %v out of range (0, 1]", cf)
		}
	}
	for code, capacity := range config.Sites {
		if capacity < 0 {
			return nil, fmt.Errorf("site %q: capacity %v must be non-negative", code, capacity)
		}
	}

	return &config, nil
}
