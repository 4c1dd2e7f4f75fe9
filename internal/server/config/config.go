// Package config handles configuration for the fixture server, including
// defaults, a JSON (with comments) or YAML overlay, environment variables
// and command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the fixture server.
//
// Fields:
//   - ListenAddr: bind address of the HTTP endpoint.
//   - DataDir: directory holding the JSON documents; empty serves the
//     embedded set.
//   - RequestTimeout: read and write timeout of a single request.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
//   - LogLevel / LogFormat: slog level name and "json" or "text".
type Config struct {
	ListenAddr      string
	DataDir         string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
	LogFormat       string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8081"
	c.DataDir = ""
	c.RequestTimeout = 5 * time.Second
	c.ShutdownTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file, the environment and finally command-line
// flags.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

func load(args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, lookup); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
