package config

import (
	"fmt"
	"time"
)

// Environment variable names.
const (
	EnvListenAddr     = "EJC_FIXTURES_ADDR"
	EnvDataDir        = "EJC_FIXTURES_DIR"
	EnvRequestTimeout = "EJC_FIXTURES_TIMEOUT"
	EnvLogLevel       = "EJC_LOG_LEVEL"
	EnvLogFormat      = "EJC_LOG_FORMAT"
)

func parseEnv(config *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvListenAddr); ok {
		config.ListenAddr = v
	}
	if v, ok := lookup(EnvDataDir); ok {
		config.DataDir = v
	}
	if v, ok := lookup(EnvRequestTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRequestTimeout, err)
		}
		config.RequestTimeout = d
	}
	if v, ok := lookup(EnvLogLevel); ok {
		config.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		config.LogFormat = v
	}
	return nil
}
