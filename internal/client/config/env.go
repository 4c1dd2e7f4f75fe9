package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/dmitrijs2005/ejcdigital/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Environment variable names.
const (
	EnvFixturesURL    = "EJC_FIXTURES_URL"
	EnvLiturgyURL     = "EJC_LITURGY_URL"
	EnvDatabasePath   = "EJC_DB_PATH"
	EnvRequestTimeout = "EJC_REQUEST_TIMEOUT"
	EnvLogLevel       = "EJC_LOG_LEVEL"
)

// parseEnv overlays cfg with EJC_* variables. Values from the dotenv file are
// used only when lookup does not know the variable.
func parseEnv(cfg *Config, args []string, lookup func(string) (string, bool)) error {
	dotenv, err := readDotenv(flagx.EnvFile(args))
	if err != nil {
		return err
	}

	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := get(EnvFixturesURL); ok {
		cfg.FixturesBaseURL = v
	}
	if v, ok := get(EnvLiturgyURL); ok {
		cfg.LiturgyBaseURL = v
	}
	if v, ok := get(EnvDatabasePath); ok {
		cfg.DatabasePath = v
	}
	if v, ok := get(EnvRequestTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRequestTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	return nil
}

// readDotenv reads path, or ./.env when path is empty. A missing default file
// is not an error; a missing explicit one is.
func readDotenv(path string) (map[string]string, error) {
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	m, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return m, nil
}
