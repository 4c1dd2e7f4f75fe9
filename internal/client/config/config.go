package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the EJC Digital CLI.
type Config struct {
	FixturesBaseURL string
	LiturgyBaseURL  string
	DatabasePath    string
	RequestTimeout  time.Duration
	LogLevel        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.FixturesBaseURL = "http://127.0.0.1:8081"
	c.LiturgyBaseURL = "https://liturgia.up.railway.app"
	c.DatabasePath = "ejc.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, the optional config file, the
// environment and finally the command-line flags in os.Args.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

func load(args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, args, lookup); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
