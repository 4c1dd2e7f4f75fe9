package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/ejcdigital/internal/flagx"
	"github.com/dmitrijs2005/ejcdigital/internal/timex"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk DTO. Pointer fields tell "absent" apart from
// "empty" so a partial file only overrides what it mentions.
type fileConfig struct {
	FixturesBaseURL *string         `json:"fixtures_base_url" yaml:"fixtures_base_url"`
	LiturgyBaseURL  *string         `json:"liturgy_base_url" yaml:"liturgy_base_url"`
	DatabasePath    *string         `json:"database_path" yaml:"database_path"`
	RequestTimeout  *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	LogLevel        *string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(jsonc.ToJSON(data), &fc)
	}
	if err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	if fc.FixturesBaseURL != nil {
		cfg.FixturesBaseURL = *fc.FixturesBaseURL
	}
	if fc.LiturgyBaseURL != nil {
		cfg.LiturgyBaseURL = *fc.LiturgyBaseURL
	}
	if fc.DatabasePath != nil {
		cfg.DatabasePath = *fc.DatabasePath
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	return nil
}
