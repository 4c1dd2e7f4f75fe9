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

// FileConfig is the on-disk DTO. Durations accept both "5s" strings and
// integer nanoseconds; absent fields keep their current value.
type FileConfig struct {
	ListenAddr      *string         `json:"listen_addr" yaml:"listen_addr"`
	DataDir         *string         `json:"data_dir" yaml:"data_dir"`
	RequestTimeout  *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	ShutdownTimeout *timex.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel        *string         `json:"log_level" yaml:"log_level"`
	LogFormat       *string         `json:"log_format" yaml:"log_format"`
}

// parseFile loads the file named by -c or -config into config. ".yaml" and
// ".yml" files are read as YAML, anything else as JSON with comments.
func parseFile(config *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	c := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		err = json.Unmarshal(jsonc.ToJSON(data), c)
	}
	if err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	if c.ListenAddr != nil {
		config.ListenAddr = *c.ListenAddr
	}
	if c.DataDir != nil {
		config.DataDir = *c.DataDir
	}
	if c.RequestTimeout != nil {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
	if c.LogFormat != nil {
		config.LogFormat = *c.LogFormat
	}
	return nil
}
