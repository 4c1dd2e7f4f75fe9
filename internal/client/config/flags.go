package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/ejcdigital/internal/flagx"
)

// parseFlags overlays cfg with command-line flags. Only the flags declared
// here are looked at; -c/-config and -env belong to the other loaders.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-f", "-u", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("ejc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.FixturesBaseURL, "f", cfg.FixturesBaseURL, "fixture store base URL")
	fs.StringVar(&cfg.LiturgyBaseURL, "u", cfg.LiturgyBaseURL, "liturgy provider base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "session database path")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	return fs.Parse(args)
}
