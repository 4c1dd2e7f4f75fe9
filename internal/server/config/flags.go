package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/ejcdigital/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     bind address (e.g., ":8081")
//	-dir string   directory with the JSON documents
//	-t duration   request timeout (e.g., "5s")
//	-s duration   shutdown grace period
//	-l string     log level
//
// Args are first filtered with flagx.FilterArgs so flags of the other
// loaders (-c, -config) do not collide.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-dir", "-t", "-s", "-l"})

	fs := flag.NewFlagSet("fixtures", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.DataDir, "dir", config.DataDir, "directory with the JSON documents")
	fs.DurationVar(&config.RequestTimeout, "t", config.RequestTimeout, "request timeout")
	fs.DurationVar(&config.ShutdownTimeout, "s", config.ShutdownTimeout, "shutdown timeout")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	return fs.Parse(args)
}
