// Package config loads runtime configuration for the EJC Digital CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml/.yml are read as YAML, anything else as JSON with comments and
//     trailing commas allowed.
//  3. Environment: EJC_* variables, optionally seeded from a dotenv file
//     (-env path, or ./.env when present). Real environment variables win
//     over the dotenv file.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-f string     base URL of the fixture store (users.json, members.json, ...)
//	-u string     base URL of the liturgy provider
//	-d string     path of the local SQLite session database
//	-t duration   per-request timeout (e.g. 10s)
//	-l string     log level: debug, info, warn, error
//
// # File schema
//
//	{
//	  // comments are fine
//	  "fixtures_base_url": "http://127.0.0.1:8081",
//	  "liturgy_base_url": "https://liturgia.up.railway.app",
//	  "database_path": "ejc.db",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	}
package config
