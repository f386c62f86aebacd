// Package config loads runtime configuration for the authgate client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. AUTHGATE_* environment variables.
//  3. Optional JSON file selected via the -c or -config flags.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-b string   base URL of the authentication backend
//	-t int      request timeout (seconds)
//	-d string   path to the local sqlite database
//
// # JSON schema
//
// Durations can be either strings like "10s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://api.example.com",
//	  "request_timeout": "10s",
//	  "database_path": "auth.db",
//	  "log_level": "debug"
//	}
package config
