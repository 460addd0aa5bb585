// Package config loads runtime configuration for the sondage client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL (default http://127.0.0.1:8080)
//	-f string   session database file (default sondage.db)
//	-v          verbose logging
//
// # JSON schema
//
//	{
//	  "base_url": "http://127.0.0.1:8080",
//	  "session_file": "sondage.db",
//	  "verbose": false
//	}
package config
