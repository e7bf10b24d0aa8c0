// Package config loads runtime configuration for the rentverse client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed RENTVERSE_, optionally seeded from a
//     .env file (-e / -env, default ".env" when present).
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   API base URL
//	-d string   path of the local SQLite database
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (text, json, zap)
//	-t int      API timeout (seconds)
//
// # JSON schema
//
// Durations accept "15s" or integer nanoseconds (see timex.Duration):
//
//	{
//	  "api_base_url": "https://api.example.com/api",
//	  "api_timeout": "15s",
//	  "database_path": "rentverse.db",
//	  "log_level": "debug"
//	}
package config
