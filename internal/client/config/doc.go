// Package config loads runtime configuration for the EcoPulse CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// # JSON schema
//
//	{
//	  "server_url": "http://localhost:5000",
//	  "session_dsn": "ecopulse.db",
//	  "daily_budget_kg": 50,
//	  "request_timeout": "10s"
//	}
package config
