package config

import "time"

// Config holds runtime settings for the EcoPulse CLI.
//
// Fields:
//   - ServerURL: base URL of the EcoPulse API.
//   - SessionDSN: SQLite file holding the local session.
//   - DailyBudgetKg: daily carbon budget shown on the dashboard.
//   - RequestTimeout: per-request deadline for API calls.
type Config struct {
	ServerURL      string
	SessionDSN     string
	DailyBudgetKg  float64
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:5000"
	c.SessionDSN = "ecopulse.db"
	c.DailyBudgetKg = 50
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
