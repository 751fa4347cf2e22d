package config

import (
	"encoding/json"
	"os"

	"github.com/ecopulse/ecopulse/internal/flagx"
	"github.com/ecopulse/ecopulse/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Pointer fields
// distinguish "absent" from zero values so a partial file only overrides
// what it names.
type JsonConfig struct {
	HTTPAddr              *string         `json:"http_addr"`
	DatabaseDSN           *string         `json:"database_dsn"`
	SecretKey             *string         `json:"secret_key"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	PasswordHashCost      *int            `json:"password_hash_cost"`
	StrictLogs            *bool           `json:"strict_logs"`
	LogLevel              *string         `json:"log_level"`
}

// parseJson loads the file named by -c/-config, if any, into config.
// It panics when the file cannot be read or decoded.
func parseJson(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	if c.HTTPAddr != nil {
		config.HTTPAddr = *c.HTTPAddr
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.PasswordHashCost != nil {
		config.PasswordHashCost = *c.PasswordHashCost
	}
	if c.StrictLogs != nil {
		config.StrictLogs = *c.StrictLogs
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
}
