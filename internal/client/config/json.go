package config

import (
	"encoding/json"
	"os"

	"github.com/ecopulse/ecopulse/internal/flagx"
	"github.com/ecopulse/ecopulse/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields leave the corresponding Config value unchanged.
type JsonConfig struct {
	ServerURL      *string         `json:"server_url"`
	SessionDSN     *string         `json:"session_dsn"`
	DailyBudgetKg  *float64        `json:"daily_budget_kg"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with the file named by -c/-config. It panics on
// read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != nil {
		cfg.ServerURL = *jc.ServerURL
	}
	if jc.SessionDSN != nil {
		cfg.SessionDSN = *jc.SessionDSN
	}
	if jc.DailyBudgetKg != nil {
		cfg.DailyBudgetKg = *jc.DailyBudgetKg
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
