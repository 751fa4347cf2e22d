// Package dashboard computes and renders the EcoPulse dashboard: totals,
// budget status, the daily-limit gauge and recent activity.
package dashboard

import (
	"math"

	"github.com/ecopulse/ecopulse/internal/client/models"
)

// DefaultBudgetKg is the daily carbon budget used when none is configured.
const DefaultBudgetKg = 50.0

const (
	StatusGood = "Good"
	StatusHigh = "High"
)

// Summary is the data shown on the dashboard.
type Summary struct {
	Name     string
	TotalCO2 float64
	Count    int
	BudgetKg float64
	Logs     []*models.EmissionLog
}

// Summarize totals logs against budgetKg. Logs keep their order, which the
// server returns newest first. A non-positive budget falls back to
// DefaultBudgetKg.
func Summarize(name string, logs []*models.EmissionLog, budgetKg float64) Summary {
	if budgetKg <= 0 {
		budgetKg = DefaultBudgetKg
	}
	var total float64
	for _, l := range logs {
		total += l.CO2
	}
	return Summary{
		Name:     name,
		TotalCO2: total,
		Count:    len(logs),
		BudgetKg: budgetKg,
		Logs:     logs,
	}
}

// Status is "Good" while the total stays under budget and "High" otherwise.
func (s Summary) Status() string {
	if s.TotalCO2 < s.BudgetKg {
		return StatusGood
	}
	return StatusHigh
}

// UsedPercent is the share of the budget used, rounded to a whole percent.
// It may exceed 100.
func (s Summary) UsedPercent() int {
	if s.BudgetKg <= 0 {
		return 0
	}
	return int(math.Round(s.TotalCO2 / s.BudgetKg * 100))
}
