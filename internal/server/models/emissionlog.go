// Package models contains the server-side persistence types.
package models

import "time"

// EmissionLog is one recorded activity owned by UserID.
type EmissionLog struct {
	ID        string
	UserID    string
	Category  string
	Type      string
	Amount    float64
	CO2       float64
	CreatedAt time.Time
}
