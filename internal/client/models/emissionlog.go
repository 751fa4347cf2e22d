// Package models defines client-side data models used by the EcoPulse CLI.
package models

import "time"

// EmissionLog is a log record as returned by the API.
type EmissionLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Category  string    `json:"category"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	CO2       float64   `json:"co2"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewLog is the body of a create-log request. CO2 is computed on the client
// before submission.
type NewLog struct {
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	CO2      float64 `json:"co2"`
}
