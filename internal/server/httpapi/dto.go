package httpapi

import (
	"time"

	"github.com/ecopulse/ecopulse/internal/server/models"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createLogRequest struct {
	Category string   `json:"category" binding:"required"`
	Type     string   `json:"type"`
	Amount   *float64 `json:"amount" binding:"required"`
	CO2      *float64 `json:"co2"`
}

type logDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Category  string    `json:"category"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	CO2       float64   `json:"co2"`
	CreatedAt time.Time `json:"createdAt"`
}

func toLogDTO(l *models.EmissionLog) logDTO {
	return logDTO{
		ID:        l.ID,
		UserID:    l.UserID,
		Category:  l.Category,
		Type:      l.Type,
		Amount:    l.Amount,
		CO2:       l.CO2,
		CreatedAt: l.CreatedAt,
	}
}

func toLogDTOs(in []*models.EmissionLog) []logDTO {
	out := make([]logDTO, 0, len(in))
	for _, l := range in {
		out = append(out, toLogDTO(l))
	}
	return out
}
