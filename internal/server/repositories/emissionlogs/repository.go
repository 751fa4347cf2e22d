package emissionlogs

import (
	"context"

	"github.com/ecopulse/ecopulse/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, log *models.EmissionLog) (*models.EmissionLog, error)
	ListByUser(ctx context.Context, userID string) ([]*models.EmissionLog, error)
}
