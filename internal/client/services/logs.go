package services

import (
	"context"

	"github.com/ecopulse/ecopulse/internal/client/client"
	"github.com/ecopulse/ecopulse/internal/client/models"
	"github.com/ecopulse/ecopulse/internal/emission"
)

// DefaultLogType is the type label attached to every log the CLI submits.
const DefaultLogType = "Standard"

// LogService records and lists the logged-in user's emissions.
type LogService interface {
	Add(ctx context.Context, category emission.Category, amount float64) (*models.EmissionLog, error)
	List(ctx context.Context) ([]*models.EmissionLog, error)
}

type logService struct {
	client client.Client
	auth   AuthService
}

func NewLogService(c client.Client, auth AuthService) LogService {
	return &logService{client: c, auth: auth}
}

// Add estimates co2 locally and submits the log.
func (s *logService) Add(ctx context.Context, category emission.Category, amount float64) (*models.EmissionLog, error) {
	sess, err := s.auth.Session(ctx)
	if err != nil {
		return nil, err
	}

	return s.client.CreateLog(ctx, sess.Token, models.NewLog{
		Category: string(category),
		Type:     DefaultLogType,
		Amount:   amount,
		CO2:      emission.Estimate(category, amount),
	})
}

func (s *logService) List(ctx context.Context) ([]*models.EmissionLog, error) {
	sess, err := s.auth.Session(ctx)
	if err != nil {
		return nil, err
	}
	return s.client.ListLogs(ctx, sess.Token)
}
