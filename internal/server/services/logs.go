package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ecopulse/ecopulse/internal/common"
	"github.com/ecopulse/ecopulse/internal/emission"
	"github.com/ecopulse/ecopulse/internal/server/config"
	"github.com/ecopulse/ecopulse/internal/server/models"
	"github.com/ecopulse/ecopulse/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// LogInput is the caller-supplied part of a new emission log.
type LogInput struct {
	Category string
	Type     string
	Amount   float64
	CO2      float64
}

type LogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	strict      bool
	now         func() time.Time
}

func NewLogService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *LogService {
	return &LogService{
		db:          db,
		repomanager: m,
		strict:      cfg.StrictLogs,
		now:         time.Now,
	}
}

// Create persists a log owned by userID, which must come from a verified
// token. In strict mode the category must be known, the amount positive, and
// co2 is recomputed from the emission table.
func (s *LogService) Create(ctx context.Context, userID string, in LogInput) (*models.EmissionLog, error) {
	if s.strict {
		cat, err := emission.ParseCategory(in.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
		}
		if !(in.Amount > 0) {
			return nil, fmt.Errorf("%w: amount must be positive", common.ErrValidation)
		}
		in.Category = string(cat)
		in.CO2 = emission.Estimate(cat, in.Amount)
		if strings.TrimSpace(in.Type) == "" {
			in.Type = "Standard"
		}
	}

	log := &models.EmissionLog{
		ID:        uuid.NewString(),
		UserID:    userID,
		Category:  in.Category,
		Type:      in.Type,
		Amount:    in.Amount,
		CO2:       in.CO2,
		CreatedAt: s.now().UTC(),
	}

	repo := s.repomanager.EmissionLogs(s.db)
	saved, err := repo.Create(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("error saving log: %w", err)
	}
	return saved, nil
}

// List returns userID's logs, newest first.
func (s *LogService) List(ctx context.Context, userID string) ([]*models.EmissionLog, error) {
	repo := s.repomanager.EmissionLogs(s.db)
	logs, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing logs: %w", err)
	}
	if logs == nil {
		logs = []*models.EmissionLog{}
	}
	return logs, nil
}
