package client

import (
	"context"

	"github.com/ecopulse/ecopulse/internal/client/models"
)

// LoginResult is what the server returns for a successful login.
type LoginResult struct {
	Token string
	Name  string
}

type Client interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	CreateLog(ctx context.Context, token string, log models.NewLog) (*models.EmissionLog, error)
	ListLogs(ctx context.Context, token string) ([]*models.EmissionLog, error)
	Ping(ctx context.Context) error
}
