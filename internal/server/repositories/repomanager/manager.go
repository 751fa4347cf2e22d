package repomanager

import (
	"context"
	"database/sql"

	"github.com/ecopulse/ecopulse/internal/dbx"
	"github.com/ecopulse/ecopulse/internal/server/repositories/emissionlogs"
	"github.com/ecopulse/ecopulse/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a *sql.DB or *sql.Tx so that
// services can compose them inside one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	EmissionLogs(db dbx.DBTX) emissionlogs.Repository
}
