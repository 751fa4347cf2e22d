package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ecopulse/ecopulse/internal/dbx"
	"github.com/ecopulse/ecopulse/internal/server/config"
	"github.com/ecopulse/ecopulse/internal/server/models"
	"github.com/ecopulse/ecopulse/internal/server/repositories/emissionlogs"
	"github.com/ecopulse/ecopulse/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:        "k",
		PasswordHashCost: bcrypt.MinCost,
	}
}

type fakeUsersRepo struct {
	createErr error
	created   []*models.User

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeLogsRepo struct {
	createErr error
	created   []*models.EmissionLog

	listOut []*models.EmissionLog
	listErr error
	listFor string
}

func (f *fakeLogsRepo) Create(ctx context.Context, l *models.EmissionLog) (*models.EmissionLog, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, l)
	return l, nil
}

func (f *fakeLogsRepo) ListByUser(ctx context.Context, userID string) ([]*models.EmissionLog, error) {
	f.listFor = userID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	l *fakeLogsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error     { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository               { return m.u }
func (m *fakeRepoManager) EmissionLogs(db dbx.DBTX) emissionlogs.Repository { return m.l }
