package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/ecopulse/ecopulse/internal/client/client"
	"github.com/ecopulse/ecopulse/internal/client/models"
	"github.com/stretchr/testify/require"
)

// setupDB opens a migrated in-memory database private to the test.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	db, err := client.InitDatabase(context.Background(), fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	RegisterErr error

	LoginRet *client.LoginResult
	LoginErr error

	CreateRet *models.EmissionLog
	CreateErr error

	ListRet []*models.EmissionLog
	ListErr error

	PingErr error

	LastRegister [3]string
	LastLogin    [2]string
	LastToken    string
	LastNewLog   models.NewLog
	CreateCalls  int
}

func (f *fakeClient) Register(ctx context.Context, name, email, password string) (string, error) {
	f.LastRegister = [3]string{name, email, password}
	if f.RegisterErr != nil {
		return "", f.RegisterErr
	}
	return "u1", nil
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*client.LoginResult, error) {
	f.LastLogin = [2]string{email, password}
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) CreateLog(ctx context.Context, token string, log models.NewLog) (*models.EmissionLog, error) {
	f.CreateCalls++
	f.LastToken = token
	f.LastNewLog = log
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) ListLogs(ctx context.Context, token string) ([]*models.EmissionLog, error) {
	f.LastToken = token
	return f.ListRet, f.ListErr
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }
