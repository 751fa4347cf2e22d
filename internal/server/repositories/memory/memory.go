// Package memory provides an in-process RepositoryManager. It backs the
// server when started with the "memory" DSN and is used by tests that need
// real store semantics without PostgreSQL.
package memory

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/ecopulse/ecopulse/internal/common"
	"github.com/ecopulse/ecopulse/internal/dbx"
	"github.com/ecopulse/ecopulse/internal/server/models"
	"github.com/ecopulse/ecopulse/internal/server/repositories/emissionlogs"
	"github.com/ecopulse/ecopulse/internal/server/repositories/users"
)

// DSN selects the in-memory store in server configuration.
const DSN = "memory"

type store struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
	logs    []*models.EmissionLog
}

// Manager vends repositories sharing one in-memory store. The DBTX passed to
// the factories is ignored.
type Manager struct {
	s *store
}

func NewManager() *Manager {
	return &Manager{s: &store{byEmail: make(map[string]*models.User)}}
}

func (m *Manager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *Manager) Users(dbx.DBTX) users.Repository { return &userRepo{s: m.s} }

func (m *Manager) EmissionLogs(dbx.DBTX) emissionlogs.Repository { return &logRepo{s: m.s} }

// UserCount reports how many users are stored.
func (m *Manager) UserCount() int {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	return len(m.s.byEmail)
}

// LogCount reports how many logs are stored across all users.
func (m *Manager) LogCount() int {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	return len(m.s.logs)
}

type userRepo struct{ s *store }

func (r *userRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.byEmail[u.Email]; ok {
		return nil, common.ErrAlreadyExists
	}
	cp := *u
	cp.PasswordHash = append([]byte(nil), u.PasswordHash...)
	r.s.byEmail[u.Email] = &cp
	return u, nil
}

func (r *userRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

type logRepo struct{ s *store }

func (r *logRepo) Create(_ context.Context, l *models.EmissionLog) (*models.EmissionLog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *l
	r.s.logs = append(r.s.logs, &cp)
	return l, nil
}

// ListByUser returns copies of userID's logs ordered by CreatedAt descending;
// ties keep the most recently inserted first.
func (r *logRepo) ListByUser(_ context.Context, userID string) ([]*models.EmissionLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*models.EmissionLog, 0)
	for i := len(r.s.logs) - 1; i >= 0; i-- {
		if l := r.s.logs[i]; l.UserID == userID {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
