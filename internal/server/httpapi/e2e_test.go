package httpapi

import (
	"net/http"
	"strings"
	"testing"

	"github.com/ecopulse/ecopulse/internal/server/config"
	"github.com/ecopulse/ecopulse/internal/server/repositories/memory"
	"github.com/ecopulse/ecopulse/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newStack(t *testing.T, strict bool) (http.Handler, *memory.Manager) {
	t.Helper()
	cfg := &config.Config{SecretKey: "test-secret", PasswordHashCost: bcrypt.MinCost, StrictLogs: strict}
	m := memory.NewManager()
	us := services.NewUserService(nil, m, cfg)
	ls := services.NewLogService(nil, m, cfg)
	return NewServer(":0", quietLogger(), us, ls).Handler(), m
}

func registerAndLogin(t *testing.T, h http.Handler, name, email, pw string) string {
	t.Helper()
	res := decode(t, do(t, h, http.MethodPost, "/api/register", "",
		map[string]string{"name": name, "email": email, "password": pw}))
	require.Equal(t, "ok", res.Status, res.Error)
	require.NotEmpty(t, res.UserID)

	res = decode(t, do(t, h, http.MethodPost, "/api/login", "",
		map[string]string{"email": email, "password": pw}))
	require.Equal(t, "ok", res.Status, res.Error)
	require.Equal(t, name, res.Name)
	require.NotEmpty(t, res.Token)
	return res.Token
}

func TestEndToEnd_RegisterLoginCreateList(t *testing.T) {
	h, _ := newStack(t, false)
	token := registerAndLogin(t, h, "Alice", "a@x.com", "pw")

	res := decode(t, do(t, h, http.MethodPost, "/api/logs", token,
		map[string]any{"category": "transport", "type": "Standard", "amount": 10, "co2": 2.00}))
	require.Equal(t, "ok", res.Status, res.Error)

	res = decode(t, do(t, h, http.MethodGet, "/api/logs", token, nil))
	require.Equal(t, "ok", res.Status)
	require.Len(t, res.Logs, 1)
	got := res.Logs[0]
	assert.Equal(t, "transport", got.Category)
	assert.Equal(t, "Standard", got.Type)
	assert.Equal(t, 10.0, got.Amount)
	assert.Equal(t, 2.00, got.CO2)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestEndToEnd_DuplicateRegistration(t *testing.T) {
	h, m := newStack(t, false)
	body := map[string]string{"name": "Alice", "email": "a@x.com", "password": "pw"}

	res := decode(t, do(t, h, http.MethodPost, "/api/register", "", body))
	require.Equal(t, "ok", res.Status)

	res = decode(t, do(t, h, http.MethodPost, "/api/register", "", body))
	assert.Equal(t, "error", res.Status)
	assert.Equal(t, "Duplicate email", res.Error)
	assert.Equal(t, 1, m.UserCount())
}

func TestEndToEnd_LoginFailures(t *testing.T) {
	h, _ := newStack(t, false)
	registerAndLogin(t, h, "Alice", "a@x.com", "pw")

	res := decode(t, do(t, h, http.MethodPost, "/api/login", "",
		map[string]string{"email": "a@x.com", "password": "nope"}))
	assert.Equal(t, "Invalid email or password", res.Error)
	assert.Empty(t, res.Token)

	res = decode(t, do(t, h, http.MethodPost, "/api/login", "",
		map[string]string{"email": "ghost@x.com", "password": "pw"}))
	assert.Equal(t, "Invalid email or password", res.Error)
}

func TestEndToEnd_UsersAreIsolated(t *testing.T) {
	h, _ := newStack(t, false)
	tokA := registerAndLogin(t, h, "A", "a@x.com", "pa")
	tokB := registerAndLogin(t, h, "B", "b@x.com", "pb")

	for _, c := range []string{"transport", "energy"} {
		res := decode(t, do(t, h, http.MethodPost, "/api/logs", tokA,
			map[string]any{"category": c, "type": "Standard", "amount": 1, "co2": 1}))
		require.Equal(t, "ok", res.Status)
	}

	res := decode(t, do(t, h, http.MethodGet, "/api/logs", tokB, nil))
	require.Equal(t, "ok", res.Status)
	assert.Empty(t, res.Logs)

	res = decode(t, do(t, h, http.MethodGet, "/api/logs", tokA, nil))
	require.Len(t, res.Logs, 2)
	assert.Equal(t, "energy", res.Logs[0].Category)
	assert.Equal(t, "transport", res.Logs[1].Category)
	assert.False(t, res.Logs[0].CreatedAt.Before(res.Logs[1].CreatedAt))
}

func TestEndToEnd_TamperedTokenPersistsNothing(t *testing.T) {
	h, m := newStack(t, false)
	token := registerAndLogin(t, h, "A", "a@x.com", "pw")

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	forged := parts[0] + "." + parts[1] + "." + string(sig)

	res := decode(t, do(t, h, http.MethodPost, "/api/logs", forged,
		map[string]any{"category": "food", "type": "Standard", "amount": 1, "co2": 2}))
	assert.Equal(t, "Invalid token", res.Error)
	assert.Zero(t, m.LogCount())
}

func TestEndToEnd_StrictModeRecomputes(t *testing.T) {
	h, m := newStack(t, true)
	token := registerAndLogin(t, h, "A", "a@x.com", "pw")

	res := decode(t, do(t, h, http.MethodPost, "/api/logs", token,
		map[string]any{"category": "energy", "type": "Standard", "amount": 4, "co2": 999}))
	require.Equal(t, "ok", res.Status, res.Error)
	require.NotNil(t, res.Log)
	assert.Equal(t, 2.0, res.Log.CO2)

	res = decode(t, do(t, h, http.MethodPost, "/api/logs", token,
		map[string]any{"category": "energy", "type": "Standard", "amount": -4, "co2": 1}))
	assert.Equal(t, "Invalid request", res.Error)
	assert.Equal(t, 1, m.LogCount())
}
