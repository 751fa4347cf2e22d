package dashboard

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ecopulse/ecopulse/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticLoader(logs []*models.EmissionLog, err error) (Loader, *int) {
	calls := 0
	return func(context.Context) ([]*models.EmissionLog, error) {
		calls++
		return logs, err
	}, &calls
}

func TestModelQuit(t *testing.T) {
	load, _ := staticLoader(nil, nil)
	m := NewModel(context.Background(), "Alice", 50, load)

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		_, cmd := m.Update(key)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, "key %q should quit", key.String())
	}
}

func TestModelInitLoadsLogs(t *testing.T) {
	logs := []*models.EmissionLog{{Category: "food", Amount: 1, CO2: 2}}
	load, calls := staticLoader(logs, nil)
	m := NewModel(context.Background(), "Alice", 50, load)

	assert.Contains(t, m.View(), "Loading")

	msg := m.Init()()
	next, cmd := m.Update(msg)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, *calls)

	got := next.(Model)
	assert.Equal(t, logs, got.Logs())
	assert.Contains(t, got.View(), "Hello, Alice")
	assert.Contains(t, got.View(), "2.0 kg")
}

func TestModelRefresh(t *testing.T) {
	load, calls := staticLoader(nil, nil)
	m := NewModel(context.Background(), "Alice", 50, load)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	require.NotNil(t, cmd)
	_, cmd = next.Update(cmd())
	assert.Nil(t, cmd)
	assert.Equal(t, 1, *calls)
}

func TestModelLoadError(t *testing.T) {
	load, _ := staticLoader(nil, errors.New("boom"))
	m := NewModel(context.Background(), "Alice", 50, load)

	next, _ := m.Update(m.Init()())
	view := next.(Model).View()

	assert.Contains(t, view, "Error: boom")
	assert.Contains(t, view, EmptyHint)
}
