package dashboard

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ecopulse/ecopulse/internal/client/models"
)

// Loader fetches the logs to display.
type Loader func(ctx context.Context) ([]*models.EmissionLog, error)

type logsMsg struct {
	logs []*models.EmissionLog
	err  error
}

// Model is the interactive dashboard screen. Keys: r reloads, q quits.
type Model struct {
	ctx      context.Context
	name     string
	budgetKg float64
	load     Loader

	logs    []*models.EmissionLog
	err     error
	loading bool
}

func NewModel(ctx context.Context, name string, budgetKg float64, load Loader) Model {
	return Model{ctx: ctx, name: name, budgetKg: budgetKg, load: load, loading: true}
}

func (m Model) fetch() tea.Cmd {
	return func() tea.Msg {
		logs, err := m.load(m.ctx)
		return logsMsg{logs: logs, err: err}
	}
}

func (m Model) Init() tea.Cmd {
	return m.fetch()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, m.fetch()
		}
	case logsMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.logs = msg.logs
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading && m.logs == nil {
		return "Loading EcoPulse...\n"
	}

	view := Render(Summarize(m.name, m.logs, m.budgetKg))
	if m.err != nil {
		view += highStyle.Render("Error: "+m.err.Error()) + "\n"
	}
	return view + mutedStyle.Render("r refresh • q quit") + "\n"
}

// Logs returns the most recently loaded logs.
func (m Model) Logs() []*models.EmissionLog {
	return m.logs
}

// Run shows the dashboard until the user quits or ctx is cancelled.
func Run(ctx context.Context, in io.Reader, out io.Writer, name string, budgetKg float64, load Loader) error {
	p := tea.NewProgram(NewModel(ctx, name, budgetKg, load),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := p.Run()
	return err
}
