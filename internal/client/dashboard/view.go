package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ecopulse/ecopulse/internal/client/models"
	"github.com/ecopulse/ecopulse/internal/emission"
)

// EmptyHint is shown in place of Recent Activity when there are no logs.
const EmptyHint = `No logs yet. Type "add" to log an emission!`

const gaugeWidth = 20

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	highStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("204")).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func formatKg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func statusStyle(status string) lipgloss.Style {
	if status == StatusGood {
		return goodStyle
	}
	return highStyle
}

func card(label, value string, valueStyle lipgloss.Style) string {
	return cardStyle.Render(labelStyle.Render(label) + "\n" + valueStyle.Render(value))
}

// Gauge draws a fixed-width bar for pct, clamped to 0..100.
func Gauge(pct int) string {
	filled := pct * gaugeWidth / 100
	if filled < 0 {
		filled = 0
	}
	if filled > gaugeWidth {
		filled = gaugeWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", gaugeWidth-filled) + "]"
}

// ActivityLine formats one log for the Recent Activity list.
func ActivityLine(l *models.EmissionLog) string {
	cat := emission.Category(l.Category)
	date := "-"
	if !l.CreatedAt.IsZero() {
		date = l.CreatedAt.Local().Format("2006-01-02")
	}
	name := l.Category
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return fmt.Sprintf("%-10s %s  %s kg CO2  %s %s",
		name, date, formatKg(l.CO2), formatKg(l.Amount), cat.Unit())
}

// Render draws the whole dashboard as text.
func Render(s Summary) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Hello, " + s.Name))
	b.WriteString("\n\n")

	total := fmt.Sprintf("%.1f kg", s.TotalCO2)
	status := s.Status()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total CO2", total, goodStyle),
		card("Total Logs", strconv.Itoa(s.Count), goodStyle),
		card("Status", status, statusStyle(status)),
	))
	b.WriteString("\n")

	pct := s.UsedPercent()
	b.WriteString(headingStyle.Render("Your Daily Limit"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d%%", Gauge(pct), pct))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("You have used %.1f kg of your %s kg daily carbon budget.",
		s.TotalCO2, formatKg(s.BudgetKg)))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Recent Activity"))
	b.WriteString("\n")
	if len(s.Logs) == 0 {
		b.WriteString(mutedStyle.Render(EmptyHint))
		b.WriteString("\n")
		return b.String()
	}
	for _, l := range s.Logs {
		b.WriteString(ActivityLine(l))
		b.WriteString("\n")
	}
	return b.String()
}
