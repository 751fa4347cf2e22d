package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/ecopulse/ecopulse/internal/client/dashboard"
	"github.com/ecopulse/ecopulse/internal/client/models"
	"github.com/ecopulse/ecopulse/internal/emission"
)

// runDashboard is a test seam for the interactive dashboard screen.
var runDashboard = dashboard.Run

func categoryPrompt() string {
	names := make([]string, 0, len(emission.Categories()))
	for _, c := range emission.Categories() {
		names = append(names, string(c))
	}
	return fmt.Sprintf("Category (%s)", strings.Join(names, ", "))
}

// Add prompts for a category and amount and submits a log with a locally
// estimated CO2 value.
func (a *App) Add(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	var category emission.Category
	for {
		s, err := getSimpleText(a.reader, categoryPrompt(), a.out)
		if err != nil {
			return err
		}
		category, err = emission.ParseCategory(s)
		if err == nil {
			break
		}
		fmt.Fprintln(a.out, "Unknown category:", s)
	}

	amount, err := GetAmount(a.reader, fmt.Sprintf("Amount (%s)", category.Unit()), a.out)
	if err != nil {
		return err
	}

	l, err := a.logService.Add(ctx, category, amount)
	if err != nil {
		a.reportError(ctx, err, "Failed to add log")
		return err
	}

	fmt.Fprintf(a.out, "Logged %s kg CO2 for %s.\n", formatFloat(l.CO2), l.Category)
	return nil
}

// List prints the user's logs, newest first.
func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	logs, err := a.logService.List(ctx)
	if err != nil {
		a.reportError(ctx, err, "Failed to fetch logs")
		return err
	}

	printLogs(a.out, logs)
	return nil
}

func printLogs(w io.Writer, logs []*models.EmissionLog) {
	if len(logs) == 0 {
		fmt.Fprintln(w, dashboard.EmptyHint)
		return
	}
	for _, l := range logs {
		fmt.Fprintln(w, dashboard.ActivityLine(l))
	}
}

// Dashboard opens the interactive summary screen.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	var (
		mu      sync.Mutex
		loadErr error
	)
	load := func(ctx context.Context) ([]*models.EmissionLog, error) {
		logs, err := a.logService.List(ctx)
		mu.Lock()
		loadErr = err
		mu.Unlock()
		return logs, err
	}

	if err := runDashboard(ctx, a.in, a.out, a.userName, a.config.DailyBudgetKg, load); err != nil {
		fmt.Fprintln(a.out, "Dashboard error:", err)
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	if loadErr != nil {
		a.reportError(ctx, loadErr, "Failed to fetch logs")
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(emission.Round2(v), 'f', -1, 64)
}
