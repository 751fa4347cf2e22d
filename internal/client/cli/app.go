package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ecopulse/ecopulse/internal/client/client"
	"github.com/ecopulse/ecopulse/internal/client/config"
	"github.com/ecopulse/ecopulse/internal/client/services"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	logService  services.LogService
	db          *sql.DB

	in       io.Reader
	reader   *bufio.Reader
	out      io.Writer
	loggedIn bool
	userName string
}

// NewApp opens the session database and builds the API-backed services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := client.InitDatabase(ctx, c.SessionDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)

	as := services.NewAuthService(apiClient, db)
	ls := services.NewLogService(apiClient, as)

	app := newApp(c, as, ls, os.Stdin, os.Stdout)
	app.db = db
	return app, nil
}

func newApp(c *config.Config, as services.AuthService, ls services.LogService, in io.Reader, out io.Writer) *App {
	return &App{
		config:      c,
		authService: as,
		logService:  ls,
		in:          in,
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) setSession(s *services.Session) {
	if s == nil {
		a.loggedIn = false
		a.userName = ""
		return
	}
	a.loggedIn = true
	a.userName = s.Name
}

func (a *App) getStatus() string {
	if !a.loggedIn {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// restoreSession picks up a session saved by a previous run.
func (a *App) restoreSession(ctx context.Context) {
	s, err := a.authService.Session(ctx)
	if err != nil {
		return
	}
	a.setSession(s)
	fmt.Fprintf(a.out, "Welcome back, %s!\n", s.Name)
}

// Run greets the user and serves commands until exit or end of input.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn(`Welcome to EcoPulse CLI (type "help" for commands)`)
	if err := a.authService.Ping(ctx); err != nil {
		printlnFn(msgServerError)
	}
	a.restoreSession(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the session database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
