// Package services contains application services for the EcoPulse client:
// authentication with a locally persisted session, and emission logging.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ecopulse/ecopulse/internal/client/client"
	"github.com/ecopulse/ecopulse/internal/client/repositories/session"
	"github.com/ecopulse/ecopulse/internal/dbx"
)

// Session is the locally stored login state.
type Session struct {
	Token string
	Name  string
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create a new account on the server (does not log in).
//   - Login: authenticate and persist token and display name locally.
//   - Logout: wipe the local session.
//   - Session: return the stored session or client.ErrNotLoggedIn.
//   - Ping: check server liveness.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*Session, error)
	Ping(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
}

func NewAuthService(client client.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) getSessionRepo(db dbx.DBTX) session.Repository {
	return session.NewSQLiteRepository(db)
}

func (a *authService) Register(ctx context.Context, name, email, password string) error {
	if _, err := a.client.Register(ctx, name, email, password); err != nil {
		return err
	}
	return nil
}

// Login authenticates against the server and saves the token and name in a
// single transaction.
func (a *authService) Login(ctx context.Context, email, password string) (*Session, error) {
	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.getSessionRepo(tx)
		if err := repo.Set(ctx, session.KeyToken, res.Token); err != nil {
			return err
		}
		return repo.Set(ctx, session.KeyName, res.Name)
	})
	if err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	return &Session{Token: res.Token, Name: res.Name}, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.getSessionRepo(a.db).Clear(ctx)
}

func (a *authService) Session(ctx context.Context) (*Session, error) {
	repo := a.getSessionRepo(a.db)

	token, err := repo.Get(ctx, session.KeyToken)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, client.ErrNotLoggedIn
	}

	name, err := repo.Get(ctx, session.KeyName)
	if err != nil {
		return nil, err
	}

	return &Session{Token: token, Name: name}, nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
