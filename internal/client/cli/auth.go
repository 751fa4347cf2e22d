package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecopulse/ecopulse/internal/client/client"
	"github.com/ecopulse/ecopulse/internal/common"
)

const (
	msgServerError        = "Server error. Is the backend running?"
	msgInvalidCredentials = "Invalid email or password"
	msgRegistrationFailed = "Registration failed"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, email and password and creates the account.
// It does not log in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, name, email, string(password)); err != nil {
		var apiErr *client.APIError
		switch {
		case errors.As(err, &apiErr) && apiErr.Message != "":
			fmt.Fprintln(a.out, apiErr.Message)
		case errors.Is(err, client.ErrRejected):
			fmt.Fprintln(a.out, msgRegistrationFailed)
		default:
			fmt.Fprintln(a.out, msgServerError)
		}
		return err
	}

	fmt.Fprintln(a.out, "Registration successful! Please log in.")
	return nil
}

// Login prompts for credentials and stores the session on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, client.ErrRejected) {
			fmt.Fprintln(a.out, msgInvalidCredentials)
		} else {
			fmt.Fprintln(a.out, msgServerError)
		}
		return err
	}

	a.setSession(s)
	fmt.Fprintf(a.out, "Hello, %s!\n", s.Name)
	return nil
}

// Logout wipes the local session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err)
		return err
	}
	a.setSession(nil)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// reportError prints a user-facing message for err. A refused token drops
// the local session so the user is asked to log in again.
func (a *App) reportError(ctx context.Context, err error, fallback string) {
	switch {
	case errors.Is(err, client.ErrNotLoggedIn):
		a.setSession(nil)
		fmt.Fprintln(a.out, "Please log in first.")
	case errors.Is(err, client.ErrUnauthorized):
		_ = a.authService.Logout(ctx)
		a.setSession(nil)
		fmt.Fprintln(a.out, "Session expired. Please log in again.")
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, msgServerError)
	default:
		fmt.Fprintln(a.out, fallback)
	}
}
