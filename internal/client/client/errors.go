package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrRejected     = errors.New("request rejected")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotLoggedIn  = errors.New("not logged in")
)

// Server messages that mean the token was missing or not accepted.
const (
	msgNoToken      = "No token provided"
	msgInvalidToken = "Invalid token"
)

// APIError carries the error string from a {"status":"error"} response. It
// matches ErrRejected, and ErrUnauthorized when the token was refused.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrRejected:
		return true
	case ErrUnauthorized:
		return e.Message == msgNoToken || e.Message == msgInvalidToken
	}
	return false
}
