// Package common contains shared constants and sentinel errors used across
// EcoPulse components.
package common

// AccessTokenHeaderName is the HTTP header carrying the signed access token
// on authenticated API calls.
const AccessTokenHeaderName = "x-access-token"

// Response status values carried in the "status" field of every API body.
const (
	StatusOK    = "ok"
	StatusError = "error"
)
