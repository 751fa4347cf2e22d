// Package client contains client-side building blocks for EcoPulse.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Register, Login, CreateLog, ListLogs and Ping.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that attaches the
//     x-access-token header and decodes the {"status": ...} envelope.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. A {"status":"error"} reply is an
// *APIError holding the server's message; it matches ErrRejected, and also
// ErrUnauthorized when the token was missing or refused.
package client
