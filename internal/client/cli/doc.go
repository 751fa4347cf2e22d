// Package cli provides the interactive EcoPulse command-line client.
//
// It wires configuration, the local session database, the API client and
// an interactive REPL. On start an existing session greets the user by
// name; otherwise the user registers or logs in.
//
// Commands:
//   - register, login, logout
//   - add: prompt for a category and amount, estimate CO2, submit
//   - list: print recent activity
//   - dashboard: interactive summary screen
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
