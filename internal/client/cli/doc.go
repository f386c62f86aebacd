// Package cli provides the interactive authgate shell.
//
// It wires configuration, local storage, the HTTP transport, and the
// authentication service, then runs a small gate: a login surface while
// no session token is stored, a home surface while one is.
//
// Key behavior:
//   - Startup shows the home surface iff a session token is present; any
//     failure reading local state falls back to the login surface.
//   - AuthError messages are shown verbatim; validation failures inline,
//     everything else as an alert line.
//   - Transient network failures on submit are retried by the shell with
//     bounded backoff; no other layer retries.
//
// The gate is started via App.Root(ctx), which blocks until the user exits.
package cli
