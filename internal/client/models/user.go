// Package models defines client-side data models used by the authgate client.
package models

// User is the authenticated profile returned by the backend and persisted
// locally. It is superseded wholesale on each successful login; there are
// no partial updates.
type User struct {
	// ID is an opaque identifier assigned by the backend.
	ID string `json:"id"`

	// Email is the address the user authenticated with.
	Email string `json:"email"`

	// Roles is the set of role names granted to the user. Order carries
	// no meaning.
	Roles []string `json:"roles"`

	// Lang is the user's locale tag (e.g. "en").
	Lang string `json:"lang"`

	// Enabled reports whether the account is active.
	Enabled bool `json:"enabled"`
}
