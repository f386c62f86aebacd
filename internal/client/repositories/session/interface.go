// Package session persists the single opaque session token. Its mere
// presence is the authentication signal consumed by the rest of the client.
package session

import "context"

// Repository is a single-slot durable store for the session token.
//
// Get returns the token and true, or ("", false) when no token is stored.
// Read failures degrade to the absence marker rather than propagating: a
// missing session must never crash startup. Set replaces any existing
// token; Remove clears the slot.
type Repository interface {
	Get(ctx context.Context) (string, bool)
	Set(ctx context.Context, token string) error
	Remove(ctx context.Context) error
}
