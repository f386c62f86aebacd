// Package profile persists the last-authenticated user profile. The stored
// profile is superseded wholesale on each successful login.
package profile

import (
	"context"

	"github.com/vmaslov/authgate/internal/client/models"
)

// Repository is a single-slot durable store for the user profile.
//
// Get returns the profile and true, or (nil, false) when none is stored.
// Read failures degrade to the absence marker rather than propagating.
type Repository interface {
	Get(ctx context.Context) (*models.User, bool)
	Set(ctx context.Context, user *models.User) error
	Remove(ctx context.Context) error
}
