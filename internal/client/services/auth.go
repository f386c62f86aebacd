// Package services contains application services for the authgate client.
// This file defines the authentication service: credential validation,
// the remote login call, response mapping, and local session persistence.
package services

import (
	"context"

	"github.com/vmaslov/authgate/internal/client/api"
	"github.com/vmaslov/authgate/internal/client/models"
	"github.com/vmaslov/authgate/internal/client/repositories/profile"
	"github.com/vmaslov/authgate/internal/client/repositories/session"
	"github.com/vmaslov/authgate/internal/client/validation"
	"github.com/vmaslov/authgate/internal/errx"
	"github.com/vmaslov/authgate/internal/logging"
)

// loginPath is the remote authentication endpoint, relative to the base URL.
const loginPath = "/auth/login"

// AuthService orchestrates the login pipeline and session queries.
//
// Contract:
//   - Login: validate -> remote call -> map response -> persist token and
//     profile -> result. Exactly one outcome per attempt: a result or an
//     error, never both. Every dependency failure surfaces unchanged.
//   - Logout: clears the persisted token (and profile, if configured).
//   - IsAuthenticated: token presence only; no expiry or signature check.
//   - Token, Profile: passthrough reads of the local stores.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*LoginResult, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	Token(ctx context.Context) (string, bool)
	Profile(ctx context.Context) (*models.User, bool)
}

// LoginResult is the successful outcome of a login attempt.
type LoginResult struct {
	User  models.User
	Token string
}

// authService is the concrete AuthService backed by a Transport and the
// local single-slot stores.
type authService struct {
	validator validation.Validator
	transport api.Transport
	tokens    session.Repository
	users     profile.Repository
	log       logging.Logger
}

// NewAuthService constructs an AuthService. The profile repository is
// optional: pass nil to skip profile persistence. A nil logger discards
// output.
func NewAuthService(
	validator validation.Validator,
	transport api.Transport,
	tokens session.Repository,
	users profile.Repository,
	log logging.Logger,
) AuthService {
	if log == nil {
		log = logging.NewNop()
	}
	return &authService{
		validator: validator,
		transport: transport,
		tokens:    tokens,
		users:     users,
		log:       log,
	}
}

// Login runs the full authentication pipeline. Invalid credentials never
// reach the network; a malformed backend envelope never reaches storage.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (*LoginResult, error) {
	if verr := a.validator.Validate(creds); verr != nil {
		return nil, verr
	}

	var resp api.LoginResponse
	req := api.LoginRequest{Email: creds.Email, Password: creds.Password}
	if err := a.transport.Post(ctx, loginPath, req, &resp); err != nil {
		return nil, err
	}

	payload := resp.Data.LoginV2
	if payload.Token == "" || payload.User.UUID == "" || payload.User.Email == "" {
		a.log.Warn(ctx, "login response missing token or user identity")
		return nil, errx.Unknown("Invalid login response")
	}

	user := models.User{
		ID:      payload.User.UUID,
		Email:   payload.User.Email,
		Roles:   payload.User.Roles,
		Lang:    payload.User.Lang,
		Enabled: payload.User.Enabled,
	}

	if err := a.tokens.Set(ctx, payload.Token); err != nil {
		return nil, err
	}
	if a.users != nil {
		if err := a.users.Set(ctx, &user); err != nil {
			return nil, err
		}
	}

	a.log.Info(ctx, "login succeeded", "user_id", user.ID)
	return &LoginResult{User: user, Token: payload.Token}, nil
}

// Logout clears the persisted session. Store failures propagate so the
// caller knows the session may still be present on disk.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.tokens.Remove(ctx); err != nil {
		return err
	}
	if a.users != nil {
		if err := a.users.Remove(ctx); err != nil {
			return err
		}
	}
	a.log.Info(ctx, "logged out")
	return nil
}

// IsAuthenticated reports whether a session token is currently stored.
// This is a presence check only.
func (a *authService) IsAuthenticated(ctx context.Context) bool {
	_, ok := a.tokens.Get(ctx)
	return ok
}

func (a *authService) Token(ctx context.Context) (string, bool) {
	return a.tokens.Get(ctx)
}

// Profile returns the last persisted user profile, if any. With no profile
// repository configured it always reports absence.
func (a *authService) Profile(ctx context.Context) (*models.User, bool) {
	if a.users == nil {
		return nil, false
	}
	return a.users.Get(ctx)
}
