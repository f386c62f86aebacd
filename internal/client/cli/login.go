package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/vmaslov/authgate/internal/client/models"
	"github.com/vmaslov/authgate/internal/client/services"
	"github.com/vmaslov/authgate/internal/errx"
)

// loginMaxRetries bounds the shell-side retries of a transient network
// failure. The service and transport themselves never retry.
const loginMaxRetries = 2

// loginSurface prompts for credentials until a login succeeds. Returns
// false when the user quits (types "exit" or closes stdin).
func (a *App) loginSurface(ctx context.Context) bool {
	fmt.Fprintln(a.out, "Please log in (type 'exit' to quit)")

	for {
		email, err := GetSimpleText(a.reader, "Enter email", a.out)
		if err != nil {
			return false
		}
		if email == "exit" {
			return false
		}

		password, err := GetPassword(a.out)
		if err != nil {
			return false
		}

		creds := models.Credentials{Email: email, Password: string(password)}
		res, err := a.login(ctx, creds)
		if err != nil {
			a.showLoginError(err)
			continue
		}

		fmt.Fprintf(a.out, "Welcome, %s!\n", res.User.Email)
		return true
	}
}

// login submits the credentials, retrying transient network failures with
// a bounded fibonacci backoff. All other failures surface immediately.
func (a *App) login(ctx context.Context, creds models.Credentials) (*services.LoginResult, error) {
	var res *services.LoginResult

	backoff := retry.WithMaxRetries(loginMaxRetries, retry.NewFibonacci(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		r, err := a.authService.Login(ctx, creds)
		if err != nil {
			if ae, ok := errx.As(err); ok && ae.Kind == errx.KindNetwork {
				a.log.Warn(ctx, "login attempt failed, retrying", "error", ae.Message)
				return retry.RetryableError(err)
			}
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// showLoginError presents an AuthError message verbatim. Validation
// failures are shown inline next to the prompt; the other kinds as an
// alert line.
func (a *App) showLoginError(err error) {
	ae, ok := errx.As(err)
	if !ok {
		fmt.Fprintf(a.out, "[!] %s\n", err)
		return
	}
	if ae.Kind == errx.KindValidation {
		fmt.Fprintf(a.out, "  -> %s\n", ae.Message)
		return
	}
	fmt.Fprintf(a.out, "[!] %s\n", ae.Message)
}
