package cli

import (
	"context"
	"fmt"
)

// Root is the session gate: it shows the login surface until a session
// exists, then the home surface until logout or exit. The startup check is
// a pure presence query; anything short of a stored token lands on the
// login surface (fail closed).
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to authgate")

	for {
		if a.authService.IsAuthenticated(ctx) {
			if !a.home(ctx) {
				return
			}
			continue
		}
		if !a.loginSurface(ctx) {
			return
		}
	}
}
