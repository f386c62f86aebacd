package cli

import (
	"context"
	"fmt"
	"strings"
)

// home is the authenticated surface. Returns true to hand control back to
// the gate (after logout) and false when the user exits the program.
func (a *App) home(ctx context.Context) bool {
	if user, ok := a.authService.Profile(ctx); ok {
		fmt.Fprintf(a.out, "Logged in as %s\n", user.Email)
	} else {
		// token present but no stored profile; an accepted gap, the
		// session itself is still valid
		fmt.Fprintln(a.out, "Logged in")
	}

	for {
		fmt.Fprint(a.out, "authgate> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return false
		}

		switch strings.TrimSpace(line) {
		case "":
			continue
		case "help":
			fmt.Fprintln(a.out, "Available commands: whoami, logout, exit")
		case "whoami":
			a.whoami(ctx)
		case "logout":
			if err := a.authService.Logout(ctx); err != nil {
				fmt.Fprintf(a.out, "[!] %s\n", err)
				continue
			}
			fmt.Fprintln(a.out, "Logged out")
			return true
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return false
		default:
			fmt.Fprintln(a.out, "Unknown command:", strings.TrimSpace(line))
		}
	}
}

func (a *App) whoami(ctx context.Context) {
	user, ok := a.authService.Profile(ctx)
	if !ok {
		fmt.Fprintln(a.out, "No profile stored for this session")
		return
	}
	fmt.Fprintf(a.out, "id:      %s\n", user.ID)
	fmt.Fprintf(a.out, "email:   %s\n", user.Email)
	fmt.Fprintf(a.out, "roles:   %s\n", strings.Join(user.Roles, ", "))
	fmt.Fprintf(a.out, "lang:    %s\n", user.Lang)
	fmt.Fprintf(a.out, "enabled: %t\n", user.Enabled)
}
