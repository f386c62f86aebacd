package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/vmaslov/authgate/internal/client/api"
	"github.com/vmaslov/authgate/internal/client/config"
	"github.com/vmaslov/authgate/internal/client/repositories/profile"
	"github.com/vmaslov/authgate/internal/client/repositories/session"
	"github.com/vmaslov/authgate/internal/client/services"
	"github.com/vmaslov/authgate/internal/client/storage"
	"github.com/vmaslov/authgate/internal/client/validation"
	"github.com/vmaslov/authgate/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the interactive shell around the authentication service. It owns
// no session state itself; it only decides which surface (login or home)
// to show based on the service's session queries.
type App struct {
	config      *config.Config
	authService services.AuthService
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	closeDB     func() error
}

// NewApp assembles the client: local database, stores, transport, and the
// authentication service, all constructed once and passed in explicitly.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NewNop()
	}

	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	tokens := session.NewSQLiteRepository(db, log)
	users := profile.NewSQLiteRepository(db, log)
	transport := api.NewHTTPTransport(cfg.BaseURL, cfg.RequestTimeout, log)
	svc := services.NewAuthService(validation.NewCredentialsValidator(), transport, tokens, users, log)

	return &App{
		config:      cfg,
		authService: svc,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		closeDB:     db.Close,
	}, nil
}

// Run drives the gate until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.closeDB != nil {
			_ = a.closeDB()
		}
	}()
	a.Root(ctx)
}
