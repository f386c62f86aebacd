package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/vmaslov/authgate/internal/client/models"
	"github.com/vmaslov/authgate/internal/errx"
	"github.com/vmaslov/authgate/internal/logging"
)

// userKey is the namespaced slot key inside the session_store table.
const userKey = "auth.user"

type SQLiteRepository struct {
	db  *sql.DB
	log logging.Logger
}

func NewSQLiteRepository(db *sql.DB, log logging.Logger) *SQLiteRepository {
	if log == nil {
		log = logging.NewNop()
	}
	return &SQLiteRepository{db: db, log: log}
}

func (r *SQLiteRepository) Get(ctx context.Context) (*models.User, bool) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session_store WHERE key = ?`, userKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false
	}
	if err != nil {
		r.log.Warn(ctx, "failed to read user profile, treating as absent", "error", err)
		return nil, false
	}

	var user models.User
	if err := json.Unmarshal(value, &user); err != nil {
		// a corrupt slot must not crash startup
		r.log.Warn(ctx, "failed to decode stored user profile, treating as absent", "error", err)
		return nil, false
	}
	return &user, true
}

func (r *SQLiteRepository) Set(ctx context.Context, user *models.User) error {
	value, err := json.Marshal(user)
	if err != nil {
		return errx.Unknown("Failed to store user profile").WithCause(err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO session_store (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, userKey, value)
	if err != nil {
		return errx.Unknown("Failed to store user profile").WithCause(err)
	}
	return nil
}

func (r *SQLiteRepository) Remove(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session_store WHERE key = ?`, userKey)
	if err != nil {
		return errx.Unknown("Failed to remove user profile").WithCause(err)
	}
	return nil
}
