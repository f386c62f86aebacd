package session

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vmaslov/authgate/internal/errx"
	"github.com/vmaslov/authgate/internal/logging"
)

// tokenKey is the namespaced slot key inside the session_store table.
const tokenKey = "auth.token"

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

func (r *SQLiteRepository) Get(ctx context.Context) (string, bool) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session_store WHERE key = ?`, tokenKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		r.log.Warn(ctx, "failed to read session token, treating as absent", "error", err)
		return "", false
	}
	if len(value) == 0 {
		return "", false
	}
	return string(value), true
}

func (r *SQLiteRepository) Set(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_store (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, tokenKey, []byte(token))
	if err != nil {
		return errx.Unknown("Failed to store session token").WithCause(err)
	}
	return nil
}

func (r *SQLiteRepository) Remove(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session_store WHERE key = ?`, tokenKey)
	if err != nil {
		return errx.Unknown("Failed to remove session token").WithCause(err)
	}
	return nil
}
