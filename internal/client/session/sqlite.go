package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/a1br4h33m/IMDB-Redesign/internal/client/models"
	"github.com/a1br4h33m/IMDB-Redesign/internal/dbx"
)

const (
	keyToken = "auth_token"
	keyUser  = "user_profile"
)

const schema = `
CREATE TABLE IF NOT EXISTS session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`

// SQLiteStore is the Store implementation over a local sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if necessary) the session database at dsn.
func Open(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init session schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStore wraps an existing database handle. The session table must
// already exist.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

// Load returns the persisted session, or nil when either field is missing or
// the stored profile is not valid JSON.
func (s *SQLiteStore) Load(ctx context.Context) (*Session, error) {
	token, err := s.get(ctx, s.db, keyToken)
	if err != nil {
		return nil, err
	}
	userRaw, err := s.get(ctx, s.db, keyUser)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 || len(userRaw) == 0 {
		return nil, nil
	}

	var user models.UserProfile
	if err := json.Unmarshal(userRaw, &user); err != nil {
		return nil, nil
	}
	return &Session{Token: string(token), User: user}, nil
}

// Save writes token and profile in a single transaction, overwriting any
// prior session.
func (s *SQLiteStore) Save(ctx context.Context, token string, user models.UserProfile) error {
	userRaw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user profile: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyToken, []byte(token)); err != nil {
			return err
		}
		return set(ctx, tx, keyUser, userRaw)
	})
}

// Clear removes the stored session. Clearing an empty store is not an error.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
