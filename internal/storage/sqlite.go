package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"nitvon/internal/game"

	_ "modernc.org/sqlite"
)

// SnapshotKey is the fixed slot the whole game state lives under. One
// row per installation.
const SnapshotKey = "nitvon-game-state"

// snapshotVersion tags the serialized layout. A snapshot written by an
// incompatible build is discarded in favor of defaults instead of being
// migrated.
const snapshotVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
    key      TEXT PRIMARY KEY,
    body     BLOB     NOT NULL,
    saved_at DATETIME NOT NULL
);
`

type envelope struct {
	Version int            `json:"version"`
	State   game.GameState `json:"state"`
}

// Snapshots persists the full game state to a local SQLite file. Loads
// that fail for any reason degrade to the fixed defaults; the player
// never sees a storage error.
type Snapshots struct {
	db  *sql.DB
	log *slog.Logger
}

// DefaultPath returns the per-user save location, creating its directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".nitvon")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.db"), nil
}

// Open opens (or creates) the snapshot database at the given path.
func Open(path string, logger *slog.Logger) (*Snapshots, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.Open: open %q: %w", path, err)
	}
	// SQLite is single-writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.Open: apply schema: %w", err)
	}
	return &Snapshots{db: db, log: logger}, nil
}

func (s *Snapshots) Close() error {
	return s.db.Close()
}

// Load restores the persisted state. A missing, corrupt or
// version-mismatched snapshot silently yields the default state.
func (s *Snapshots) Load(ctx context.Context) game.GameState {
	var body []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM snapshots WHERE key = ?`, SnapshotKey,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return game.DefaultState()
	}
	if err != nil {
		s.log.Warn("snapshot read failed, starting fresh", "err", err)
		return game.DefaultState()
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		s.log.Warn("snapshot corrupt, starting fresh", "err", err)
		return game.DefaultState()
	}
	if env.Version != snapshotVersion {
		s.log.Warn("snapshot version mismatch, starting fresh",
			"got", env.Version, "want", snapshotVersion)
		return game.DefaultState()
	}
	return env.State
}

// Save upserts the snapshot under the fixed key.
func (s *Snapshots) Save(ctx context.Context, state game.GameState) error {
	body, err := json.Marshal(envelope{Version: snapshotVersion, State: state})
	if err != nil {
		return fmt.Errorf("storage.Save: marshal: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, body, saved_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET body = excluded.body, saved_at = excluded.saved_at
	`, SnapshotKey, body)
	if err != nil {
		return fmt.Errorf("storage.Save: upsert: %w", err)
	}
	return nil
}

// Attach subscribes the adapter to the store so every mutation is
// snapshotted. Writes are fire-and-forget: a failure is logged and the
// in-memory state stands.
func (s *Snapshots) Attach(st *game.Store) {
	st.Subscribe(func(state game.GameState) {
		if err := s.Save(context.Background(), state); err != nil {
			s.log.Warn("snapshot write failed", "err", err)
		}
	})
}
