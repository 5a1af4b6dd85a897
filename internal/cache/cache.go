package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	homedir "github.com/mitchellh/go-homedir"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a sqlite-backed cache of model responses keyed by prompt hash,
// so re-running against an unchanged project does not spend another API call.
type Store struct {
	db *sql.DB
}

// DefaultPath resolves the per-user cache location.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".readmegen", "cache.db"), nil
}

// Open creates or opens the cache database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init cache schema: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS responses (
		key        TEXT PRIMARY KEY,
		model      TEXT NOT NULL,
		response   TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);`)
	return err
}

// Key derives the cache key for a model/prompt pair.
func Key(model, prompt string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + prompt))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached response for key, reporting whether one exists.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var response string
	err := s.db.QueryRowContext(ctx, `SELECT response FROM responses WHERE key = ?`, key).Scan(&response)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return response, true, nil
}

// Put stores a response, replacing any previous entry for the same key.
func (s *Store) Put(ctx context.Context, key, model, response string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO responses (key, model, response, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			model=excluded.model,
			response=excluded.response,
			created_at=excluded.created_at
	`, key, model, response, time.Now().UTC())
	return err
}
