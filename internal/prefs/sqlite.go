package prefs

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite"

	"github.com/bethropolis/tidenote/internal/logger"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS prefs (
    key   TEXT PRIMARY KEY,
    kind  TEXT NOT NULL,      -- 's' for strings, 'i' for ints
    str   TEXT,
    num   INTEGER
);
`

// SQLiteStore keeps preferences in a SQLite table. Writes are staged in
// memory and applied in one transaction on Commit.
type SQLiteStore struct {
	db      *sql.DB
	pending map[string]value
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (or creates) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite preferences need a database path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	logger.Debugf("Prefs: Opened SQLite store '%s'", path)
	return &SQLiteStore{db: db, pending: make(map[string]value)}, nil
}

func (s *SQLiteStore) PutString(key, v string) { s.pending[key] = value{str: v} }

func (s *SQLiteStore) PutInt(key string, v int) { s.pending[key] = value{isInt: true, num: v} }

func (s *SQLiteStore) Remove(key string) { s.pending[key] = value{del: true} }

// lookup returns the staged value if any, else the stored one.
func (s *SQLiteStore) lookup(key string) (value, bool) {
	if v, ok := s.pending[key]; ok {
		return v, !v.del
	}

	var kind string
	var str sql.NullString
	var num sql.NullInt64
	err := s.db.QueryRow("SELECT kind, str, num FROM prefs WHERE key = ?", key).Scan(&kind, &str, &num)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Errorf("Prefs: Failed to read '%s': %v", key, err)
		}
		return value{}, false
	}
	switch kind {
	case "s":
		return value{str: str.String}, str.Valid
	case "i":
		return value{isInt: true, num: int(num.Int64)}, num.Valid
	default:
		logger.Warnf("Prefs: Key '%s' has unknown kind %q", key, kind)
		return value{}, false
	}
}

func (s *SQLiteStore) GetString(key string) (string, bool) {
	v, ok := s.lookup(key)
	if !ok || v.isInt {
		return "", false
	}
	return v.str, true
}

func (s *SQLiteStore) GetInt(key string) (int, bool) {
	v, ok := s.lookup(key)
	if !ok || !v.isInt {
		return 0, false
	}
	return v.num, true
}

// Commit applies every staged write in a single transaction.
func (s *SQLiteStore) Commit() error {
	if len(s.pending) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	upsert, err := tx.Prepare("INSERT OR REPLACE INTO prefs (key, kind, str, num) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer upsert.Close()

	keys := make([]string, 0, len(s.pending))
	for k := range s.pending {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := s.pending[k]
		switch {
		case v.del:
			_, err = tx.Exec("DELETE FROM prefs WHERE key = ?", k)
		case v.isInt:
			_, err = upsert.Exec(k, "i", nil, v.num)
		default:
			_, err = upsert.Exec(k, "s", v.str, nil)
		}
		if err != nil {
			return fmt.Errorf("failed to write '%s': %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit preferences: %w", err)
	}
	logger.Debugf("Prefs: Committed %d keys to SQLite", len(keys))
	s.pending = make(map[string]value)
	return nil
}

// Close discards uncommitted writes and closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
