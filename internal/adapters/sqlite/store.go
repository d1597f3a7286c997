package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"betternotes/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// FileName is the database file created inside the data directory
const FileName = "betternotes.db"

// Store implements ports.ConfigStore using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements ConfigStore and BatchConfigStore
var (
	_ ports.ConfigStore      = (*Store)(nil)
	_ ports.BatchConfigStore = (*Store)(nil)
)

// NewStore creates a new SQLite config store
func NewStore() *Store {
	return &Store{}
}

// Open initializes the store inside dataDir
func (s *Store) Open(dataDir string) error {
	// Expand ~ in path
	if strings.HasPrefix(dataDir, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[1:])
	}

	return s.OpenFile(filepath.Join(dataDir, FileName))
}

// OpenFile initializes the store at an explicit database path
func (s *Store) OpenFile(dbPath string) error {
	s.dbPath = dbPath

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// WAL lets the CLI read while the TUI writes
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS config (
			grp TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (grp, key)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if stored := s.storedSchemaVersion(); newerSchema(stored) {
		db.Close()
		return fmt.Errorf("database %s has schema version %s, newer than supported %s", dbPath, stored, schemaVersion)
	}

	if err := s.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// storedSchemaVersion returns the schema version recorded in meta, empty
// for a new database
func (s *Store) storedSchemaVersion() string {
	var version string
	if err := s.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version); err != nil {
		return ""
	}
	return version
}

// newerSchema reports whether stored was written by a later version
func newerSchema(stored string) bool {
	have, err := strconv.Atoi(stored)
	if err != nil {
		return false
	}
	want, _ := strconv.Atoi(schemaVersion)
	return have > want
}

func (s *Store) updateMeta() error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)
	return err
}

// Get returns the value stored under group and key
func (s *Store) Get(group, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM config WHERE grp = ? AND key = ?`, group, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s.%s: %w", group, key, err)
	}
	return value, true, nil
}

// Set stores value under group and key
func (s *Store) Set(group, key, value string) error {
	if _, err := s.db.Exec(upsertSQL, group, key, value); err != nil {
		return fmt.Errorf("failed to write %s.%s: %w", group, key, err)
	}
	return nil
}

// Unset removes group and key. Removing an absent key is not an error.
func (s *Store) Unset(group, key string) error {
	if _, err := s.db.Exec(`DELETE FROM config WHERE grp = ? AND key = ?`, group, key); err != nil {
		return fmt.Errorf("failed to remove %s.%s: %w", group, key, err)
	}
	return nil
}

// SetMany writes all values in one transaction
func (s *Store) SetMany(group string, values map[string]string) error {
	tx, err := s.beginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for key, value := range values {
		if err := tx.set(group, key, value); err != nil {
			tx.rollback()
			return fmt.Errorf("failed to write %s.%s: %w", group, key, err)
		}
	}

	if err := tx.commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
