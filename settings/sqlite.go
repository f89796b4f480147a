// Package settings persists the user's local preferences, most importantly the list of
// service providers they allow.
package settings

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/evrazdex/gateway-resolver/types"
)

var _ types.UserPreferenceStore = (*SQLiteStore)(nil)

const FilteredServiceProvidersKey = "filteredServiceProviders"

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL
);
`

// SQLiteStore keeps settings in a SQLite database. The filter list is loaded on open and
// served from memory; writes go to the database first.
type SQLiteStore struct {
	db *sql.DB

	mu        sync.RWMutex
	providers []string
}

// NewSQLiteStore opens dbPath, runs migrations and seeds defaults for keys that were never
// written.
func NewSQLiteStore(dbPath string, defaults []string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s := &SQLiteStore{db: db}
	if defaults != nil {
		raw, err := json.Marshal(defaults)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("marshal defaults: %w", err)
		}
		if _, err := db.Exec(
			`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`,
			FilteredServiceProvidersKey, string(raw),
		); err != nil {
			db.Close()
			return nil, fmt.Errorf("seed defaults: %w", err)
		}
	}

	providers, err := s.load()
	if err != nil {
		db.Close()
		return nil, err
	}
	s.providers = providers
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) load() ([]string, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, FilteredServiceProvidersKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", FilteredServiceProvidersKey, err)
	}

	var providers []string
	if err := json.Unmarshal([]byte(raw), &providers); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", FilteredServiceProvidersKey, err)
	}
	if providers == nil {
		providers = []string{}
	}
	return providers, nil
}

func (s *SQLiteStore) FilteredServiceProviders() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.providers)
}

// SetFilteredServiceProviders persists providers. The next read observes the new list.
func (s *SQLiteStore) SetFilteredServiceProviders(providers []string) error {
	if providers == nil {
		providers = []string{}
	}
	raw, err := json.Marshal(providers)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", FilteredServiceProvidersKey, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		FilteredServiceProvidersKey, string(raw),
	)
	if err != nil {
		return fmt.Errorf("set %s: %w", FilteredServiceProvidersKey, err)
	}
	s.providers = clone(providers)
	return nil
}
