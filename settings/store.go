// Copyright 2025 The dockboard authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package settings

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	_ "modernc.org/sqlite"
)

// Preference group keys in the settings table. Each key holds one JSON
// document; keys unknown to this version are left alone, so a database
// written by a newer version stays usable.
const (
	keySchemaVersion = "schema_version"
	keyFavorites     = "favorites"
	keyAppearance    = "appearance"
	keySort          = "sort_settings"
	keyContainers    = "containers"
)

// schemaVersion is the version written into fresh settings databases.
const schemaVersion = "1"

// Store persists dashboard [Settings] in a SQLite database at a fixed,
// operator-configured location. The store is the sole writer of that
// database; all mutations are serialized and committed before the mutating
// call returns.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens (and if necessary creates) the settings database at path,
// creating parent directories as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create settings directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := db.Exec(
		`CREATE TABLE IF NOT EXISTS settings (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create settings table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the current settings, falling back to the defaults for any
// preference group that has never been written.
func (s *Store) Get() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// UpdateFavorites adds and removes service IDs from the favorites set and
// returns the resulting settings. Adding an already-favorited ID and
// removing a non-favorited one are no-ops, so updates are idempotent.
func (s *Store) UpdateFavorites(add, remove []string) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return Settings{}, err
	}
	favs := current.Favorites
	for _, id := range add {
		if idx, ok := slices.BinarySearch(favs, id); !ok {
			favs = slices.Insert(favs, idx, id)
		}
	}
	for _, id := range remove {
		if idx, ok := slices.BinarySearch(favs, id); ok {
			favs = slices.Delete(favs, idx, idx+1)
		}
	}
	current.Favorites = favs
	if err := s.save(keyFavorites, favs); err != nil {
		return Settings{}, err
	}
	return current, nil
}

// UpdateAppearance sets a single appearance option to the chosen value and
// returns the resulting settings. Values outside the fixed option set yield
// a *ValidationError and leave the stored value unchanged.
func (s *Store) UpdateAppearance(option, value string) (Settings, error) {
	if err := validateAppearance(option, value); err != nil {
		return Settings{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return Settings{}, err
	}
	current.Appearance[option] = value
	if err := s.save(keyAppearance, current.Appearance); err != nil {
		return Settings{}, err
	}
	return current, nil
}

// UpdateSort replaces the service display order settings.
func (s *Store) UpdateSort(sort SortSettings) (Settings, error) {
	if err := validateSort(sort); err != nil {
		return Settings{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return Settings{}, err
	}
	current.Sort = sort
	if err := s.save(keySort, sort); err != nil {
		return Settings{}, err
	}
	return current, nil
}

// UpdateContainer replaces the per-container presentation overrides for the
// service with the given ID.
func (s *Store) UpdateContainer(id string, cs ContainerSettings) (Settings, error) {
	if id == "" {
		return Settings{}, &ValidationError{Field: "id", Value: id, Reason: "must not be empty"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return Settings{}, err
	}
	current.Containers[id] = cs
	if err := s.save(keyContainers, current.Containers); err != nil {
		return Settings{}, err
	}
	return current, nil
}

// HideService marks the service with the given ID as hidden, creating its
// container settings record if the operator never configured it before.
func (s *Store) HideService(id string) (Settings, error) {
	if id == "" {
		return Settings{}, &ValidationError{Field: "id", Value: id, Reason: "must not be empty"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return Settings{}, err
	}
	cs := current.Container(id)
	cs.Visible = false
	current.Containers[id] = cs
	if err := s.save(keyContainers, current.Containers); err != nil {
		return Settings{}, err
	}
	return current, nil
}

// DeleteContainer removes the presentation overrides of the service with the
// given ID. Deleting a record that does not exist is not an error.
func (s *Store) DeleteContainer(id string) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return Settings{}, err
	}
	delete(current.Containers, id)
	if err := s.save(keyContainers, current.Containers); err != nil {
		return Settings{}, err
	}
	return current, nil
}

// load assembles the current settings from the stored preference groups,
// starting from the defaults so that missing groups and missing fields keep
// their default meaning. Callers must hold s.mu.
func (s *Store) load() (Settings, error) {
	settings := Default()

	rows, err := s.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
		switch key {
		case keyFavorites:
			var favs []string
			if err := json.Unmarshal([]byte(value), &favs); err != nil {
				return Settings{}, fmt.Errorf("decode favorites: %w", err)
			}
			slices.Sort(favs)
			settings.Favorites = slices.Compact(favs)
		case keyAppearance:
			var appearance map[string]string
			if err := json.Unmarshal([]byte(value), &appearance); err != nil {
				return Settings{}, fmt.Errorf("decode appearance: %w", err)
			}
			// Only take over options of the fixed set; stored options
			// unknown to this version are ignored, missing ones keep their
			// defaults.
			for option, chosen := range appearance {
				if _, ok := appearanceOptions[option]; ok {
					settings.Appearance[option] = chosen
				}
			}
		case keySort:
			var sort SortSettings
			if err := json.Unmarshal([]byte(value), &sort); err != nil {
				return Settings{}, fmt.Errorf("decode sort settings: %w", err)
			}
			if slices.Contains(sortMethods, sort.Method) {
				settings.Sort = sort
			}
		case keyContainers:
			var containers map[string]ContainerSettings
			if err := json.Unmarshal([]byte(value), &containers); err != nil {
				return Settings{}, fmt.Errorf("decode container settings: %w", err)
			}
			settings.Containers = containers
		}
	}
	if err := rows.Err(); err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	return settings, nil
}

// save writes a single preference group document; the write is committed,
// and thus durable, before save returns. Callers must hold s.mu.
func (s *Store) save(key string, group any) error {
	doc, err := json.Marshal(group)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	upsert := `INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := tx.Exec(upsert, key, string(doc)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("write %s: %w", key, err)
	}
	if _, err := tx.Exec(upsert, keySchemaVersion, schemaVersion); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
