// Package store persists pattern history and favorites as two JSON
// documents under a per-user configuration directory.
//
// Information Hiding:
// - File paths and JSON layout hidden behind load/save methods
// - History truncation applied on save, invisible to callers
// - The directory is injected at construction; no process-global path
//
// Concurrent invocations racing load-modify-save are not protected; the
// tool assumes a single interactive user.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/DonkRonk17/RegexLab/engine"
	"github.com/google/uuid"
)

const (
	// historyLimit bounds the persisted history length on every save.
	historyLimit = 50
	// testStringLimit bounds the stored subject text per history entry.
	testStringLimit = 100
)

// HistoryEntry is one recorded pattern test, oldest first on disk.
type HistoryEntry struct {
	ID         string       `json:"id,omitempty"`
	Pattern    string       `json:"pattern"`
	TestString string       `json:"test_string"`
	Flags      engine.Flags `json:"flags"`
	Timestamp  time.Time    `json:"timestamp"`
}

// FavoriteEntry is one user-named saved pattern, keyed by name in the
// favorites document.
type FavoriteEntry struct {
	ID          string    `json:"id,omitempty"`
	Pattern     string    `json:"pattern"`
	Description string    `json:"description,omitempty"`
	Created     time.Time `json:"created"`
}

// Store reads and writes the two JSON documents in dir.
type Store struct {
	dir string
}

// New creates a store rooted at dir. Call Init before first use.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Init ensures the directory and both documents exist, seeding an empty
// list and an empty map when absent. Safe to call on every start.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := seedFile(s.historyPath(), []byte("[]")); err != nil {
		return err
	}
	return seedFile(s.favoritesPath(), []byte("{}"))
}

func seedFile(path string, initial []byte) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, initial, 0644); err != nil {
		return fmt.Errorf("failed to seed %s: %w", path, err)
	}
	return nil
}

func (s *Store) historyPath() string   { return filepath.Join(s.dir, "history.json") }
func (s *Store) favoritesPath() string { return filepath.Join(s.dir, "favorites.json") }

// LoadHistory reads the full history document, oldest first.
// A missing or corrupt document is an error, never fabricated data.
func (s *Store) LoadHistory() ([]HistoryEntry, error) {
	data, err := os.ReadFile(s.historyPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	var entries []HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}
	return entries, nil
}

// SaveHistory writes entries, keeping only the most recent historyLimit
// (oldest dropped first, by position).
func (s *Store) SaveHistory(entries []HistoryEntry) error {
	if len(entries) > historyLimit {
		entries = entries[len(entries)-historyLimit:]
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := os.WriteFile(s.historyPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}

// AddToHistory appends one entry with the current timestamp, truncating
// testString to testStringLimit characters for storage.
func (s *Store) AddToHistory(pattern, testString string, flags engine.Flags) error {
	entries, err := s.LoadHistory()
	if err != nil {
		return err
	}
	entries = append(entries, HistoryEntry{
		ID:         uuid.NewString(),
		Pattern:    pattern,
		TestString: truncate(testString, testStringLimit),
		Flags:      flags,
		Timestamp:  time.Now(),
	})
	return s.SaveHistory(entries)
}

// LoadFavorites reads the favorites document keyed by name.
func (s *Store) LoadFavorites() (map[string]FavoriteEntry, error) {
	data, err := os.ReadFile(s.favoritesPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}
	var favorites map[string]FavoriteEntry
	if err := json.Unmarshal(data, &favorites); err != nil {
		return nil, fmt.Errorf("failed to parse favorites: %w", err)
	}
	if favorites == nil {
		favorites = make(map[string]FavoriteEntry)
	}
	return favorites, nil
}

// SaveFavorites replaces the favorites document with the given map.
func (s *Store) SaveFavorites(favorites map[string]FavoriteEntry) error {
	data, err := json.MarshalIndent(favorites, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := os.WriteFile(s.favoritesPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	return nil
}

// AddFavorite stores a favorite under name, overwriting any prior entry
// with that name.
func (s *Store) AddFavorite(name, pattern, description string) error {
	favorites, err := s.LoadFavorites()
	if err != nil {
		return err
	}
	favorites[name] = FavoriteEntry{
		ID:          uuid.NewString(),
		Pattern:     pattern,
		Description: description,
		Created:     time.Now(),
	}
	return s.SaveFavorites(favorites)
}

// RemoveFavorite deletes the favorite under name. The bool reports whether
// an entry existed.
func (s *Store) RemoveFavorite(name string) (bool, error) {
	favorites, err := s.LoadFavorites()
	if err != nil {
		return false, err
	}
	if _, ok := favorites[name]; !ok {
		return false, nil
	}
	delete(favorites, name)
	if err := s.SaveFavorites(favorites); err != nil {
		return false, err
	}
	return true, nil
}

// truncate bounds s to max characters with no ellipsis marker.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
