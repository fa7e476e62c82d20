package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DonkRonk17/RegexLab/engine"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return s
}

func TestInitSeedsDocuments(t *testing.T) {
	s := newTestStore(t)

	history, err := s.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory failed: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("expected empty history, got %d entries", len(history))
	}

	favorites, err := s.LoadFavorites()
	if err != nil {
		t.Fatalf("LoadFavorites failed: %v", err)
	}
	if len(favorites) != 0 {
		t.Errorf("expected empty favorites, got %d entries", len(favorites))
	}
}

func TestInitIdempotent(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddToHistory(`\d+`, "abc 123", 0); err != nil {
		t.Fatalf("AddToHistory failed: %v", err)
	}
	if err := s.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}

	history, err := s.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory failed: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("expected Init to preserve existing history, got %d entries", len(history))
	}
}

func TestAddToHistory(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddToHistory(`\d+`, "abc 123", engine.FlagIgnoreCase); err != nil {
		t.Fatalf("AddToHistory failed: %v", err)
	}

	history, err := s.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(history))
	}
	entry := history[0]
	if entry.Pattern != `\d+` {
		t.Errorf("expected pattern '\\d+', got %q", entry.Pattern)
	}
	if entry.TestString != "abc 123" {
		t.Errorf("expected test string 'abc 123', got %q", entry.TestString)
	}
	if entry.Flags != engine.FlagIgnoreCase {
		t.Errorf("expected flags %d, got %d", engine.FlagIgnoreCase, entry.Flags)
	}
	if entry.ID == "" {
		t.Error("expected entry to carry an id")
	}
	if entry.Timestamp.IsZero() {
		t.Error("expected entry to carry a timestamp")
	}
}

func TestHistoryCapDropsOldest(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 60; i++ {
		if err := s.AddToHistory(fmt.Sprintf("p%d", i), "text", 0); err != nil {
			t.Fatalf("AddToHistory %d failed: %v", i, err)
		}
	}

	history, err := s.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory failed: %v", err)
	}
	if len(history) != 50 {
		t.Fatalf("expected 50 persisted entries, got %d", len(history))
	}
	if history[0].Pattern != "p10" {
		t.Errorf("expected oldest surviving entry p10, got %q", history[0].Pattern)
	}
	if history[49].Pattern != "p59" {
		t.Errorf("expected newest entry p59, got %q", history[49].Pattern)
	}
}

func TestHistoryTestStringTruncation(t *testing.T) {
	s := newTestStore(t)

	long := strings.Repeat("x", 150)
	if err := s.AddToHistory("p", long, 0); err != nil {
		t.Fatalf("AddToHistory failed: %v", err)
	}

	history, err := s.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory failed: %v", err)
	}
	stored := history[0].TestString
	if len([]rune(stored)) != 100 {
		t.Errorf("expected 100 stored characters, got %d", len([]rune(stored)))
	}
	if strings.HasSuffix(stored, "...") {
		t.Error("stored value must not carry an ellipsis marker")
	}
}

func TestFavoriteOverwrite(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddFavorite("digits", `\d+`, "first"); err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}
	if err := s.AddFavorite("digits", `\d{3}`, "second"); err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}

	favorites, err := s.LoadFavorites()
	if err != nil {
		t.Fatalf("LoadFavorites failed: %v", err)
	}
	if len(favorites) != 1 {
		t.Fatalf("expected 1 favorite, got %d", len(favorites))
	}
	entry := favorites["digits"]
	if entry.Pattern != `\d{3}` {
		t.Errorf("expected overwrite to win with '\\d{3}', got %q", entry.Pattern)
	}
	if entry.Description != "second" {
		t.Errorf("expected description 'second', got %q", entry.Description)
	}
}

func TestRemoveFavorite(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddFavorite("digits", `\d+`, ""); err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}

	removed, err := s.RemoveFavorite("digits")
	if err != nil {
		t.Fatalf("RemoveFavorite failed: %v", err)
	}
	if !removed {
		t.Error("expected removal of existing favorite")
	}

	removed, err = s.RemoveFavorite("digits")
	if err != nil {
		t.Fatalf("RemoveFavorite failed: %v", err)
	}
	if removed {
		t.Error("expected no removal for absent favorite")
	}
}

func TestLoadHistoryCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "history.json"), []byte("not json"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := s.LoadHistory(); err == nil {
		t.Error("expected error for corrupt history document")
	}
}

func TestLoadWithoutInit(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing"))

	if _, err := s.LoadHistory(); err == nil {
		t.Error("expected error reading missing history document")
	}
	if _, err := s.LoadFavorites(); err == nil {
		t.Error("expected error reading missing favorites document")
	}
}
