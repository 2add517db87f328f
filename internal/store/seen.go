// Package store persists which postings were already surfaced, so repeat
// scrapes within the incremental window only report new material. State is
// one JSON file guarded by a cross-process file lock.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// SeenStore maps dedupe anchors (canonical URL or job id) to the RFC 3339
// time they were first surfaced.
type SeenStore struct {
	path   string
	window time.Duration
}

func NewSeenStore(dataDir string, window time.Duration) *SeenStore {
	return &SeenStore{
		path:   filepath.Join(dataDir, "seen_jobs.json"),
		window: window,
	}
}

// Touch records the given anchors as seen now and reports which of them were
// already known within the window. Entries that aged out of the window are
// pruned on the way through.
func (s *SeenStore) Touch(anchors []string, now time.Time) (map[string]bool, error) {
	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("lock seen store: %w", err)
	}
	defer lock.Unlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}

	cutoff := now.Add(-s.window)
	for anchor, stamp := range entries {
		t, parseErr := time.Parse(time.RFC3339, stamp)
		if parseErr != nil || t.Before(cutoff) {
			delete(entries, anchor)
		}
	}

	seenBefore := make(map[string]bool, len(anchors))
	for _, anchor := range anchors {
		if anchor == "" {
			continue
		}
		if _, ok := entries[anchor]; ok {
			seenBefore[anchor] = true
			continue
		}
		seenBefore[anchor] = false
		entries[anchor] = now.UTC().Format(time.RFC3339)
	}

	if err := s.save(entries); err != nil {
		return nil, err
	}
	return seenBefore, nil
}

// Count returns the number of live entries, for diagnostics.
func (s *SeenStore) Count() (int, error) {
	entries, err := s.load()
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

func (s *SeenStore) load() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read seen store: %w", err)
	}
	entries := map[string]string{}
	if err := json.Unmarshal(b, &entries); err != nil {
		// A corrupt state file is not worth failing a scrape over.
		return map[string]string{}, nil
	}
	return entries, nil
}

func (s *SeenStore) save(entries map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("seen store dir: %w", err)
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode seen store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write seen store: %w", err)
	}
	return os.Rename(tmp, s.path)
}
