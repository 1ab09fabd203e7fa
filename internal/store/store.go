package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Store persists the entity catalogs as JSON documents on the local
// filesystem, one file per collection. It is the Go counterpart of a simple
// document store: good enough for a single-instance editor backend, not a
// durability layer.
type Store struct {
	dir string
	mu  sync.Mutex

	// snippets caches derived location prompt snippets; entries are keyed by
	// location id + updatedAt so edits invalidate naturally.
	snippets *cache.Cache
}

// Open initializes a Store rooted at dir, creating it if needed.
func Open(dir string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("store: data dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure data dir: %w", err)
	}
	return &Store{
		dir:      dir,
		snippets: cache.New(time.Hour, 10*time.Minute),
	}, nil
}

// Dir returns the configured data directory.
func (s *Store) Dir() string {
	if s == nil {
		return ""
	}
	return s.dir
}

// readCollection loads a collection file into v. A missing file is not an
// error: the collection is simply empty.
func (s *Store) readCollection(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("store: read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("store: decode %s: %w", name, err)
	}
	return nil
}

// writeCollection persists a collection through a temp file and rename so a
// crash mid-write never truncates the catalog.
func (s *Store) writeCollection(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", name, err)
	}
	target := filepath.Join(s.dir, name+".json")
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("store: replace %s: %w", name, err)
	}
	return nil
}
