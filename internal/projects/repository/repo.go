// Package repository persists the full project list as one JSON document.
// Every mutation is a whole-document read-modify-write: callers load a
// snapshot, compute a new one and save it back. Two concurrent writers race
// and the later Save wins; that is the documented durability model for this
// single-admin store, not an accident.
package repository

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/tidewater-lab/site-backend/internal/projects/domain"
)

type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Ensure initializes the document to an empty array on first run.
func (s *Store) Ensure() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return s.write([]domain.ProjectRecord{})
}

// Load reads the current snapshot. A missing or unreadable document yields
// an empty list: the site stays up with no content rather than erroring.
func (s *Store) Load() []domain.ProjectRecord {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return []domain.ProjectRecord{}
	}

	var records []domain.ProjectRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Printf("store: malformed document %s, treating as empty: %v", s.path, err)
		return []domain.ProjectRecord{}
	}

	for i := range records {
		normalize(&records[i])
	}
	return records
}

// Save persists the full snapshot, pretty-printed with 2-space indent.
// The write goes through a temp file and rename so a concurrent Load never
// observes a partial document.
func (s *Store) Save(records []domain.ProjectRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(records)
}

func (s *Store) write(records []domain.ProjectRecord) error {
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// normalize upgrades a record read from disk: legacy singular "image"
// becomes a one-element Images list, and nil slices become empty so the API
// always emits arrays.
func normalize(p *domain.ProjectRecord) {
	if len(p.Images) == 0 && p.LegacyImage != "" {
		p.Images = []string{p.LegacyImage}
	}
	p.LegacyImage = ""

	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Outcomes == nil {
		p.Outcomes = []string{}
	}
}
