package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/shoresign/shoresign/internal/display"
	"github.com/shoresign/shoresign/internal/logger"
)

// FileStore persists the cache document as a single JSON file. Reads never
// fail the caller: a missing, malformed, or invalid file degrades to the
// all-absent document (cold start). Writes replace the whole file
// atomically so it always holds a consistent snapshot.
type FileStore struct {
	path     string
	validate *validator.Validate
}

// NewFileStore creates a store for the given file path.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("cache file path is required")
	}
	return &FileStore{
		path:     path,
		validate: validator.New(),
	}, nil
}

// Load reads the document from disk. Any read or parse problem is swallowed
// and logged; individual entries that fail validation are dropped to absent
// rather than poisoning the run.
func (s *FileStore) Load() display.Document {
	log := logger.WithComponent("store")

	var doc display.Document
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Warn("cache file unreadable; starting cold")
		}
		return doc
	}

	if err := json.Unmarshal(raw, &doc); err != nil {
		log.WithError(err).Warn("cache file malformed; starting cold")
		return display.Document{}
	}

	if doc.Weather != nil {
		if err := s.validate.Struct(doc.Weather); err != nil {
			log.WithError(err).Warn("dropping invalid weather entry")
			doc.Weather = nil
		}
	}
	if doc.Astronomy != nil {
		if err := s.validate.Struct(doc.Astronomy); err != nil {
			log.WithError(err).Warn("dropping invalid astronomy entry")
			doc.Astronomy = nil
		}
	}
	if doc.Tides != nil {
		if err := s.validate.Struct(doc.Tides); err != nil {
			log.WithError(err).Warn("dropping invalid tide entry")
			doc.Tides = nil
		}
	}

	return doc
}

// Save writes the full document, creating the containing directory first.
// The temp-file-plus-rename sequence guarantees readers never observe a
// partial write. Failure here is the one fatal runtime error of the system.
func (s *FileStore) Save(doc display.Document) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(payload); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}
