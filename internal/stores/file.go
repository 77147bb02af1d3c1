package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/models"
)

// FileStore persists the stats mapping as a single JSON document on disk,
// the local-storage equivalent for a CLI install.
type FileStore struct {
	path   string
	logger *slog.Logger
}

func NewFileStore(path string, logger *slog.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

func (s *FileStore) Record(ctx context.Context, categoryID string, percentage int, passed bool) error {
	records := s.load()

	rec := records[categoryID]
	rec.Apply(percentage, passed)
	records[categoryID] = rec

	return s.save(records)
}

func (s *FileStore) All(ctx context.Context) (map[string]models.StatsRecord, error) {
	return s.load(), nil
}

// load reads the stats document. A missing file is a normal first run;
// a corrupt one is logged and read as empty.
func (s *FileStore) load() map[string]models.StatsRecord {
	records := make(map[string]models.StatsRecord)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("Stats file unreadable, starting empty", "path", s.path, "error", err)
		}
		return records
	}

	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("Stats file corrupt, starting empty", "path", s.path, "error", err)
		return make(map[string]models.StatsRecord)
	}
	return records
}

func (s *FileStore) save(records map[string]models.StatsRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create stats directory: %w", err)
	}

	// Write-then-rename so a crash mid-write never corrupts the document.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write stats file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace stats file: %w", err)
	}
	return nil
}
