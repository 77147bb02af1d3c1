package stores

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/models"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// SQLiteStore keeps the stats mapping as a JSON value in a single-row
// key-value table, keyed by the fixed namespace.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenSQLiteStore opens (creating if needed) the stats database at dsn.
func OpenSQLiteStore(dsn string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open stats database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create stats schema: %w", err)
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Record(ctx context.Context, categoryID string, percentage int, passed bool) error {
	records := s.load(ctx)

	rec := records[categoryID]
	rec.Apply(percentage, passed)
	records[categoryID] = rec

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		Namespace, string(data))
	if err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	return nil
}

func (s *SQLiteStore) All(ctx context.Context) (map[string]models.StatsRecord, error) {
	return s.load(ctx), nil
}

func (s *SQLiteStore) load(ctx context.Context) map[string]models.StatsRecord {
	records := make(map[string]models.StatsRecord)

	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, Namespace).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("Stats row unreadable, starting empty", "error", err)
		}
		return records
	}

	if err := json.Unmarshal([]byte(value), &records); err != nil {
		s.logger.Warn("Stats row corrupt, starting empty", "error", err)
		return make(map[string]models.StatsRecord)
	}
	return records
}

// applyPragmas configures SQLite for single-user durability.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
