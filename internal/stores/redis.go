package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/models"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the stats mapping as a JSON value under the fixed
// namespace key in Redis, for installs that already run one locally.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisStore(client *redis.Client, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func (s *RedisStore) Record(ctx context.Context, categoryID string, percentage int, passed bool) error {
	records := s.load(ctx)

	rec := records[categoryID]
	rec.Apply(percentage, passed)
	records[categoryID] = rec

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	if err := s.client.Set(ctx, Namespace, data, 0).Err(); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	return nil
}

func (s *RedisStore) All(ctx context.Context) (map[string]models.StatsRecord, error) {
	return s.load(ctx), nil
}

func (s *RedisStore) load(ctx context.Context) map[string]models.StatsRecord {
	records := make(map[string]models.StatsRecord)

	data, err := s.client.Get(ctx, Namespace).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("Stats key unreadable, starting empty", "key", Namespace, "error", err)
		}
		return records
	}

	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("Stats key corrupt, starting empty", "key", Namespace, "error", err)
		return make(map[string]models.StatsRecord)
	}
	return records
}
