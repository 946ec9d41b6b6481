// internal/save/redis.go
package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
)

// Key pattern: wave_progress:{map_id}:{slot}
const progressKeyPrefix = "wave_progress:"

// ErrNotFound возвращается, когда в слоте нет сохранения.
var ErrNotFound = errors.New("wave progress not found")

// Config holds the configuration for the Redis store.
type Config struct {
	Client redis.Cmdable
}

// Validate ensures all required dependencies are provided.
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.New("redis client is required")
	}
	return nil
}

// RedisStore сохраняет снапшоты прогресса волн в Redis по слотам.
type RedisStore struct {
	client redis.Cmdable
}

// NewRedisStore creates a new Redis store for wave progress snapshots.
func NewRedisStore(cfg *Config) (*RedisStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &RedisStore{client: cfg.Client}, nil
}

// NewSlotID выдаёт свежий идентификатор слота сохранения.
func NewSlotID() string {
	return uuid.NewString()
}

// Save записывает снапшот в слот. Существующее сохранение затирается.
func (s *RedisStore) Save(ctx context.Context, mapID, slot string, progress WaveProgress) error {
	if mapID == "" {
		return errors.New("map ID cannot be empty")
	}
	if slot == "" {
		return errors.New("slot cannot be empty")
	}

	payload, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("failed to marshal wave progress: %w", err)
	}

	if err := s.client.Set(ctx, s.buildKey(mapID, slot), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to store wave progress in Redis: %w", err)
	}
	return nil
}

// Load читает снапшот из слота и валидирует его против таблицы
// из waveCount волн.
func (s *RedisStore) Load(ctx context.Context, mapID, slot string, waveCount int) (WaveProgress, error) {
	if mapID == "" {
		return WaveProgress{}, errors.New("map ID cannot be empty")
	}
	if slot == "" {
		return WaveProgress{}, errors.New("slot cannot be empty")
	}

	payload, err := s.client.Get(ctx, s.buildKey(mapID, slot)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return WaveProgress{}, ErrNotFound
		}
		return WaveProgress{}, fmt.Errorf("failed to get wave progress from Redis: %w", err)
	}

	var progress WaveProgress
	if err := json.Unmarshal([]byte(payload), &progress); err != nil {
		return WaveProgress{}, fmt.Errorf("failed to unmarshal wave progress: %w", err)
	}

	if err := progress.Validate(waveCount); err != nil {
		return WaveProgress{}, err
	}
	return progress, nil
}

// Delete убирает сохранение из слота. Отсутствие сохранения не ошибка.
func (s *RedisStore) Delete(ctx context.Context, mapID, slot string) error {
	if mapID == "" {
		return errors.New("map ID cannot be empty")
	}
	if slot == "" {
		return errors.New("slot cannot be empty")
	}

	if err := s.client.Del(ctx, s.buildKey(mapID, slot)).Err(); err != nil {
		return fmt.Errorf("failed to delete wave progress from Redis: %w", err)
	}
	return nil
}

func (s *RedisStore) buildKey(mapID, slot string) string {
	return fmt.Sprintf("%s%s:%s", progressKeyPrefix, mapID, slot)
}
