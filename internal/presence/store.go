package presence

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carebridge/chat-gateway/internal/config"
	"github.com/carebridge/chat-gateway/internal/model"
)

const (
	presencePrefix = "presence:"
	presenceTTL    = 2 * time.Minute
)

// Store keeps peer call state (waiting / in_call / offline) in Redis with a
// short TTL; a missing key reads as offline.
type Store struct {
	rdb *redis.Client
}

func New(cfg *config.Config) *Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
	})
	return &Store{rdb: rdb}
}

func NewWithClient(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func (s *Store) Set(ctx context.Context, userID, status string) error {
	key := presencePrefix + userID

	if status == model.StatusOffline {
		if err := s.rdb.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to clear presence: %w", err)
		}
		return nil
	}

	if err := s.rdb.Set(ctx, key, status, presenceTTL).Err(); err != nil {
		return fmt.Errorf("failed to set presence: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, userID string) (string, error) {
	status, err := s.rdb.Get(ctx, presencePrefix+userID).Result()
	if err == redis.Nil {
		return model.StatusOffline, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get presence: %w", err)
	}
	return status, nil
}

func (s *Store) Close() error {
	return s.rdb.Close()
}
