package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ross7390/meeting-maestro/internal/domain/entities"
	"github.com/ross7390/meeting-maestro/pkg/config"
)

// RedisStore is a Redis-backed session store for deployments where sessions
// must survive a process restart.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Sessions.Redis.Password,
		DB:       cfg.Sessions.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client, ttl: cfg.Sessions.TTL}, nil
}

// Save serializes the record and stores it under the session key.
func (rs *RedisStore) Save(ctx context.Context, sessionID string, record *entities.MeetingRecord) error {
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return rs.client.Set(ctx, sessionKey(sessionID), b, rs.ttl).Err()
}

// Load retrieves and deserializes a record (false if the key is absent).
func (rs *RedisStore) Load(ctx context.Context, sessionID string) (*entities.MeetingRecord, bool, error) {
	b, err := rs.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var record entities.MeetingRecord
	if err := json.Unmarshal(b, &record); err != nil {
		return nil, false, err
	}
	return &record, true, nil
}

// Delete removes a session entry.
func (rs *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return rs.client.Del(ctx, sessionKey(sessionID)).Err()
}

// Close releases the underlying client.
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
