package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"skycast.app/config"
	"skycast.app/errors"
)

const redisKeyPrefix = "weather:city:"

// RedisStore persists cache records in Redis. Keys carry no Redis TTL: stale
// records must remain readable for the fallback path, so freshness is judged
// from the embedded UpdatedAt instead.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(cfg *config.CacheConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.NewCacheStoreError("connect to redis", err)
	}

	slog.Info("redis cache store connected", "addr", cfg.RedisAddr)
	return &RedisStore{client: client}, nil
}

// NewRedisStoreWithClient wraps an existing client, used by tests.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context, cityID string) (*Record, error) {
	val, err := s.client.Get(ctx, redisKeyPrefix+cityID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		slog.Error("redis get error", "city_id", cityID, "error", err)
		return nil, errors.NewCacheStoreError("read cache record", err)
	}

	var record Record
	if err := json.Unmarshal([]byte(val), &record); err != nil {
		slog.Error("redis unmarshal error", "city_id", cityID, "error", err)
		return nil, errors.NewCacheStoreError("decode cache record", err)
	}
	return &record, nil
}

func (s *RedisStore) Save(ctx context.Context, record *Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return errors.NewCacheStoreError("encode cache record", err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+record.CityID, data, 0).Err(); err != nil {
		slog.Error("redis set error", "city_id", record.CityID, "error", err)
		return errors.NewCacheStoreError("write cache record", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
