package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"fleet-roi/internal/simulation"
)

const redisKeyPrefix = "fleet-roi:result:"

// RedisStore is a ResultStore backed by Redis, for running more than one
// API instance behind a load balancer. Results are stored JSON-encoded
// with the same TTL semantics as MemoryStore.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisStore{
		client: rdb,
		ctx:    context.Background(),
		ttl:    ttl,
	}
}

// Ping reports whether the Redis backend is reachable.
func (s *RedisStore) Ping() error {
	return s.client.Ping(s.ctx).Err()
}

func (s *RedisStore) Get(id string) (*simulation.Result, bool) {
	raw, err := s.client.Get(s.ctx, redisKeyPrefix+id).Result()
	if err != nil {
		return nil, false
	}
	var result simulation.Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, false
	}
	return &result, true
}

func (s *RedisStore) Set(id string, result *simulation.Result) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.client.Set(s.ctx, redisKeyPrefix+id, raw, s.ttl).Err()
}
