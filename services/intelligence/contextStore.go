// File: services/intelligence/contextStore.go
package ai

import (
	"context"
	"encoding/json"
	"time"

	"clinicore/models"

	"github.com/go-redis/redis/v8"
)

const aiContextPrefix = "ai:ctx:"

type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, doctorID string) (*models.ChatContext, error) {
	key := aiContextPrefix + doctorID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.ChatContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var chatCtx models.ChatContext
	if err := json.Unmarshal([]byte(data), &chatCtx); err != nil {
		return nil, err
	}
	return &chatCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, doctorID string, chatCtx *models.ChatContext) error {
	key := aiContextPrefix + doctorID
	b, err := json.Marshal(chatCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, doctorID string) error {
	key := aiContextPrefix + doctorID
	return s.client.Del(ctx, key).Err()
}
