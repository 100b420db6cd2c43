package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionPrefix = "session:"

// RedisSessions stores live sessions in Redis with the session TTL.
type RedisSessions struct {
	client *redis.Client
}

func NewRedisSessions(client *redis.Client) *RedisSessions {
	return &RedisSessions{client: client}
}

func (r *RedisSessions) Put(ctx context.Context, sessionID, operatorID string, ttl time.Duration) error {
	return r.client.Set(ctx, sessionPrefix+sessionID, operatorID, ttl).Err()
}

func (r *RedisSessions) Exists(ctx context.Context, sessionID string) (bool, error) {
	n, err := r.client.Exists(ctx, sessionPrefix+sessionID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RedisSessions) Drop(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionPrefix+sessionID).Err()
}
