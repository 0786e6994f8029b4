package session

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares the token between processes through one Redis key.
type RedisStore struct {
	Client *redis.Client
	Key    string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client, Key: DefaultKey}
}

func (r *RedisStore) Load(ctx context.Context) (string, error) {
	token, err := r.Client.Get(ctx, r.Key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return token, err
}

// Save stores the token without a TTL.
func (r *RedisStore) Save(ctx context.Context, token string) error {
	return r.Client.Set(ctx, r.Key, token, 0).Err()
}
