package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/rueidis"

	model "task-board.community/task-board/internal/models"
)

type RedisLeaderboardCache struct {
	client rueidis.Client
	key    string
	ttl    time.Duration
}

func NewRedisLeaderboardCache(client rueidis.Client, key string, ttl time.Duration) *RedisLeaderboardCache {
	return &RedisLeaderboardCache{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (c *RedisLeaderboardCache) Get(ctx context.Context) ([]model.User, bool, error) {
	cmd := c.client.B().Get().Key(c.key).Build()
	result := c.client.Do(ctx, cmd)

	raw, err := result.AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var users []model.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, false, err
	}

	return users, true, nil
}

func (c *RedisLeaderboardCache) Set(ctx context.Context, users []model.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}

	cmd := c.client.B().Set().Key(c.key).Value(string(raw)).
		Ex(c.ttl).Build()
	return c.client.Do(ctx, cmd).Error()
}

func (c *RedisLeaderboardCache) Invalidate(ctx context.Context) error {
	cmd := c.client.B().Del().Key(c.key).Build()
	return c.client.Do(ctx, cmd).Error()
}
