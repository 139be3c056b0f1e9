package infra_redis_poolcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/kinomatch/core/internal/model"
)

// Driver keeps the deduplicated pool snapshot in Redis so every instance
// permutes the same snapshot for a given seed.
type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) Get(ctx context.Context) ([]model.PoolItem, bool, error) {
	val, err := d.client.Get(d.key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}

	var items []model.PoolItem
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		// Treat a corrupt snapshot as a miss; next Set overwrites it.
		return nil, false, nil
	}

	return items, true, nil
}

func (d *Driver) Set(ctx context.Context, items []model.PoolItem, ttl time.Duration) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	return d.client.Set(d.key, raw, ttl).Err()
}
