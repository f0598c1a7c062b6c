package customers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-redis/redis/v8"
)

const DefaultRedisKey = "salon:customer_codes"

// RedisDirectory keeps the registry in one Redis hash (code -> JSON row) so
// every API replica shares the same set.
type RedisDirectory struct {
	client *redis.Client
	key    string
}

func NewRedisDirectory(client *redis.Client, key string) *RedisDirectory {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisDirectory{client: client, key: key}
}

// NewRedisClient parses a redis:// URL and checks the server answers.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}
	return client, nil
}

// Load swaps the whole hash atomically through a staging key.
func (d *RedisDirectory) Load(ctx context.Context, customers []Customer) error {
	staging := d.key + ":loading"

	values := make(map[string]any, len(customers))
	for _, c := range customers {
		b, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("encode customer %s: %w", c.Codigo, err)
		}
		values[c.Codigo] = string(b)
	}

	if len(values) == 0 {
		return d.client.Del(ctx, d.key).Err()
	}

	_, err := d.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, staging)
		p.HSet(ctx, staging, values)
		p.Rename(ctx, staging, d.key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("load customer codes: %w", err)
	}
	return nil
}

func (d *RedisDirectory) Contains(ctx context.Context, code string) (bool, error) {
	return d.client.HExists(ctx, d.key, strings.TrimSpace(code)).Result()
}

func (d *RedisDirectory) Lookup(ctx context.Context, code string) (*Customer, error) {
	raw, err := d.client.HGet(ctx, d.key, strings.TrimSpace(code)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var c Customer
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, fmt.Errorf("decode customer %s: %w", code, err)
	}
	return &c, nil
}

func (d *RedisDirectory) Len(ctx context.Context) (int64, error) {
	return d.client.HLen(ctx, d.key).Result()
}

var _ Directory = (*RedisDirectory)(nil)
