package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	keyPrefix = "review_stats:"
	slugsKey  = "review_stats_slugs"
)

// RedisOptions addresses the stats cache.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// RedisClient holds the Redis client connection
type RedisClient struct {
	client *redis.Client
	log    *zap.Logger
}

// NewRedisClient connects and pings within 5 seconds.
func NewRedisClient(ctx context.Context, opts RedisOptions, log *zap.Logger) (*RedisClient, error) {
	if opts.Addr == "" {
		return nil, errors.New("redis address not set")
	}
	if log == nil {
		log = zap.NewNop()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pong, err := client.Ping(ctx).Result()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Debug("connected to redis", zap.String("addr", opts.Addr), zap.String("ping", pong))
	return &RedisClient{client: client, log: log}, nil
}

// Close closes the Redis connection
func (c *RedisClient) Close() {
	if c.client != nil {
		c.client.Close()
		c.log.Debug("redis connection closed")
	}
}

// GetClient returns the underlying *redis.Client instance
func (c *RedisClient) GetClient() *redis.Client {
	return c.client
}

// Redis is a Source backed by JSON values at review_stats:<slug>.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) ReviewStats(ctx context.Context, slug string) (Stats, error) {
	raw, err := r.client.Get(ctx, keyPrefix+slug).Result()
	if err == redis.Nil {
		return Stats{}, ErrNotCached
	}
	if err != nil {
		return Stats{}, fmt.Errorf("get stats for %s: %w", slug, err)
	}
	var st Stats
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return Stats{}, fmt.Errorf("decode stats for %s: %w", slug, err)
	}
	return st, nil
}

// Publish replaces the cached stats and the slug index. Slugs from the
// previous index that are missing from all lose their stats key. The writes
// run in one MULTI/EXEC transaction. A zero ttl keeps the entries until they
// are overwritten.
func (r *Redis) Publish(ctx context.Context, all map[string]Stats, ttl time.Duration) error {
	previous, err := r.Slugs(ctx)
	if err != nil {
		return err
	}
	values := make(map[string][]byte, len(all))
	for slug, st := range all {
		b, err := json.Marshal(st)
		if err != nil {
			return fmt.Errorf("encode stats for %s: %w", slug, err)
		}
		values[slug] = b
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, slug := range previous {
			if _, ok := all[slug]; !ok {
				pipe.Del(ctx, keyPrefix+slug)
			}
		}
		pipe.Del(ctx, slugsKey)
		slugs := make([]interface{}, 0, len(values))
		for slug, b := range values {
			pipe.Set(ctx, keyPrefix+slug, b, ttl)
			slugs = append(slugs, slug)
		}
		if len(slugs) > 0 {
			pipe.SAdd(ctx, slugsKey, slugs...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("publish review stats: %w", err)
	}
	return nil
}

// Slugs lists the products with published stats.
func (r *Redis) Slugs(ctx context.Context) ([]string, error) {
	slugs, err := r.client.SMembers(ctx, slugsKey).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("list cached slugs: %w", err)
	}
	return slugs, nil
}
