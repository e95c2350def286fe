package redis

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient defines the Redis operations the service relies on.
type RedisClient interface {
	// IncrWithExpiry increments key, starts its expiry window on first use and
	// reports the new count with the time left in the window.
	IncrWithExpiry(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
	Close() error
}

// Client is the implementation of RedisClient.
type Client struct {
	client *redis.Client
}

func NewClient(ctx context.Context, addr string) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect to Redis", "addr", addr, "error", err)
		client.Close()
		return nil, err
	}

	slog.Info("connected to Redis", "addr", addr)
	return &Client{client: client}, nil
}

func (c *Client) IncrWithExpiry(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	count, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}
	if count == 1 {
		if err := c.client.Expire(ctx, key, window).Err(); err != nil {
			return count, 0, err
		}
		return count, window, nil
	}

	ttl, err := c.client.TTL(ctx, key).Result()
	if err != nil {
		return count, 0, err
	}
	if ttl < 0 {
		// Key lost its expiry (e.g. the EXPIRE after a first INCR failed); restart the window.
		if err := c.client.Expire(ctx, key, window).Err(); err != nil {
			return count, 0, err
		}
		ttl = window
	}
	return count, ttl, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
