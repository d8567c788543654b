// Package redis wraps the go-redis client so repositories depend on a small
// interface that tests can back with miniredis.
package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNoAddress = errors.New("redis: address is required")

// NewClient connects to a single Redis instance. addr is either host:port or
// a redis:// or rediss:// URL carrying credentials and a database number.
func NewClient(addr string) (Client, error) {
	if addr == "" {
		return nil, ErrNoAddress
	}

	opts := &redis.Options{Addr: addr}
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, err
		}
		opts = parsed
	}
	opts.ClientName = "melee"

	return redis.NewClient(opts), nil
}

// Ping verifies the server answers within timeout
func Ping(ctx context.Context, client Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return client.Ping(ctx).Err()
}
