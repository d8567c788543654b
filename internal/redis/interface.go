package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the command surface the round log store needs
type Client interface {
	redis.UniversalClient
}
