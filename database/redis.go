package database

import (
	"kost_market/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis initializes the shared client used for chat fanout, unread
// counters and the price-bounds cache.
func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379"),
	})
}
