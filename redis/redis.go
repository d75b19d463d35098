package redis

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
)

// NewClient connects to Redis and verifies the connection. The client backs
// the business directory cache; callers may run without it.
func NewClient() (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return client, nil
}
