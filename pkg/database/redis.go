package database

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient connects to Redis at the given address. Redis is optional;
// a failed connection returns nil and the caller continues without it.
func NewRedisClient(ctx context.Context, addr string) *redis.Client {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection failed, continuing without Redis: %v", err)
		return nil
	}

	log.Println("Redis connection established")
	return rdb
}
