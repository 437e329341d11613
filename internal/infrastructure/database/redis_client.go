package database

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates the Redis client holding session state and the
// menu-browsing cart.
//
// Supported env vars:
//   - REDIS_ADDR (default: localhost:6379)
//   - REDIS_PASSWORD (optional)
//   - REDIS_DB (default: 0)
func ConnectRedis() *redis.Client {
	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid REDIS_DB %q: %v", v, err)
		}
		db = parsed
	}

	client := redis.NewClient(&redis.Options{
		Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to ping redis: %v", err)
	}
	return client
}

// SessionTTLFromEnv reads the session slot lifetime (SESSION_TTL_MINUTES,
// default 30), the stand-in for browser session expiry.
func SessionTTLFromEnv() time.Duration {
	minutes := 30
	if v := os.Getenv("SESSION_TTL_MINUTES"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			log.Fatalf("invalid SESSION_TTL_MINUTES %q", v)
		}
		minutes = parsed
	}
	return time.Duration(minutes) * time.Minute
}
