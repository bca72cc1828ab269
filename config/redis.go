package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// ConnectRedis dials the Redis instance named by REDISHOST/REDISPORT and
// keeps a process-wide client. Redis backs the login rate limiter and the
// session mirror; both fail open, so a missing or unreachable Redis disables
// those features without blocking registrations.
func ConnectRedis() (*redis.Client, error) {
	var err error
	redisOnce.Do(func() {
		cfg := LoadConfig()
		if cfg != nil && cfg.AppEnv == "test" {
			// Tests run without Redis; the limiter and mirror stay off.
			return
		}

		host := os.Getenv("REDISHOST")
		if host == "" {
			host = "localhost"
		}
		port := os.Getenv("REDISPORT")
		if port == "" {
			port = "6379"
		}
		dbNum := 0
		if v, convErr := strconv.Atoi(os.Getenv("REDISDB")); convErr == nil {
			dbNum = v
		}

		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", host, port),
			Password: os.Getenv("REDISPASS"),
			DB:       dbNum,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err = rdb.Ping(ctx).Err(); err != nil {
			redisClient = nil
			err = fmt.Errorf("redis ping failed: %w", err)
			return
		}

		redisClient = rdb
		log.Printf("redis connected at %s:%s", host, port)
	})
	return redisClient, err
}

// GetRedisClient returns the shared client, or nil when Redis never came up.
// Callers treat nil as "feature disabled", not an error.
func GetRedisClient() *redis.Client {
	return redisClient
}

// SetRedisClientForTesting swaps the shared client so tests can inject a
// mock or a miniredis instance.
func SetRedisClientForTesting(client *redis.Client) {
	redisClient = client
}
