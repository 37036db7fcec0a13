package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis connects to Redis for the rate limiter. Returns nil on failure;
// callers treat a nil client as "rate limiting disabled".
func ConnectRedis(redisURI string) *redis.Client {
	opt, err := redis.ParseURL(redisURI)
	if err != nil {
		log.Printf("⚠️  Invalid REDIS_URI: %v. Rate limiting disabled", err)
		return nil
	}

	opt.PoolSize = 10
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  Redis ping failed: %v. Rate limiting disabled", err)
		client.Close()
		return nil
	}

	log.Println("✅ Connected to Redis")
	return client
}
