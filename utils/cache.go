package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"weatherchat/config"
)

// CacheClient is the shared Redis client backing the forecast cache and
// the session store. It stays nil when Redis is not configured or not
// reachable; callers fall back to the in-memory implementations.
var CacheClient *redis.Client

// InitRedis connects the shared Redis client.
func InitRedis() {
	logger := GetLogger()
	if config.AppConfig.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set, using in-memory cache and sessions")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.Warn("Failed to connect to Redis, using in-memory cache and sessions", zap.Error(err))
		return
	}
	CacheClient = client
	logger.Info("Connected to Redis", zap.String("addr", config.AppConfig.RedisAddr))
}

// GetCacheClient returns the shared Redis client, or nil when disabled.
func GetCacheClient() *redis.Client {
	return CacheClient
}
