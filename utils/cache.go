// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vetbuddy/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	// AuthCachePrefix namespaces validated token hashes.
	AuthCachePrefix = "auth:"
	// AuthCacheTTL is refreshed on every hit.
	AuthCacheTTL = 10 * time.Minute
)

var (
	authCacheClient *redis.Client
	authCacheOnce   sync.Once
	authCacheErr    error
)

// GetAuthCacheClient connects to the auth cache database once and returns the shared client.
func GetAuthCacheClient() (*redis.Client, error) {
	authCacheOnce.Do(func() {
		client := redis.NewClient(&redis.Options{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisAuthDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			authCacheErr = fmt.Errorf("failed to connect to Redis (auth cache): %w", err)
			return
		}
		authCacheClient = client
	})
	return authCacheClient, authCacheErr
}

// IsTokenCached reports whether tokenHash was validated recently, extending its TTL on a hit.
// Cache errors count as a miss.
func IsTokenCached(ctx context.Context, client *redis.Client, tokenHash string) bool {
	key := AuthCachePrefix + tokenHash
	cached, err := client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			GetLogger().Error("Error checking auth cache", zap.Error(err))
		}
		return false
	}
	if cached != "1" {
		return false
	}
	if err := client.Expire(ctx, key, AuthCacheTTL).Err(); err != nil {
		GetLogger().Error("Failed to refresh auth cache TTL", zap.Error(err))
	}
	return true
}

// CacheToken records tokenHash as validated.
func CacheToken(ctx context.Context, client *redis.Client, tokenHash string) {
	if err := client.Set(ctx, AuthCachePrefix+tokenHash, "1", AuthCacheTTL).Err(); err != nil {
		GetLogger().Error("Failed to set auth cache", zap.Error(err))
	}
}
