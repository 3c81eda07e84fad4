// File: utils/auth_session.go
package utils

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const sessionPrefix = "session:"

// CacheSessionTokenHash stores the user's current token hash in Redis so the
// auth middleware can validate without a Mongo read. Cache failures are
// logged and ignored; Mongo remains the source of truth.
func CacheSessionTokenHash(userID, tokenHash string, ttl time.Duration) {
	client := GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Set(ctx, sessionPrefix+userID, tokenHash, ttl).Err(); err != nil {
		GetLogger().Warn("failed to cache session token hash", zap.Error(err))
	}
}

// GetSessionTokenHash returns the cached token hash for a user, or empty on
// miss or error.
func GetSessionTokenHash(userID string) string {
	client := GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	hash, err := client.Get(ctx, sessionPrefix+userID).Result()
	if err != nil {
		return ""
	}
	return hash
}

// DropSessionTokenHash removes a user's cached session on logout.
func DropSessionTokenHash(userID string) {
	client := GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Del(ctx, sessionPrefix+userID).Err(); err != nil {
		GetLogger().Warn("failed to drop session token hash", zap.Error(err))
	}
}
