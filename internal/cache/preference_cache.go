package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	model "vehicle-marketplace/internal/models"
	"vehicle-marketplace/utils"
)

// preferenceTTL bounds how stale a cached profile may get before the next
// derivation recomputes it.
const preferenceTTL = 5 * time.Minute

// RedisPreferenceCache stores derived preference profiles in redis, keyed
// by user. Cache failures are logged and treated as misses; the engine must
// keep working without redis.
type RedisPreferenceCache struct {
	client *redis.Client
}

// NewRedisPreferenceCache creates a cache over the given redis client
func NewRedisPreferenceCache(client *redis.Client) *RedisPreferenceCache {
	return &RedisPreferenceCache{client: client}
}

func preferenceKey(userID string) string {
	return "prefs:" + userID
}

// Get returns the cached profile for the user, if present
func (c *RedisPreferenceCache) Get(ctx context.Context, userID string) (model.Preferences, bool) {
	payload, err := c.client.Get(ctx, preferenceKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			utils.Warn("preference cache read failed", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		return model.Preferences{}, false
	}

	var prefs model.Preferences
	if err := json.Unmarshal(payload, &prefs); err != nil {
		utils.Warn("preference cache entry corrupt, dropping", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.client.Del(ctx, preferenceKey(userID))
		return model.Preferences{}, false
	}
	return prefs, true
}

// Set stores the profile with the cache TTL
func (c *RedisPreferenceCache) Set(ctx context.Context, userID string, prefs model.Preferences) {
	payload, err := json.Marshal(prefs)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, preferenceKey(userID), payload, preferenceTTL).Err(); err != nil {
		utils.Warn("preference cache write failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}

// Invalidate drops the user's cached profile
func (c *RedisPreferenceCache) Invalidate(ctx context.Context, userID string) {
	if err := c.client.Del(ctx, preferenceKey(userID)).Err(); err != nil {
		utils.Warn("preference cache invalidation failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
