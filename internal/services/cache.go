package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bujo-app/bujo-backend/internal/database"
)

const (
	// CacheKeyPrefix is the Redis key prefix for cached data
	CacheKeyPrefix = "cache:"
	// CollectionsCacheKey caches the collection list with entry counts
	CollectionsCacheKey = "collections"
	// CollectionsCacheTTL bounds staleness between write invalidations
	CollectionsCacheTTL = 5 * time.Minute
)

// cacheGet loads a cached value into dest. Returns false on a miss or when
// no Redis is configured; a cache failure is never an error.
func cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if database.RedisClient == nil {
		return false
	}

	val, err := database.RedisClient.Get(ctx, CacheKeyPrefix+key).Result()
	if err != nil {
		return false
	}

	return json.Unmarshal([]byte(val), dest) == nil
}

// cacheSet stores a value with the collections TTL. Best effort.
func cacheSet(ctx context.Context, key string, value interface{}) {
	if database.RedisClient == nil {
		return
	}

	jsonData, err := json.Marshal(value)
	if err != nil {
		return
	}

	database.RedisClient.Set(ctx, CacheKeyPrefix+key, jsonData, CollectionsCacheTTL)
}

// cacheInvalidate drops a cached value. Every collection or entry write calls
// this for the collections list, since entry writes move entry counts.
func cacheInvalidate(ctx context.Context, key string) {
	if database.RedisClient == nil {
		return
	}

	database.RedisClient.Del(ctx, CacheKeyPrefix+key)
}
