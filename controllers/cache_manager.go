package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	listCachePrefix = "catalog:list:v:"
	cacheVersionKey = "catalog:version"
	DefaultCacheTTL = 5 * time.Minute
)

// CacheManager caches rendered product listings in Redis behind a version
// counter. Bumping the version invalidates every cached listing at once
// without scanning keys. Cache misses and Redis outages are silent; the
// listing is simply recomputed.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(client *redis.Client) *CacheManager {
	return &CacheManager{redis: client, ttl: DefaultCacheTTL}
}

// EnsureVersion seeds the version counter so caching is active from startup.
func (cm *CacheManager) EnsureVersion(ctx context.Context) {
	if err := cm.redis.SetNX(ctx, cacheVersionKey, 1, 0).Err(); err != nil {
		zap.L().Warn("Failed to seed cache version; listing cache disabled", zap.Error(err))
	}
}

// GetList returns the cached response for a canonical query key, if any.
func (cm *CacheManager) GetList(ctx context.Context, queryKey string) (*ListResponse, bool) {
	version, err := cm.version(ctx)
	if err != nil || version == 0 {
		return nil, false
	}
	data, err := cm.redis.Get(ctx, cm.listKey(version, queryKey)).Result()
	if err != nil {
		return nil, false
	}
	var resp ListResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		zap.L().Warn("Failed to unmarshal cached listing", zap.Error(err))
		return nil, false
	}
	return &resp, true
}

// SetListAsync caches a response off the request path.
func (cm *CacheManager) SetListAsync(queryKey string, resp *ListResponse) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.version(ctx)
		if err != nil || version == 0 {
			return
		}
		data, err := json.Marshal(resp)
		if err != nil {
			zap.L().Warn("Failed to marshal listing for cache", zap.Error(err))
			return
		}
		if err := cm.redis.Set(ctx, cm.listKey(version, queryKey), data, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache listing", zap.Error(err))
		}
	}()
}

// Invalidate bumps the version counter, orphaning all cached listings.
func (cm *CacheManager) Invalidate(ctx context.Context) error {
	return cm.redis.Incr(ctx, cacheVersionKey).Err()
}

func (cm *CacheManager) version(ctx context.Context) (int64, error) {
	raw, err := cm.redis.Get(ctx, cacheVersionKey).Result()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

func (cm *CacheManager) listKey(version int64, queryKey string) string {
	return fmt.Sprintf("%s%d:%s", listCachePrefix, version, queryKey)
}
