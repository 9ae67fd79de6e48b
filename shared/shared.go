package shared

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"bookme/shared/cache"
	"bookme/shared/constant"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins key parts with the cache separator.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}

// InvalidateCaches clears every cache entry whose key starts with prefix,
// the prefix key itself included.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
