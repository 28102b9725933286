package urlrisk

import (
	"context"
	"time"

	"lifeguard/pkg/cache"
	"lifeguard/pkg/logger"
	"lifeguard/pkg/urlscanner"

	"go.uber.org/zap"
)

// CachedReputation serves domain verdicts from a cache keyed by host. Only
// successful lookups are cached; cache failures are logged and bypassed.
type CachedReputation struct {
	next  urlscanner.DomainReputation
	cache cache.Cache
	ttl   time.Duration
}

var _ urlscanner.DomainReputation = (*CachedReputation)(nil)

// WithReputationCache wraps next with a cache. Entries expire after ttl.
func WithReputationCache(next urlscanner.DomainReputation, c cache.Cache, ttl time.Duration) *CachedReputation {
	return &CachedReputation{next: next, cache: c, ttl: ttl}
}

// Reputation implements urlscanner.DomainReputation.
func (c *CachedReputation) Reputation(ctx context.Context, host string) (urlscanner.DomainVerdict, error) {
	key := "reputation:" + host

	v, ok, err := cache.LoadJSON[urlscanner.DomainVerdict](ctx, c.cache, key)
	if err != nil {
		logger.Warn(ctx, "could not read domain reputation from cache", zap.Error(err))
	}
	if ok {
		return v, nil
	}

	v, err = c.next.Reputation(ctx, host)
	if err != nil {
		return urlscanner.DomainVerdict{}, err //nolint: wrapcheck
	}

	if err := cache.StoreJSON(ctx, c.cache, key, v, c.ttl); err != nil {
		logger.Warn(ctx, "could not write domain reputation to cache", zap.Error(err))
	}

	return v, nil
}
