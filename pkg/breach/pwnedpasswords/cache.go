package pwnedpasswords

import (
	"context"
	"errors"
	"time"

	"lifeguard/pkg/cache"
	"lifeguard/pkg/logger"

	"go.uber.org/zap"
)

// CachedRanges serves ranges from a cache and falls back to next on a miss.
// Cache failures are logged and bypassed.
type CachedRanges struct {
	next  RangeFetcher
	cache cache.Cache
	ttl   time.Duration
}

var _ RangeFetcher = (*CachedRanges)(nil)

// WithCache wraps next with a cache. Entries expire after ttl.
func WithCache(next RangeFetcher, c cache.Cache, ttl time.Duration) *CachedRanges {
	return &CachedRanges{next: next, cache: c, ttl: ttl}
}

func rangeKey(prefix string) string { return "breach:range:" + prefix }

// FetchRange implements RangeFetcher.
func (c *CachedRanges) FetchRange(ctx context.Context, prefix string) (string, error) {
	b, err := c.cache.Get(ctx, rangeKey(prefix))
	switch {
	case err == nil:
		return string(b), nil
	case !errors.Is(err, cache.ErrMiss):
		logger.Warn(ctx, "could not read breach range from cache", zap.Error(err))
	}

	body, err := c.next.FetchRange(ctx, prefix)
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	if err := c.cache.Set(ctx, rangeKey(prefix), []byte(body), c.ttl); err != nil {
		logger.Warn(ctx, "could not write breach range to cache", zap.Error(err))
	}

	return body, nil
}
