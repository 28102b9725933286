package main

import (
	"context"
	"net/http"

	"lifeguard/internal/config"
	"lifeguard/internal/urlrisk"
	"lifeguard/pkg/breach"
	"lifeguard/pkg/breach/pwnedpasswords"
	"lifeguard/pkg/cache"
	"lifeguard/pkg/cache/rediscache"
	"lifeguard/pkg/logger"
	"lifeguard/pkg/urlscanner"
	"lifeguard/pkg/urlscanner/ipqs"
	"lifeguard/pkg/urlscanner/safebrowsing"
	"lifeguard/pkg/urlscanner/virustotal"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// newHTTPClient returns the client shared by every upstream API. Each call is
// additionally bounded by the engines' own per-call timeout.
func newHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   cfg.Checks.Timeout,
	}
}

// newCache connects to redis when configured. A nil cache disables caching.
func newCache(ctx context.Context, cfg *config.Config) (cache.Cache, func()) {
	if cfg.Redis.URL == "" {
		return nil, func() {}
	}

	c, err := rediscache.New(ctx, rediscache.Options{
		URL:      cfg.Redis.URL,
		Prefix:   cfg.Redis.Prefix,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		logger.Warn(ctx, "could not connect to redis, caching disabled", zap.Error(err))

		return nil, func() {}
	}

	return c, func() {
		if err := c.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

func newBreachChecker(cfg *config.Config, httpClient *http.Client, c cache.Cache) breach.Checker {
	var ranges pwnedpasswords.RangeFetcher = pwnedpasswords.New(httpClient, pwnedpasswords.Options{
		BaseURL:   cfg.Checks.BreachBaseURL,
		UserAgent: cfg.Checks.UserAgent,
		Timeout:   cfg.Checks.Timeout,
	})
	if c != nil {
		ranges = pwnedpasswords.WithCache(ranges, c, cfg.Checks.BreachCacheTTL)
	}

	return pwnedpasswords.NewChecker(ranges)
}

// newAggregator configures the external signals whose credentials are
// present. A signal without an API key is skipped by the pipeline.
func newAggregator(ctx context.Context, cfg *config.Config, httpClient *http.Client, c cache.Cache) *urlrisk.Aggregator {
	var deps urlrisk.Deps

	if cfg.SafeBrowsing.APIKey != "" {
		deps.Threats = safebrowsing.New(httpClient, safebrowsing.Options{
			APIKey:   cfg.SafeBrowsing.APIKey,
			BaseURL:  cfg.SafeBrowsing.BaseURL,
			ClientID: cfg.SafeBrowsing.ClientID,
			Limiter:  urlscanner.PerMinute(cfg.SafeBrowsing.RateLimitPerMin),
		})
	}

	if cfg.IPQS.APIKey != "" {
		var rep urlscanner.DomainReputation = ipqs.New(httpClient, ipqs.Options{
			APIKey:  cfg.IPQS.APIKey,
			BaseURL: cfg.IPQS.BaseURL,
			Limiter: urlscanner.PerMinute(cfg.IPQS.RateLimitPerMin),
		})
		if c != nil {
			rep = urlrisk.WithReputationCache(rep, c, cfg.Checks.ReputationCacheTTL)
		}
		deps.Reputation = rep
	}

	if cfg.VirusTotal.APIKey != "" {
		deps.Engines = virustotal.New(httpClient, virustotal.Options{
			APIKey:  cfg.VirusTotal.APIKey,
			BaseURL: cfg.VirusTotal.BaseURL,
			Limiter: urlscanner.PerMinute(cfg.VirusTotal.RateLimitPerMin),
		})
	}

	agg, err := urlrisk.New(deps, urlrisk.Options{Timeout: cfg.Checks.Timeout})
	if err != nil {
		logger.Fatal(ctx, "could not create url risk aggregator", zap.Error(err))
	}

	logger.Info(ctx, "url risk signals configured",
		zap.Bool("threatMatch", deps.Threats != nil),
		zap.Bool("domainReputation", deps.Reputation != nil),
		zap.Bool("multiEngine", deps.Engines != nil))

	return agg
}
