// Package urlscanner defines the external reputation signals a URL can be
// checked against and the data types they report. Implementations live in
// subpackages, one per provider.
package urlscanner

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// ThreatTypes are the threat lists a ThreatMatcher consults.
var ThreatTypes = []string{"MALWARE", "SOCIAL_ENGINEERING", "UNWANTED_SOFTWARE"} //nolint: gochecknoglobals

// DomainVerdict is the reputation of a single host.
type DomainVerdict struct {
	RiskScore  int  `json:"riskScore"` // RiskScore is in [0, 100], higher is worse.
	Malicious  bool `json:"malicious"`
	Phishing   bool `json:"phishing"`
	Suspicious bool `json:"suspicious"`
}

// EngineStats counts the verdicts of the engines that last analyzed a URL.
type EngineStats struct {
	Malicious  int
	Suspicious int
	Undetected int
	Harmless   int
}

// ThreatMatcher checks a URL against curated threat lists.
//
//go:generate mockgen -package mockurlscanner -source=interface.go -destination=mock/mockurlscanner.go *
type ThreatMatcher interface {
	// FindThreats returns the threat labels the URL matched, empty when clean.
	FindThreats(ctx context.Context, URL string) ([]string, error)
}

// DomainReputation scores a hostname.
type DomainReputation interface {
	Reputation(ctx context.Context, host string) (DomainVerdict, error)
}

// MultiEngineScanner reports the aggregated verdict of many scan engines.
type MultiEngineScanner interface {
	URLReport(ctx context.Context, URL string) (EngineStats, error)
}

// PerMinute returns a limiter allowing n requests per minute, or nil when n is
// not positive.
func PerMinute(n int) *rate.Limiter {
	if n <= 0 {
		return nil
	}

	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), 1)
}

// Wait blocks on limiter when it is set.
func Wait(ctx context.Context, limiter *rate.Limiter) error {
	if limiter == nil {
		return nil
	}

	return limiter.Wait(ctx) //nolint: wrapcheck
}
