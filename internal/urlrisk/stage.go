package urlrisk

import (
	"context"
	"fmt"

	"lifeguard/pkg/domain"
	"lifeguard/pkg/urlscanner"
)

// Stage names, in pipeline order.
const (
	StageHeuristic        = "heuristic"
	StageThreatMatch      = "threat_match"
	StageDomainReputation = "domain_reputation"
	StageMultiEngine      = "multi_engine"
)

// Input is the immutable view of the URL every stage receives.
type Input struct {
	// Raw is the URL exactly as submitted.
	Raw string
	// URL is Raw with a scheme added when it had none.
	URL string
	// Host is the hostname of URL. It is empty when URL has no host and equals
	// Raw when it cannot be parsed.
	Host string
}

// NewInput derives the stage input from a submitted URL.
func NewInput(raw string) Input {
	return Input{Raw: raw, URL: EnsureScheme(raw), Host: ExtractDomain(raw)}
}

// Stage is one step of the URL pipeline. A stage reads the accumulated
// assessment, may add to it, and must never lower its risk level.
type Stage struct {
	Name string
	// Skip reports whether the stage is to be bypassed for the input and the
	// state built so far. A nil Skip always runs.
	Skip func(in Input, a *domain.URLAssessment) bool
	// External stages call a remote service. They get a bounded context and
	// their failures are logged and ignored.
	External bool
	Run      func(ctx context.Context, in Input, a *domain.URLAssessment) error
}

// HeuristicStage flags patterns commonly used in phishing URLs. It always runs.
func HeuristicStage() Stage {
	return Stage{
		Name: StageHeuristic,
		Run: func(_ context.Context, in Input, a *domain.URLAssessment) error {
			threats := Scan(in.Raw)
			if len(threats) == 0 {
				return nil
			}
			a.MarkUnsafe(HeuristicRisk(len(threats)), threats...)

			return nil
		},
	}
}

// ThreatMatchStage checks the URL against curated threat lists. It is skipped
// when no matcher is configured.
func ThreatMatchStage(m urlscanner.ThreatMatcher) Stage {
	return Stage{
		Name:     StageThreatMatch,
		External: true,
		Skip: func(Input, *domain.URLAssessment) bool {
			return m == nil
		},
		Run: func(ctx context.Context, in Input, a *domain.URLAssessment) error {
			threats, err := m.FindThreats(ctx, in.URL)
			if err != nil {
				return fmt.Errorf("could not match threats: %w", err)
			}
			if len(threats) == 0 {
				return nil
			}
			a.MarkUnsafe(domain.RiskLevelHigh, threats...)
			a.GoogleSafe = false

			return nil
		},
	}
}

// ReputationStage scores the host. It is skipped when no client is configured,
// when the URL has no host, or when an earlier stage already found the URL
// unsafe.
func ReputationStage(r urlscanner.DomainReputation) Stage {
	return Stage{
		Name:     StageDomainReputation,
		External: true,
		Skip: func(in Input, a *domain.URLAssessment) bool {
			return r == nil || in.Host == "" || !a.Safe
		},
		Run: func(ctx context.Context, in Input, a *domain.URLAssessment) error {
			v, err := r.Reputation(ctx, in.Host)
			if err != nil {
				return fmt.Errorf("could not look up domain reputation: %w", err)
			}

			a.RiskScore = v.RiskScore
			a.DomainReputation = domain.ReputationFromRiskScore(v.RiskScore)

			switch {
			case v.Malicious:
				a.MarkUnsafe(domain.RiskLevelHigh, "malicious domain")
			case v.Phishing:
				a.MarkUnsafe(domain.RiskLevelHigh, "phishing domain")
			}

			return nil
		},
	}
}

// MultiEngineStage corroborates a high verdict with a multi-engine report. It
// never establishes a verdict on its own, so it is skipped unless the risk is
// already high.
func MultiEngineStage(s urlscanner.MultiEngineScanner) Stage {
	return Stage{
		Name:     StageMultiEngine,
		External: true,
		Skip: func(_ Input, a *domain.URLAssessment) bool {
			return s == nil || a.RiskLevel != domain.RiskLevelHigh
		},
		Run: func(ctx context.Context, in Input, a *domain.URLAssessment) error {
			stats, err := s.URLReport(ctx, in.URL)
			if err != nil {
				return fmt.Errorf("could not get multi-engine report: %w", err)
			}
			if stats.Malicious > 0 {
				a.MarkUnsafe(domain.RiskLevelHigh)
			}

			return nil
		},
	}
}
