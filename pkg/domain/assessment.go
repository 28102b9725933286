package domain

import "time"

// Strength is the coarse tier derived from a password score.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// StrengthFromScore maps a 0-6 password score to its tier.
func StrengthFromScore(score int) Strength {
	switch {
	case score >= 5:
		return StrengthStrong
	case score >= 3:
		return StrengthMedium
	default:
		return StrengthWeak
	}
}

// PasswordAssessment is the outcome of the local strength heuristic,
// optionally enriched with the breach lookup.
type PasswordAssessment struct {
	// Score is built additively from independent sub-checks, 0-6.
	Score    int      `json:"score"`
	Strength Strength `json:"strength"`
	// Feedback preserves evaluation order; the tier summary is always last.
	Feedback []string `json:"feedback"`

	IsBreached  bool `json:"isBreached"`
	BreachCount int  `json:"breachCount"`
}

// BreachResult is the outcome of a k-anonymity breach lookup. A lookup that
// could not complete reports not-breached with an explanatory Details.
type BreachResult struct {
	IsBreached  bool   `json:"isBreached"`
	BreachCount int    `json:"breachCount"`
	Details     string `json:"details"`
}

// RiskLevel ranks how dangerous a URL is. Levels are ordered.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// Rank returns the ordinal position of the level, low being 0.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskLevelHigh:
		return 2
	case RiskLevelMedium:
		return 1
	default:
		return 0
	}
}

// Max returns the higher of the two levels.
func (r RiskLevel) Max(other RiskLevel) RiskLevel {
	if other.Rank() > r.Rank() {
		return other
	}

	return r
}

// Reputation describes how trustworthy a domain is. It is a trust label, so
// a low reputation corresponds to a high numeric risk score.
type Reputation string

const (
	ReputationHigh   Reputation = "high"
	ReputationMedium Reputation = "medium"
	ReputationLow    Reputation = "low"
)

// ReputationFromRiskScore buckets a 0-100 risk score into a trust label.
func ReputationFromRiskScore(score int) Reputation {
	switch {
	case score > 75:
		return ReputationLow
	case score > 25:
		return ReputationMedium
	default:
		return ReputationHigh
	}
}

// SignalStatus reports what happened to one stage of the URL pipeline.
type SignalStatus string

const (
	SignalRan     SignalStatus = "ran"
	SignalSkipped SignalStatus = "skipped"
	SignalFailed  SignalStatus = "failed"
)

// Signal records the outcome of a single pipeline stage.
type Signal struct {
	Stage  string       `json:"stage"`
	Status SignalStatus `json:"status"`
}

// URLAssessment is the consolidated verdict for a URL.
type URLAssessment struct {
	URL  string `json:"url"`
	Safe bool   `json:"safe"`
	// RiskLevel never decreases once it reached high.
	RiskLevel        RiskLevel  `json:"riskLevel"`
	ThreatTypes      []string   `json:"threatTypes"`
	GoogleSafe       bool       `json:"googleSafe"`
	DomainReputation Reputation `json:"domainReputation"`
	RiskScore        int        `json:"riskScore"`
	Details          string     `json:"details"`
	Signals          []Signal   `json:"signals,omitempty"`
	CheckedAt        time.Time  `json:"checkedAt"`
}

// NewURLAssessment returns an assessment with every field at its default.
func NewURLAssessment(url string) URLAssessment {
	return URLAssessment{
		URL:              url,
		Safe:             true,
		RiskLevel:        RiskLevelLow,
		ThreatTypes:      []string{},
		GoogleSafe:       true,
		DomainReputation: ReputationHigh,
	}
}

// MarkUnsafe flags the assessment as unsafe, raises the risk level to at
// least level and appends the given threat types.
func (a *URLAssessment) MarkUnsafe(level RiskLevel, threats ...string) {
	a.Safe = false
	a.RiskLevel = a.RiskLevel.Max(level)
	a.ThreatTypes = append(a.ThreatTypes, threats...)
}
