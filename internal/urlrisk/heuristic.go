package urlrisk

import (
	_ "embed"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"lifeguard/pkg/domain"

	"golang.org/x/net/publicsuffix"
	"gopkg.in/yaml.v3"
)

// Threat types reported by the heuristic outside the pattern table.
const (
	ThreatBrandImpersonation = "possible brand impersonation"
	ThreatInsecureScheme     = "no https"
	ThreatExcessiveLength    = "excessively long url"
)

// MaxURLLength is the longest URL not flagged as excessive.
const MaxURLLength = 100

//go:embed patterns.yaml
var patternsYAML []byte

type rule struct {
	Name    string `yaml:"name"`
	Threat  string `yaml:"threat"`
	Target  string `yaml:"target"`
	Pattern string `yaml:"pattern"`

	re *regexp.Regexp
}

type brand struct {
	Name    string   `yaml:"name"`
	Domains []string `yaml:"domains"`
}

type patternTable struct {
	Rules  []rule  `yaml:"rules"`
	Brands []brand `yaml:"brands"`
}

// patterns is parsed once at startup and never mutated.
var patterns = mustLoadPatterns(patternsYAML) //nolint: gochecknoglobals

func loadPatterns(b []byte) (*patternTable, error) {
	var t patternTable
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("could not decode patterns: %w", err)
	}

	for i := range t.Rules {
		r := &t.Rules[i]
		if r.Target != "host" && r.Target != "url" {
			return nil, fmt.Errorf("rule %q: unknown target %q", r.Name, r.Target)
		}

		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %q: could not compile pattern: %w", r.Name, err)
		}
		r.re = re
	}

	return &t, nil
}

func mustLoadPatterns(b []byte) *patternTable {
	t, err := loadPatterns(b)
	if err != nil {
		panic(err)
	}

	return t
}

// Scan runs the local heuristic over raw and returns the threat types it
// found, in rule order. It performs no I/O.
func Scan(raw string) []string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	host := ExtractDomain(lowered)

	var threats []string
	for _, r := range patterns.Rules {
		subject := lowered
		if r.Target == "host" {
			subject = host
		}
		if r.re.MatchString(subject) {
			threats = append(threats, r.Threat)
		}
	}

	if impersonatesBrand(host, patterns.Brands) {
		threats = append(threats, ThreatBrandImpersonation)
	}

	if u, err := url.Parse(EnsureScheme(lowered)); err != nil || u.Scheme != "https" {
		threats = append(threats, ThreatInsecureScheme)
	}

	if len(raw) > MaxURLLength {
		threats = append(threats, ThreatExcessiveLength)
	}

	return threats
}

// HeuristicRisk maps the number of heuristic findings to a risk level.
func HeuristicRisk(findings int) domain.RiskLevel {
	switch {
	case findings >= 3:
		return domain.RiskLevelHigh
	case findings > 0:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelLow
	}
}

// impersonatesBrand reports whether host mentions a brand without belonging to
// it. A brand is mentioned when a dot or dash separated token equals it, so
// paypal-help.example counts and pineapple.example does not. The host belongs
// to the brand when its registrable domain under an ICANN suffix is the brand
// itself (www.paypal.com, amazon.co.uk) or when it falls under one of the
// brand's listed domains. Registrations under private suffixes such as com.ru
// are open to anyone and never count as owned.
func impersonatesBrand(host string, brands []brand) bool {
	if host == "" || net.ParseIP(host) != nil {
		return false
	}

	tokens := strings.FieldsFunc(host, func(r rune) bool { return r == '.' || r == '-' })
	for _, b := range brands {
		if slices.Contains(tokens, b.Name) && !b.owns(host) {
			return true
		}
	}

	return false
}

func (b brand) owns(host string) bool {
	for _, d := range b.Domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}

	site, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return false
	}
	if _, icann := publicsuffix.PublicSuffix(host); !icann {
		return false
	}
	label, _, _ := strings.Cut(site, ".")

	return label == b.Name
}
