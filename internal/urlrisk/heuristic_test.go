package urlrisk_test

import (
	"strings"
	"testing"

	"lifeguard/internal/urlrisk"
	"lifeguard/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		threats []string
	}{
		{
			name: "clean https url",
			url:  "https://example.com",
		},
		{
			name:    "plain http",
			url:     "http://example.com",
			threats: []string{urlrisk.ThreatInsecureScheme},
		},
		{
			name:    "url shortener",
			url:     "https://bit.ly/abc",
			threats: []string{"url shortener"},
		},
		{
			name:    "credential subdomain",
			url:     "https://login.example.com/",
			threats: []string{"suspicious login subdomain"},
		},
		{
			name:    "at sign hides destination",
			url:     "https://trusted.example@evil.example/",
			threats: []string{"hidden destination (@ in url)"},
		},
		{
			name:    "ip host",
			url:     "https://192.168.10.20/admin",
			threats: []string{"ip address instead of domain"},
		},
		{
			name:    "keyword fragment",
			url:     "https://secure-update.example/",
			threats: []string{"suspicious keywords"},
		},
		{
			name:    "brand in unrelated domain",
			url:     "https://paypal-help.example/",
			threats: []string{urlrisk.ThreatBrandImpersonation},
		},
		{
			name:    "brand as subdomain of another domain",
			url:     "https://paypal.com.evil.example/",
			threats: []string{urlrisk.ThreatBrandImpersonation},
		},
		{
			name: "brand's own domain",
			url:  "https://www.paypal.com/signin",
		},
		{
			name: "brand's own country domain",
			url:  "https://www.amazon.co.uk/",
		},
		{
			name: "brand as substring of an unrelated word",
			url:  "https://pineapple.example/",
		},
		{
			name:    "brand as subdomain of a short tld",
			url:     "https://paypal.abc.io/",
			threats: []string{urlrisk.ThreatBrandImpersonation},
		},
		{
			name:    "brand as subdomain of a three letter domain",
			url:     "https://apple.xyz.com/",
			threats: []string{urlrisk.ThreatBrandImpersonation},
		},
		{
			name:    "brand under a private suffix",
			url:     "https://paypal.com.ru/",
			threats: []string{urlrisk.ThreatBrandImpersonation},
		},
		{
			name: "brand's cloud storage domain",
			url:  "https://storage.googleapis.com/bucket",
		},
		{
			name: "brand's listed domain with brand subdomain",
			url:  "https://google.googleapis.com/",
		},
		{
			name: "brand's object storage domain",
			url:  "https://s3.amazonaws.com/x",
		},
		{
			name: "brand as prefix of an unrelated word",
			url:  "https://www.applebees.com/",
		},
		{
			name:    "brand's identity domain only trips the login rule",
			url:     "https://login.microsoftonline.com/",
			threats: []string{"suspicious login subdomain"},
		},
		{
			name: "excessive length",
			url:  "https://example.com/" + strings.Repeat("a", 90),
			threats: []string{
				urlrisk.ThreatExcessiveLength,
			},
		},
		{
			name: "everything at once",
			url:  "http://user@192.168.0.1/verify-account",
			threats: []string{
				"hidden destination (@ in url)",
				"ip address instead of domain",
				"suspicious keywords",
				urlrisk.ThreatInsecureScheme,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.threats, urlrisk.Scan(tt.url))
		})
	}
}

func TestHeuristicRisk(t *testing.T) {
	require.Equal(t, domain.RiskLevelLow, urlrisk.HeuristicRisk(0))
	require.Equal(t, domain.RiskLevelMedium, urlrisk.HeuristicRisk(1))
	require.Equal(t, domain.RiskLevelMedium, urlrisk.HeuristicRisk(2))
	require.Equal(t, domain.RiskLevelHigh, urlrisk.HeuristicRisk(3))
	require.Equal(t, domain.RiskLevelHigh, urlrisk.HeuristicRisk(7))
}
