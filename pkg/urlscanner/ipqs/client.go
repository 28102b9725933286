// Package ipqs provides a urlscanner.DomainReputation backed by the
// IPQualityScore malicious URL scanner API.
package ipqs

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"lifeguard/pkg/urlscanner"

	"github.com/go-faster/errors"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public IPQualityScore endpoint.
const DefaultBaseURL = "https://www.ipqualityscore.com"

// Options configures the client.
type Options struct {
	APIKey  string
	BaseURL string
	Limiter *rate.Limiter
}

// Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	opts       Options
}

var _ urlscanner.DomainReputation = (*Client)(nil)

// New constructs a Client.
func New(httpClient *http.Client, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	return &Client{httpClient: httpClient, opts: opts}
}

// Reputation implements urlscanner.DomainReputation. A response with
// success=false is an error even when the status is 200.
func (c *Client) Reputation(ctx context.Context, host string) (urlscanner.DomainVerdict, error) {
	if err := urlscanner.Wait(ctx, c.opts.Limiter); err != nil {
		return urlscanner.DomainVerdict{}, errors.Wrap(err, "wait for rate limiter")
	}

	endpoint := c.opts.BaseURL + "/api/json/url/" + url.PathEscape(c.opts.APIKey) + "/" + url.PathEscape(host)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return urlscanner.DomainVerdict{}, errors.Wrap(err, "create request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return urlscanner.DomainVerdict{}, errors.Wrap(err, "send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return urlscanner.DomainVerdict{}, errors.Wrap(err, "read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return urlscanner.DomainVerdict{}, errors.Errorf("reputation lookup failed with status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out struct {
		Success    bool   `json:"success"`
		Message    string `json:"message"`
		RiskScore  int    `json:"risk_score"`
		Malicious  bool   `json:"malicious"`
		Phishing   bool   `json:"phishing"`
		Suspicious bool   `json:"suspicious"`
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return urlscanner.DomainVerdict{}, errors.Wrap(err, "decode response")
	}
	if !out.Success {
		return urlscanner.DomainVerdict{}, errors.Errorf("reputation lookup rejected: %s", out.Message)
	}

	return urlscanner.DomainVerdict{
		RiskScore:  min(max(out.RiskScore, 0), 100),
		Malicious:  out.Malicious,
		Phishing:   out.Phishing,
		Suspicious: out.Suspicious,
	}, nil
}
