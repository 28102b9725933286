// Package safebrowsing provides a urlscanner.ThreatMatcher backed by the
// Google Safe Browsing Lookup API (v4).
package safebrowsing

import (
	"bytes"
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

// DefaultBaseURL is the public Safe Browsing endpoint.
const DefaultBaseURL = "https://safebrowsing.googleapis.com"

// Options configures the client.
type Options struct {
	APIKey        string
	BaseURL       string
	ClientID      string
	ClientVersion string
	Limiter       *rate.Limiter
}

// Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	opts       Options
}

var _ urlscanner.ThreatMatcher = (*Client)(nil)

// New constructs a Client.
func New(httpClient *http.Client, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.ClientID == "" {
		opts.ClientID = "lifeguard"
	}
	if opts.ClientVersion == "" {
		opts.ClientVersion = "1.0.0"
	}

	return &Client{httpClient: httpClient, opts: opts}
}

type threatEntry struct {
	URL string `json:"url"`
}

type findRequest struct {
	Client struct {
		ClientID      string `json:"clientId"`
		ClientVersion string `json:"clientVersion"`
	} `json:"client"`
	ThreatInfo struct {
		ThreatTypes      []string      `json:"threatTypes"`
		PlatformTypes    []string      `json:"platformTypes"`
		ThreatEntryTypes []string      `json:"threatEntryTypes"`
		ThreatEntries    []threatEntry `json:"threatEntries"`
	} `json:"threatInfo"`
}

type findResponse struct {
	Matches []struct {
		ThreatType string `json:"threatType"`
	} `json:"matches"`
}

// FindThreats implements urlscanner.ThreatMatcher. Each matched threat type
// is reported once.
func (c *Client) FindThreats(ctx context.Context, URL string) ([]string, error) {
	// https://developers.google.com/safe-browsing/v4/lookup-api
	var in findRequest
	in.Client.ClientID = c.opts.ClientID
	in.Client.ClientVersion = c.opts.ClientVersion
	in.ThreatInfo.ThreatTypes = urlscanner.ThreatTypes
	in.ThreatInfo.PlatformTypes = []string{"ANY_PLATFORM"}
	in.ThreatInfo.ThreatEntryTypes = []string{"URL"}
	in.ThreatInfo.ThreatEntries = []threatEntry{{URL: URL}}

	body, err := json.Marshal(in)
	if err != nil {
		return nil, errors.Wrap(err, "marshal request")
	}

	if err := urlscanner.Wait(ctx, c.opts.Limiter); err != nil {
		return nil, errors.Wrap(err, "wait for rate limiter")
	}

	endpoint := c.opts.BaseURL + "/v4/threatMatches:find?key=" + url.QueryEscape(c.opts.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("threat match failed with status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out findResponse
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}

	seen := make(map[string]struct{}, len(out.Matches))
	threats := make([]string, 0, len(out.Matches))
	for _, m := range out.Matches {
		if _, ok := seen[m.ThreatType]; ok || m.ThreatType == "" {
			continue
		}
		seen[m.ThreatType] = struct{}{}
		threats = append(threats, m.ThreatType)
	}

	return threats, nil
}
