// Package virustotal provides a urlscanner.MultiEngineScanner backed by the
// VirusTotal v3 URL report API.
package virustotal

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"lifeguard/pkg/serrors"
	"lifeguard/pkg/urlscanner"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public VirusTotal endpoint.
const DefaultBaseURL = "https://www.virustotal.com"

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

var _ urlscanner.MultiEngineScanner = (*Client)(nil)

// New constructs a Client.
func New(httpClient *http.Client, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	return &Client{httpClient: httpClient, opts: opts}
}

// URLID returns the identifier VirusTotal files a URL under: its URL-safe
// base64 encoding without padding.
func URLID(URL string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(URL))
}

// URLReport implements urlscanner.MultiEngineScanner. It returns ErrNotFound
// when the URL was never analyzed and ErrRateLimited when the quota is spent.
func (c *Client) URLReport(ctx context.Context, URL string) (urlscanner.EngineStats, error) {
	// https://docs.virustotal.com/reference/url-info
	if err := urlscanner.Wait(ctx, c.opts.Limiter); err != nil {
		return urlscanner.EngineStats{}, errors.Wrap(err, "wait for rate limiter")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+"/api/v3/urls/"+URLID(URL), nil)
	if err != nil {
		return urlscanner.EngineStats{}, errors.Wrap(err, "create request")
	}
	req.Header.Set("x-apikey", c.opts.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return urlscanner.EngineStats{}, errors.Wrap(err, "send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return urlscanner.EngineStats{}, errors.Wrap(err, "read response body")
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return urlscanner.EngineStats{}, serrors.With(serrors.ErrNotFound, "url report not found")
	case resp.StatusCode == http.StatusTooManyRequests:
		return urlscanner.EngineStats{}, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return urlscanner.EngineStats{}, errors.Errorf("url report failed with status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)))
	}

	stats, err := DecodeStats(b)
	if err != nil {
		return urlscanner.EngineStats{}, errors.Wrap(err, "decode response")
	}

	return stats, nil
}

// DecodeStats extracts data.attributes.last_analysis_stats from a URL object,
// skipping everything else without materializing it.
func DecodeStats(b []byte) (urlscanner.EngineStats, error) {
	var (
		stats urlscanner.EngineStats
		found bool
	)

	err := jx.DecodeBytes(b).ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "data" {
			return d.Skip()
		}

		return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			if string(key) != "attributes" {
				return d.Skip()
			}

			return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
				if string(key) != "last_analysis_stats" {
					return d.Skip()
				}
				found = true

				return decodeCounts(d, &stats)
			})
		})
	})
	if err != nil {
		return urlscanner.EngineStats{}, err //nolint: wrapcheck
	}
	if !found {
		return urlscanner.EngineStats{}, errors.New("last_analysis_stats missing")
	}

	return stats, nil
}

func decodeCounts(d *jx.Decoder, stats *urlscanner.EngineStats) error {
	return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var dst *int
		switch string(key) {
		case "malicious":
			dst = &stats.Malicious
		case "suspicious":
			dst = &stats.Suspicious
		case "undetected":
			dst = &stats.Undetected
		case "harmless":
			dst = &stats.Harmless
		default:
			return d.Skip()
		}

		n, err := d.Int()
		if err != nil {
			return errors.Wrapf(err, "decode %s", key)
		}
		*dst = n

		return nil
	})
}
