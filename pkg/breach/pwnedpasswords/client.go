// Package pwnedpasswords implements breach.Checker against the Pwned
// Passwords range API.
package pwnedpasswords

import (
	"bufio"
	"context"
	"crypto/sha1" //nolint: gosec
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"lifeguard/pkg/breach"
	"lifeguard/pkg/domain"
	"lifeguard/pkg/logger"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public Pwned Passwords API.
	DefaultBaseURL = "https://api.pwnedpasswords.com"
	// DefaultUserAgent identifies the client to the API.
	DefaultUserAgent = "lifeguard-password-checker"

	prefixLen = 5
)

// RangeFetcher returns the raw SUFFIX:COUNT body for a hash prefix.
type RangeFetcher interface {
	FetchRange(ctx context.Context, prefix string) (string, error)
}

// Options configures the range client.
type Options struct {
	BaseURL   string
	UserAgent string
	// Timeout bounds a single range request. Zero means no extra bound.
	Timeout time.Duration
	// Limiter, when set, is waited on before every request.
	Limiter *rate.Limiter
}

// Client fetches hash ranges over HTTP. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	opts       Options
}

var _ RangeFetcher = (*Client)(nil)

// New constructs a Client.
func New(httpClient *http.Client, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	return &Client{httpClient: httpClient, opts: opts}
}

// FetchRange requests every suffix sharing prefix.
func (c *Client) FetchRange(ctx context.Context, prefix string) (string, error) {
	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	if c.opts.Limiter != nil {
		if err := c.opts.Limiter.Wait(ctx); err != nil {
			return "", errors.Wrap(err, "wait for rate limiter")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+"/range/"+prefix, nil)
	if err != nil {
		return "", errors.Wrap(err, "create request")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	// padded responses hide the real size of the range from observers
	req.Header.Set("Add-Padding", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("range lookup failed with status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return string(b), nil
}

// HashPassword returns the upper-case SHA-1 hex digest of password split
// into its 5-character prefix and 35-character suffix.
func HashPassword(password string) (string, string) {
	sum := sha1.Sum([]byte(password)) //nolint: gosec
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))

	return digest[:prefixLen], digest[prefixLen:]
}

// FindSuffix scans a SUFFIX:COUNT body for suffix. A malformed line is an
// error because it means the body cannot be trusted.
func FindSuffix(body, suffix string) (int, bool, error) {
	sc := bufio.NewScanner(strings.NewReader(body))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		candidate, rawCount, ok := strings.Cut(line, ":")
		if !ok {
			return 0, false, fmt.Errorf("malformed range line %q", line)
		}
		if !strings.EqualFold(candidate, suffix) {
			continue
		}

		count, err := strconv.Atoi(strings.TrimSpace(rawCount))
		if err != nil || count < 0 {
			return 0, false, fmt.Errorf("malformed count in line %q", line)
		}

		return count, true, nil
	}
	if err := sc.Err(); err != nil {
		return 0, false, fmt.Errorf("could not scan range body: %w", err)
	}

	return 0, false, nil
}

// Checker implements breach.Checker on top of a RangeFetcher.
type Checker struct {
	ranges RangeFetcher
}

var _ breach.Checker = (*Checker)(nil)

// NewChecker constructs a Checker.
func NewChecker(ranges RangeFetcher) *Checker {
	return &Checker{ranges: ranges}
}

// Check implements breach.Checker. Only the hash prefix is sent upstream.
func (c *Checker) Check(ctx context.Context, password string) domain.BreachResult {
	prefix, suffix := HashPassword(password)
	ctx = logger.WithFields(ctx, zap.String("hashPrefix", prefix))

	body, err := c.ranges.FetchRange(ctx, prefix)
	if err != nil {
		logger.Warn(ctx, "could not fetch breach range", zap.Error(err))

		return breach.Unavailable()
	}

	count, found, err := FindSuffix(body, suffix)
	if err != nil {
		logger.Warn(ctx, "could not parse breach range", zap.Error(err))

		return breach.Unavailable()
	}

	// padding entries carry a zero count and never match a real hash
	if !found || count == 0 {
		return domain.BreachResult{Details: breach.DetailsClean}
	}

	return domain.BreachResult{
		IsBreached:  true,
		BreachCount: count,
		Details:     fmt.Sprintf(breach.DetailsBreached, count),
	}
}
