package urlrisk

import (
	"fmt"
	"net"
	"net/url"
	"path"
	"sort"
	"strings"
)

// EnsureScheme prefixes raw with http:// when it carries no scheme, so bare
// domains such as "example.com" parse with a host.
func EnsureScheme(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "://") {
		return raw
	}

	return "http://" + raw
}

// ExtractDomain returns the hostname of the scheme-normalized URL, or raw
// unchanged when it cannot be parsed. A URL without a host, such as "http://"
// or "/path", yields "".
func ExtractDomain(raw string) string {
	u, err := url.Parse(EnsureScheme(raw))
	if err != nil {
		return raw
	}

	return strings.ToLower(u.Hostname())
}

// NormalizeURL returns a canonical representation of a URL string, used as
// the stored target of a URL check and as the key history is grouped by:
//   - Add http:// when no scheme is present
//   - Lower-case the scheme and host
//   - Ensure path is present; empty path becomes "/"
//   - Clean the path (resolve dot-segments, collapse duplicate slashes)
//   - Remove a trailing slash (except for the root path "/")
//   - Drop default ports (http:80, https:443), keep non-default ports
//   - Sort query parameters by key and by value for stable ordering
//   - Remove the fragment
//
// If the input cannot be parsed as a URL, an error is returned.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(EnsureScheme(raw))
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("could not parse URL: missing host in %q", raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)

	if u.Path == "" {
		u.Path = "/"
	}

	// clean path (removes dot-segments, duplicate slashes)
	cleaned := path.Clean(u.Path)
	if !strings.HasPrefix(cleaned, "/") {
		cleaned = "/" + cleaned
	}
	u.Path = cleaned
	u.RawPath = ""

	// lowercase host and drop default ports
	host := strings.ToLower(u.Host)
	port := ""
	if ph, pp, err := net.SplitHostPort(host); err == nil {
		host, port = ph, pp
	}
	switch {
	case port == "":
		u.Host = host
	case (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443"):
		u.Host = bracketHost(host)
	default:
		u.Host = net.JoinHostPort(host, port)
	}

	if u.RawQuery != "" {
		q := u.Query()
		for k := range q {
			sort.Strings(q[k])
		}
		// url.Values.Encode() sorts keys lexicographically
		u.RawQuery = q.Encode()
	}

	u.Fragment = ""

	return u.String(), nil
}

func bracketHost(host string) string {
	if strings.Contains(host, ":") {
		return "[" + host + "]"
	}

	return host
}
