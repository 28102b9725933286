package urlrisk_test

import (
	"testing"

	"lifeguard/internal/urlrisk"

	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
		ok   bool
	}{
		{
			name: "lowercase scheme and host; add root path",
			in:   "HTTP://Example.COM",
			out:  "http://example.com/",
			ok:   true,
		},
		{
			name: "bare domain gets http scheme",
			in:   "example.com/login",
			out:  "http://example.com/login",
			ok:   true,
		},
		{
			name: "remove default http port",
			in:   "http://example.com:80/path",
			out:  "http://example.com/path",
			ok:   true,
		},
		{
			name: "remove default https port",
			in:   "https://example.com:443/",
			out:  "https://example.com/",
			ok:   true,
		},
		{
			name: "keep non-default port",
			in:   "http://example.com:8080/",
			out:  "http://example.com:8080/",
			ok:   true,
		},
		{
			name: "clean path and drop trailing slash",
			in:   "http://example.com//a/./b/../c/",
			out:  "http://example.com/a/c",
			ok:   true,
		},
		{
			name: "sort query keys and values",
			in:   "http://EXAMPLE.com/path?b=2&a=2&a=1",
			out:  "http://example.com/path?a=1&a=2&b=2",
			ok:   true,
		},
		{
			name: "remove fragment",
			in:   "https://example.com/path?x=1#Section-2",
			out:  "https://example.com/path?x=1",
			ok:   true,
		},
		{
			name: "ipv6 host with non-default port",
			in:   "http://[2001:db8::1]:8080/a",
			out:  "http://[2001:db8::1]:8080/a",
			ok:   true,
		},
		{
			name: "ipv6 host with default port",
			in:   "http://[2001:db8::1]:80/a",
			out:  "http://[2001:db8::1]/a",
			ok:   true,
		},
		{
			name: "invalid url",
			in:   "http://exa mple.com/%zz",
			ok:   false,
		},
		{
			name: "missing host",
			in:   "http:///path",
			ok:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := urlrisk.NormalizeURL(tc.in)
			if !tc.ok {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.out, got)
		})
	}
}

func TestExtractDomain(t *testing.T) {
	cases := map[string]string{
		"https://Login.Example.com/path?q=1": "login.example.com",
		"example.com":                        "example.com",
		"http://user@evil.example:8080/":     "evil.example",
		"http://192.168.1.10/admin":          "192.168.1.10",
		"%%%":                                "%%%",
		"http://":                            "",
		"/path":                              "",
	}

	for in, want := range cases {
		require.Equal(t, want, urlrisk.ExtractDomain(in), in)
	}
}
