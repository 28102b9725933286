package activity

import (
	"context"

	"github.com/mssola/useragent"
)

type clientKey struct{}

type client struct {
	userAgent string
	ip        string
}

// WithClient records who is calling on ctx so activities emitted while
// serving the request describe the client they came from. Empty values are
// left out.
func WithClient(ctx context.Context, userAgent, ip string) context.Context {
	if userAgent == "" && ip == "" {
		return ctx
	}

	return context.WithValue(ctx, clientKey{}, client{userAgent: userAgent, ip: ip})
}

// ClientDetails describes the client found on ctx, or nil when there is none.
func ClientDetails(ctx context.Context) map[string]any {
	c, ok := ctx.Value(clientKey{}).(client)
	if !ok {
		return nil
	}

	details := make(map[string]any, 6)
	if c.ip != "" {
		details["ip"] = c.ip
	}
	if c.userAgent != "" {
		parsed := useragent.New(c.userAgent)
		browser, version := parsed.Browser()

		details["browser"] = browser
		details["browserVersion"] = version
		details["os"] = parsed.OS()
		details["mobile"] = parsed.Mobile()
		details["bot"] = parsed.Bot()
	}

	return details
}
