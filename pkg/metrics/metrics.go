// Package metrics holds histogram layouts shared by the prometheus and otel
// instruments.
package metrics

// DefaultBuckets are latency buckets in seconds for HTTP requests served.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// UpstreamBuckets are latency buckets in seconds for calls to external
// reputation and breach APIs, which are bounded by a per-call timeout.
var UpstreamBuckets = []float64{.05, .1, .25, .5, .75, 1, 1.5, 2, 3, 5, 7.5, 10} //nolint: gochecknoglobals
