// Package controller holds the HTTP middlewares wrapped around the API
// router and the pprof mux mounted under PprofPrefix.
//
// WithLogger assigns the request ID and writes the access log. WithMetrics
// must run inside chi so the route pattern is known.
package controller
