package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lifeguard/pkg/controller"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// sampleCount returns how many observations the request histogram holds for
// the given route and status.
func sampleCount(t *testing.T, route, status string) uint64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != "lifeguard_http_request_duration_seconds" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["route"] == route && labels["status"] == status {
				return m.GetHistogram().GetSampleCount()
			}
		}
	}

	return 0
}

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(controller.WithMetrics)
	r.Get("/v1/checks/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := sampleCount(t, "/v1/checks/{id}", "404")

	req := httptest.NewRequest(http.MethodGet, "/v1/checks/0c9b1c52-9f6e-4a31-a54a-4f4b4cfd3f2d", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, before+1, sampleCount(t, "/v1/checks/{id}", "404"))
}
