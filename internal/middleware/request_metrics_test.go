package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/trainprogress/internal/telemetry/metrics"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRequestMetrics(t *testing.T) {
	metricsManager := metrics.NewTestManager()

	r := mux.NewRouter()
	r.HandleFunc("/progress/slots/{week}/{slot}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Use(RequestMetrics(metricsManager))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/progress/slots/1/2", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)

	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterRequests.With(prometheus.Labels{
		"method": http.MethodGet,
		"status": "418",
	})))
	assert.Equal(t, 1, testutil.CollectAndCount(metricsManager.HistogramRequestDuration))
	assert.Equal(t, float64(0), testutil.ToFloat64(metricsManager.GaugeRequests))
}

func TestRouteTemplate_NoRoute(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/whatever", nil)
	assert.Equal(t, "unknown", routeTemplate(req))
}
