package client

import (
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const transportErrorStatus = "error"

// requestMetrics counts the requests of a NodeAPI and measures their duration.
type requestMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newRequestMetrics(registerer prometheus.Registerer) (*requestMetrics, error) {
	metrics := &requestMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catapult_client_requests_total",
			Help: "number of requests sent to the REST gateway",
		}, []string{"method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "catapult_client_request_duration_seconds",
			Help:    "duration of the requests sent to the REST gateway",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}

	if err := registerer.Register(metrics.requests); err != nil {
		return nil, errors.Wrap(err, "failed to register request counter")
	}
	if err := registerer.Register(metrics.duration); err != nil {
		return nil, errors.Wrap(err, "failed to register request duration")
	}

	return metrics, nil
}

func (r *requestMetrics) observe(method string, statusCode int, duration time.Duration) {
	if r == nil {
		return
	}

	status := transportErrorStatus
	if statusCode != 0 {
		status = strconv.Itoa(statusCode)
	}
	r.requests.WithLabelValues(method, status).Inc()
	r.duration.WithLabelValues(method).Observe(duration.Seconds())
}
