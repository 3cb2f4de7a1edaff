package client

import (
	"net/http"
	"time"

	"github.com/iotaledger/hive.go/logger"
	"github.com/prometheus/client_golang/prometheus"
)

type options struct {
	httpClient      *http.Client
	timeout         time.Duration
	cacheTTL        time.Duration
	announceWorkers int
	registerer      prometheus.Registerer
	log             *logger.Logger
}

// Option configures a NodeAPI.
type Option func(*options)

// WithHTTPClient makes the NodeAPI send its requests through the given http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// WithTimeout sets the timeout of a single request.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithCacheTTL sets how long network properties and node info are reused before they are fetched again.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.cacheTTL = ttl
	}
}

// WithAnnounceWorkers sets the number of concurrent announcements of AnnounceAll.
func WithAnnounceWorkers(workers int) Option {
	return func(o *options) {
		if workers > 0 {
			o.announceWorkers = workers
		}
	}
}

// WithLogger sets the logger that requests are reported to.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithMetrics registers counters and durations of the requests of the NodeAPI with the given registerer.
func WithMetrics(registerer prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = registerer
	}
}
