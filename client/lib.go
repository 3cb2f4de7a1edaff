// Package client implements a wrapper for the REST gateway of a catapult node.
package client

import (
	"context"
	"net/http"
	"time"

	"github.com/ReneKroon/ttlcache/v2"
	"github.com/cockroachdb/errors"
	"github.com/go-resty/resty/v2"
	"github.com/iotaledger/hive.go/logger"
	"go.uber.org/zap"

	"github.com/iotaledger/catapult-client/packages/jsonmodels"
)

var (
	// ErrBadRequest defines the "bad request" error.
	ErrBadRequest = errors.New("bad request")
	// ErrInternalServerError defines the "internal server error" error.
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound defines the "not found" error.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized defines the "unauthorized" error.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConflict defines the "conflict" error the gateway returns for invalid arguments.
	ErrConflict = errors.New("conflict")
	// ErrUnknownError defines the "unknown error" error.
	ErrUnknownError = errors.New("unknown error")
	// ErrNotImplemented defines the "operation not implemented/supported/available" error.
	ErrNotImplemented = errors.New("operation not implemented/supported/available")
)

const (
	defaultTimeout         = 10 * time.Second
	defaultCacheTTL        = 5 * time.Minute
	defaultAnnounceWorkers = 4
)

// NodeAPI is an API wrapper over the REST gateway of a node. It is safe for concurrent use.
type NodeAPI struct {
	baseURL         string
	client          *resty.Client
	cache           *ttlcache.Cache
	announceWorkers int
	metrics         *requestMetrics
	log             *logger.Logger
}

// NewNodeAPI returns a new *NodeAPI with the given baseURL.
func NewNodeAPI(baseURL string, opts ...Option) *NodeAPI {
	options := &options{
		timeout:         defaultTimeout,
		cacheTTL:        defaultCacheTTL,
		announceWorkers: defaultAnnounceWorkers,
		log:             zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(options)
	}

	client := resty.New()
	if options.httpClient != nil {
		client = resty.NewWithClient(options.httpClient)
	}
	client.SetHostURL(baseURL).SetTimeout(options.timeout)

	cache := ttlcache.NewCache()
	cache.SkipTTLExtensionOnHit(true)
	if err := cache.SetTTL(options.cacheTTL); err != nil {
		options.log.Warnw("failed to configure cache TTL", "err", err)
	}

	var metrics *requestMetrics
	if options.registerer != nil {
		var err error
		if metrics, err = newRequestMetrics(options.registerer); err != nil {
			options.log.Warnw("failed to register request metrics", "err", err)
		}
	}

	return &NodeAPI{
		baseURL:         baseURL,
		client:          client,
		cache:           cache,
		announceWorkers: options.announceWorkers,
		metrics:         metrics,
		log:             options.log,
	}
}

// BaseURL returns the baseURL of the API.
func (api *NodeAPI) BaseURL() string {
	return api.baseURL
}

// Close releases the cache of the NodeAPI.
func (api *NodeAPI) Close() error {
	return errors.WithStack(api.cache.Close())
}

func (api *NodeAPI) do(ctx context.Context, method string, route string, reqObj interface{}, resObj interface{}) error {
	req := api.client.R().
		SetContext(ctx).
		SetError(&jsonmodels.ErrorResponse{})
	if reqObj != nil {
		req.SetBody(reqObj)
	}
	if resObj != nil {
		req.SetResult(resObj)
	}

	start := time.Now()
	res, err := req.Execute(method, route)
	if err != nil {
		api.metrics.observe(method, 0, time.Since(start))
		return errors.Wrapf(err, "failed to %s %s", method, route)
	}
	api.metrics.observe(method, res.StatusCode(), res.Time())
	api.log.Debugw("request done", "method", method, "route", route, "status", res.StatusCode(), "duration", res.Time())

	return interpretResponse(res)
}

func interpretResponse(res *resty.Response) error {
	if res.IsSuccess() {
		return nil
	}

	message := res.String()
	if errRes, ok := res.Error().(*jsonmodels.ErrorResponse); ok && errRes.Code != "" {
		message = errRes.Code + ": " + errRes.Message
	}

	switch res.StatusCode() {
	case http.StatusInternalServerError:
		return errors.Wrap(ErrInternalServerError, message)
	case http.StatusNotFound:
		return errors.Wrapf(ErrNotFound, "%s: %s", res.Request.URL, message)
	case http.StatusBadRequest:
		return errors.Wrap(ErrBadRequest, message)
	case http.StatusConflict:
		return errors.Wrap(ErrConflict, message)
	case http.StatusUnauthorized:
		return errors.Wrap(ErrUnauthorized, message)
	case http.StatusNotImplemented:
		return errors.Wrap(ErrNotImplemented, message)
	}

	return errors.Wrapf(ErrUnknownError, "status %d: %s", res.StatusCode(), message)
}
