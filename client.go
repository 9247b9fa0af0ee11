// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package btcrpc

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/luxfi/btcrpc/log"
)

// Client is a Bitcoin Core JSON-RPC client. Its configuration is fixed at
// construction, so a Client is safe for concurrent use.
type Client struct {
	endpoint  string
	transport Transport
	codec     Codec
	retry     *RetryPolicy
	log       log.Logger
	metrics   *Metrics
}

// New creates a client for the node at endpoint, authenticating every
// request with HTTP Basic authentication. Busy nodes are retried with
// DefaultRetryPolicy unless an option says otherwise.
//
// New fails if endpoint is not an absolute http(s) URL, if the credentials
// cannot be carried in an Authorization header, or if an option is invalid.
func New(endpoint, username, password string, opts ...Option) (*Client, error) {
	o := newOptions(opts)
	if err := o.validate(); err != nil {
		return nil, err
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q: expected an http or https URL", endpoint)
	}

	authorization, err := basicAuth(username, password)
	if err != nil {
		return nil, err
	}

	transport := o.transport
	if transport == nil {
		transport, err = newHTTPTransport(u.String(), authorization, o)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize transport: %w", err)
		}
	}

	return &Client{
		endpoint:  u.String(),
		transport: transport,
		codec:     o.codec,
		retry:     o.retry,
		log:       o.logger.WithName("btcrpc"),
		metrics:   o.metrics,
	}, nil
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// RetryPolicy returns the busy-node retry policy, if one is configured.
func (c *Client) RetryPolicy() (RetryPolicy, bool) {
	if c.retry == nil {
		return RetryPolicy{}, false
	}
	return *c.retry, true
}

// Option configures a Client
type Option func(*options)

type options struct {
	retry      *RetryPolicy
	timeout    time.Duration
	httpClient *http.Client
	transport  Transport
	codec      Codec
	logger     log.Logger
	metrics    *Metrics
	headers    http.Header
	rateLimit  rate.Limit
	rateBurst  int
}

func newOptions(opts []Option) *options {
	policy := DefaultRetryPolicy
	o := &options{
		retry:   &policy,
		timeout: defaultTimeout,
		codec:   defaultCodec,
		logger:  log.NewNoopLogger(),
		headers: make(http.Header),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) validate() error {
	if o.retry != nil && o.retry.Interval < 0 {
		return errors.New("retry interval must not be negative")
	}
	if o.timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	if o.rateLimit < 0 || (o.rateLimit > 0 && o.rateBurst < 1) {
		return errors.New("rate limit requires a positive rate and burst")
	}
	if o.codec == nil {
		return errors.New("codec must not be nil")
	}
	if o.logger == nil {
		return errors.New("logger must not be nil")
	}
	return nil
}

// WithRetryPolicy retries calls rejected by a busy node according to p.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(o *options) { o.retry = &p }
}

// WithoutRetry makes every call a single attempt.
func WithoutRetry() Option {
	return func(o *options) { o.retry = nil }
}

// WithTimeout bounds each HTTP round trip. Zero means no timeout.
// Ignored when WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithHTTPClient sends requests through c instead of a client built by New.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithTransport replaces the HTTP binding entirely.
func WithTransport(t Transport) Option {
	return func(o *options) { o.transport = t }
}

// WithCodec sets a custom envelope codec
func WithCodec(c Codec) Option {
	return func(o *options) { o.codec = c }
}

func WithLogger(l log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithHeader adds a header sent with every request. The Authorization and
// Content-Type headers cannot be overridden.
func WithHeader(name, value string) Option {
	return func(o *options) { o.headers.Add(name, value) }
}

// WithRateLimit limits outgoing requests to r per second with the given burst.
// Calls wait for a token before each attempt.
func WithRateLimit(r float64, burst int) Option {
	return func(o *options) {
		o.rateLimit = rate.Limit(r)
		o.rateBurst = burst
	}
}
