// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package btcrpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/luxfi/btcrpc/log"
)

// RetryPolicy controls how calls rejected with ErrCodeInWarmup are retried.
// No other failure is retried.
type RetryPolicy struct {
	// MaxAttempts is the number of busy replies tolerated before the final
	// attempt, whose outcome is returned as is. A call therefore reaches the
	// node at most MaxAttempts+1 times.
	MaxAttempts uint32
	// Interval is the wait between attempts.
	Interval time.Duration
}

// DefaultRetryPolicy is used by New unless WithRetryPolicy or WithoutRetry is given.
var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts: 10,
	Interval:    500 * time.Millisecond,
}

// Call invokes method on the node with positional params and decodes the
// result into R. Every typed method of Client goes through Call.
//
// The returned error is always a *TransportError: the node could not be
// reached or its reply could not be decoded into R. When the error is nil,
// the Result holds either the value or the error reported by the node.
func Call[R any](ctx context.Context, c *Client, method string, params ...any) (Result[R], error) {
	payload, err := c.codec.EncodeRequest(method, params)
	if err != nil {
		return Result[R]{}, &TransportError{Method: method, Err: fmt.Errorf("failed to encode request: %w", err)}
	}

	logger := c.log.WithKV("method", method).WithKV("call_id", uuid.NewString())

	if p := c.retry; p != nil {
		for i := uint32(0); i < p.MaxAttempts; i++ {
			res, err := attempt[R](ctx, c, logger, method, payload)
			if err != nil || !res.Err.IsBusy() {
				return res, err
			}

			logger.Info("node is still starting up, retrying",
				"attempt", i+1, "max_attempts", p.MaxAttempts, "interval", p.Interval)
			c.metrics.busyRetry(method)

			if err := wait(ctx, p.Interval); err != nil {
				return Result[R]{}, &TransportError{Method: method, Err: err}
			}
		}
	}
	return attempt[R](ctx, c, logger, method, payload)
}

// attempt performs a single round trip and classifies its outcome.
func attempt[R any](ctx context.Context, c *Client, logger log.Logger, method string, payload []byte) (Result[R], error) {
	start := time.Now()
	status, body, err := c.transport.RoundTrip(ctx, payload)
	c.metrics.observe(method, time.Since(start))
	if err != nil {
		logger.Debug("transport failure", "status", status, "err", err)
		c.metrics.failed(method, errorKindTransport)
		return Result[R]{}, &TransportError{Method: method, StatusCode: status, Err: err}
	}

	var value R
	err = c.codec.DecodeResponse(body, &value)

	// Bitcoin Core reports node errors with 4xx/5xx statuses and a JSON-RPC
	// body, so the body decides before the status does.
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		c.metrics.failed(method, errorKindApplication)
		return Result[R]{Err: rpcErr}, nil
	}
	if status < 200 || status > 299 {
		logger.Debug("unexpected status", "status", status)
		c.metrics.failed(method, errorKindTransport)
		return Result[R]{}, &TransportError{Method: method, StatusCode: status, Err: ErrUnexpectedStatus}
	}
	if err != nil {
		logger.Debug("failed to decode response", "err", err)
		c.metrics.failed(method, errorKindTransport)
		return Result[R]{}, &TransportError{Method: method, StatusCode: status, Err: err}
	}
	return Result[R]{Value: value}, nil
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
