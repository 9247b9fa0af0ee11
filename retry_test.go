// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package btcrpc_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/btcrpc"
)

func TestCallBusyNodeExhaustsRetries(t *testing.T) {
	t.Parallel()

	node := newFakeNode(t, func(nodeRequest) reply { return busyReply() })
	policy := btcrpc.RetryPolicy{MaxAttempts: 3, Interval: 20 * time.Millisecond}
	client := newTestClient(t, node.URL, btcrpc.WithRetryPolicy(policy))

	start := time.Now()
	res, err := client.GetBlockCount(context.Background())
	elapsed := time.Since(start)

	require.NoError(t, err)
	require.False(t, res.OK())
	assert.True(t, res.Err.IsBusy())
	assert.Equal(t, btcrpc.ErrCodeInWarmup, res.Err.Code)
	assert.Equal(t, "Loading block index...", res.Err.Message)
	assert.Equal(t, 4, node.Calls(), "3 retried attempts plus one final attempt")
	assert.GreaterOrEqual(t, elapsed, 3*policy.Interval)
}

func TestCallBusyNodeRecovers(t *testing.T) {
	t.Parallel()

	var n atomic.Int32
	node := newFakeNode(t, func(nodeRequest) reply {
		if n.Add(1) <= 2 {
			return busyReply()
		}
		return resultReply(t, 101)
	})
	client := newTestClient(t, node.URL, btcrpc.WithRetryPolicy(btcrpc.RetryPolicy{
		MaxAttempts: 10,
		Interval:    time.Millisecond,
	}))

	res, err := client.GetBlockCount(context.Background())
	require.NoError(t, err)
	require.True(t, res.OK())
	assert.Equal(t, btcrpc.BlockHeight(101), res.Value)
	assert.Equal(t, 3, node.Calls())
}

func TestCallBusyOnFinalAttemptOnly(t *testing.T) {
	t.Parallel()

	var n atomic.Int32
	node := newFakeNode(t, func(nodeRequest) reply {
		if n.Add(1) <= 2 {
			return busyReply()
		}
		return resultReply(t, 7)
	})
	client := newTestClient(t, node.URL, btcrpc.WithRetryPolicy(btcrpc.RetryPolicy{
		MaxAttempts: 2,
		Interval:    time.Millisecond,
	}))

	res, err := client.GetBlockCount(context.Background())
	require.NoError(t, err)
	require.True(t, res.OK(), "the final attempt result is returned")
	assert.Equal(t, btcrpc.BlockHeight(7), res.Value)
	assert.Equal(t, 3, node.Calls())
}

func TestCallZeroAttemptsStillCallsOnce(t *testing.T) {
	t.Parallel()

	node := newFakeNode(t, func(nodeRequest) reply { return busyReply() })
	client := newTestClient(t, node.URL, btcrpc.WithRetryPolicy(btcrpc.RetryPolicy{}))

	res, err := client.GetBlockCount(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Err.IsBusy())
	assert.Equal(t, 1, node.Calls())
}

func TestCallWithoutRetry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		reply reply
	}{
		{"busy", busyReply()},
		{"rpc error", errorReply(btcrpc.ErrCodeInvalidParameter, "Invalid parameter")},
		{"success", reply{status: http.StatusOK, body: `{"result":5,"error":null,"id":1}`}},
		{"malformed", reply{status: http.StatusOK, body: `not json`}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			node := newFakeNode(t, func(nodeRequest) reply { return tc.reply })
			client := newTestClient(t, node.URL, btcrpc.WithoutRetry())

			_, _ = client.GetBlockCount(context.Background())
			assert.Equal(t, 1, node.Calls())

			_, ok := client.RetryPolicy()
			assert.False(t, ok)
		})
	}
}

func TestCallTransportFailureIsNotRetried(t *testing.T) {
	t.Parallel()

	node := newFakeNode(t, func(nodeRequest) reply { return busyReply() })
	url := node.URL
	node.Close()

	client := newTestClient(t, url, btcrpc.WithRetryPolicy(btcrpc.RetryPolicy{
		MaxAttempts: 5,
		Interval:    time.Second,
	}))

	start := time.Now()
	_, err := client.GetBlockCount(context.Background())
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second, "no wait before returning")

	var transportErr *btcrpc.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "getblockcount", transportErr.Method)
	assert.Zero(t, transportErr.StatusCode)

	var rpcErr *btcrpc.RPCError
	assert.False(t, errors.As(err, &rpcErr))
}

func TestCallUnexpectedStatusIsNotRetried(t *testing.T) {
	t.Parallel()

	node := newFakeNode(t, func(nodeRequest) reply {
		return reply{status: http.StatusServiceUnavailable, body: "Work queue depth exceeded"}
	})
	client := newTestClient(t, node.URL, btcrpc.WithRetryPolicy(btcrpc.RetryPolicy{
		MaxAttempts: 5,
		Interval:    time.Millisecond,
	}))

	_, err := client.GetBlockCount(context.Background())
	require.ErrorIs(t, err, btcrpc.ErrUnexpectedStatus)
	assert.Equal(t, 1, node.Calls())
}

func TestCallOtherRPCErrorIsNotRetried(t *testing.T) {
	t.Parallel()

	node := newFakeNode(t, func(nodeRequest) reply {
		return errorReply(btcrpc.ErrCodeInvalidAddressOrKey, "Block not found")
	})
	client := newTestClient(t, node.URL, btcrpc.WithRetryPolicy(btcrpc.RetryPolicy{
		MaxAttempts: 5,
		Interval:    time.Second,
	}))

	res, err := client.GetBlock(context.Background(), "00ff")
	require.NoError(t, err)
	require.NotNil(t, res.Err)
	assert.Equal(t, btcrpc.ErrCodeInvalidAddressOrKey, res.Err.Code)
	assert.False(t, res.Err.IsBusy())
	assert.Equal(t, 1, node.Calls())
}

func TestCallContextCancelledWhileWaiting(t *testing.T) {
	t.Parallel()

	node := newFakeNode(t, func(nodeRequest) reply { return busyReply() })
	client := newTestClient(t, node.URL, btcrpc.WithRetryPolicy(btcrpc.RetryPolicy{
		MaxAttempts: 5,
		Interval:    time.Hour,
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.GetBlockCount(ctx)
	var transportErr *btcrpc.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, node.Calls())
}

func TestCallConcurrentUse(t *testing.T) {
	t.Parallel()

	node := newFakeNode(t, func(req nodeRequest) reply {
		return resultReply(t, "hash-"+req.Method)
	})
	client := newTestClient(t, node.URL)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hash, err := btcrpc.Flatten(client.GetBestBlockHash(context.Background()))
			assert.NoError(t, err)
			assert.Equal(t, btcrpc.BlockHash("hash-getbestblockhash"), hash)
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, node.Calls())
}

func TestCallThroughCustomTransport(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	transport := btcrpc.TransportFunc(func(ctx context.Context, payload []byte) (int, []byte, error) {
		if calls.Add(1) == 1 {
			return http.StatusOK, []byte(`{"result":null,"error":{"code":-28,"message":"Verifying blocks..."},"id":1}`), nil
		}
		return http.StatusOK, []byte(`{"result":"0.5","error":null,"id":1}`), nil
	})
	client := newTestClient(t, "http://127.0.0.1:18443",
		btcrpc.WithTransport(transport),
		btcrpc.WithRetryPolicy(btcrpc.RetryPolicy{MaxAttempts: 1, Interval: time.Millisecond}),
	)

	balance, err := btcrpc.Flatten(client.GetBalance(context.Background()))
	require.NoError(t, err)
	assert.Equal(t, "0.5", balance.String())
	assert.EqualValues(t, 2, calls.Load())
}

func TestDefaultRetryPolicy(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "http://127.0.0.1:8332")
	policy, ok := client.RetryPolicy()
	require.True(t, ok)
	assert.Equal(t, uint32(10), policy.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, policy.Interval)
}
