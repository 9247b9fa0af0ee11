// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package btcrpc_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/btcrpc"
)

const (
	testUser     = "alice"
	testPassword = "s3cret"
)

// nodeRequest is a request as seen by the simulated node.
type nodeRequest struct {
	Version string            `json:"jsonrpc"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
	ID      json.RawMessage   `json:"id"`
	Header  http.Header       `json:"-"`
}

// reply is what the simulated node writes back.
type reply struct {
	status int
	body   string
}

// fakeNode is an httptest server that answers JSON-RPC requests with a
// handler and records every request it receives.
type fakeNode struct {
	*httptest.Server

	calls    atomic.Int32
	mu       sync.Mutex
	requests []nodeRequest
}

func newFakeNode(t *testing.T, handle func(req nodeRequest) reply) *fakeNode {
	t.Helper()
	node := &fakeNode{}
	node.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		node.calls.Add(1)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var req nodeRequest
		if err := json.Unmarshal(body, &req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		req.Header = r.Header.Clone()

		node.mu.Lock()
		node.requests = append(node.requests, req)
		node.mu.Unlock()

		rep := handle(req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(rep.status)
		_, _ = io.WriteString(w, rep.body)
	}))
	t.Cleanup(node.Close)
	return node
}

func (n *fakeNode) Calls() int {
	return int(n.calls.Load())
}

func (n *fakeNode) LastRequest(t *testing.T) nodeRequest {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	require.NotEmpty(t, n.requests)
	return n.requests[len(n.requests)-1]
}

func resultReply(t *testing.T, v any) reply {
	t.Helper()
	result, err := json.Marshal(v)
	require.NoError(t, err)
	return reply{
		status: http.StatusOK,
		body:   fmt.Sprintf(`{"result":%s,"error":null,"id":1}`, result),
	}
}

// errorReply mirrors Bitcoin Core, which answers errors with status 500.
func errorReply(code int, message string) reply {
	return reply{
		status: http.StatusInternalServerError,
		body:   fmt.Sprintf(`{"result":null,"error":{"code":%d,"message":%q},"id":1}`, code, message),
	}
}

func busyReply() reply {
	return errorReply(btcrpc.ErrCodeInWarmup, "Loading block index...")
}

func newTestClient(t *testing.T, url string, opts ...btcrpc.Option) *btcrpc.Client {
	t.Helper()
	client, err := btcrpc.New(url, testUser, testPassword, opts...)
	require.NoError(t, err)
	return client
}

func rawParams(t *testing.T, req nodeRequest) []any {
	t.Helper()
	params := make([]any, len(req.Params))
	for i, p := range req.Params {
		require.NoError(t, json.Unmarshal(p, &params[i]))
	}
	return params
}
