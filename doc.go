// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package btcrpc is a typed client for the Bitcoin Core JSON-RPC interface.
//
// # Usage
//
//	client, err := btcrpc.New("http://127.0.0.1:18443", "user", "pass")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := client.GetBlockCount(ctx)
//	switch {
//	case err != nil:
//	    // the node could not be reached or its reply could not be decoded
//	case !res.OK():
//	    // the node rejected the request: res.Err.Code, res.Err.Message
//	default:
//	    fmt.Println(res.Value)
//	}
//
// Methods without a typed wrapper can be called through the same path:
//
//	res, err := btcrpc.Call[json.RawMessage](ctx, client, "getmempoolinfo")
//
// # Failures
//
// Every call ends in exactly one of three outcomes: a value, an error
// reported by the node (*RPCError inside the Result), or a *TransportError
// returned as the error. Transport errors cover connection failures,
// timeouts, unexpected HTTP statuses and bodies that do not decode into the
// expected type.
//
// # Busy nodes
//
// A node that is still loading answers with error code -28
// (ErrCodeInWarmup). With a RetryPolicy of N attempts and interval I, such a
// reply is retried after waiting I, up to N times; one final attempt follows
// and its outcome is returned whatever it is. No other failure is retried.
// New enables DefaultRetryPolicy (10 attempts, 500ms); WithoutRetry disables
// it.
//
// # Architecture
//
//   - retry.go: Call, the single dispatch path, and RetryPolicy
//   - errors.go: TransportError, RPCError and Result
//   - codec.go: JSON-RPC envelope codec
//   - transport.go, json.go: Transport and the authenticated HTTP binding
//   - methods.go, types.go: typed method adapters and their payloads
//   - config.go, metrics.go: environment configuration and Prometheus metrics
package btcrpc
