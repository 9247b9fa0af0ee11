// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package btcrpc

import (
	"errors"
	"fmt"
)

// Error codes reported by Bitcoin Core. Only ErrCodeInWarmup changes how a call
// is dispatched; the others are listed for callers inspecting RPCError.Code.
const (
	ErrCodeMisc                = -1
	ErrCodeType                = -3
	ErrCodeWallet              = -4
	ErrCodeInvalidAddressOrKey = -5
	ErrCodeInsufficientFunds   = -6
	ErrCodeOutOfMemory         = -7
	ErrCodeInvalidParameter    = -8
	ErrCodeWalletNotFound      = -18
	ErrCodeDatabase            = -20
	ErrCodeDeserialization     = -22
	ErrCodeVerify              = -25
	ErrCodeVerifyRejected      = -26
	ErrCodeVerifyAlreadyInUTXO = -27
	ErrCodeMethodDeprecated    = -32

	// ErrCodeInWarmup is returned while the node is still loading its block
	// index or wallet. It is the only error that is retried.
	ErrCodeInWarmup = -28

	ErrCodeInvalidRequest = -32600
	ErrCodeMethodNotFound = -32601
	ErrCodeInvalidParams  = -32602
	ErrCodeInternal       = -32603
	ErrCodeParse          = -32700
)

var (
	// ErrMalformedResponse is returned when a response body cannot be decoded
	// into a JSON-RPC response carrying the expected result type.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrNullResult is returned when a response carries neither a result nor an error.
	ErrNullResult = errors.New("result is null")
	// ErrUnexpectedStatus is returned for a non-2xx reply whose body is not a
	// JSON-RPC error object.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

// RPCError is an error reported by the node in a well-formed response.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// IsBusy reports whether the node rejected the request because it has not
// finished starting up.
func (e *RPCError) IsBusy() bool {
	return e != nil && e.Code == ErrCodeInWarmup
}

// TransportError is returned when a call did not produce a decodable response:
// the request could not be sent, the connection failed or timed out, or the
// body did not match the expected result type.
type TransportError struct {
	Method     string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: http status %d: %v", e.Method, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Result is the application-level outcome of a call that reached the node.
// Exactly one of Value and Err is meaningful: Err is nil on success.
type Result[T any] struct {
	Value T
	Err   *RPCError
}

// OK reports whether the node returned a result.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Get returns the value, or the node's error as an error.
func (r Result[T]) Get() (T, error) {
	if r.Err != nil {
		return r.Value, r.Err
	}
	return r.Value, nil
}

// Flatten collapses both failure layers into a single error for callers that
// only need success or failure. The layers remain distinguishable with
// errors.As on *TransportError and *RPCError.
func Flatten[T any](res Result[T], err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return res.Get()
}
