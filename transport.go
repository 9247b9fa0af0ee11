// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package btcrpc

import "context"

// Transport delivers an encoded request envelope to the node.
type Transport interface {
	// RoundTrip sends payload and returns the status code and body of the
	// reply. A non-nil error means no reply was received.
	RoundTrip(ctx context.Context, payload []byte) (status int, body []byte, err error)
}

// TransportFunc is a function adapter for Transport
type TransportFunc func(ctx context.Context, payload []byte) (int, []byte, error)

func (f TransportFunc) RoundTrip(ctx context.Context, payload []byte) (int, []byte, error) {
	return f(ctx, payload)
}
