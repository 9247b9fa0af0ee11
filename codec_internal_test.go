// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package btcrpc

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONCodecEncodeRequest(t *testing.T) {
	payload, err := JSONCodec{}.EncodeRequest("getblockhash", []any{uint32(7)})
	require.NoError(t, err)

	var envelope struct {
		Version string          `json:"jsonrpc"`
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params"`
		ID      json.RawMessage `json:"id"`
	}
	require.NoError(t, json.Unmarshal(payload, &envelope))
	assert.Equal(t, "2.0", envelope.Version)
	assert.Equal(t, "getblockhash", envelope.Method)
	assert.JSONEq(t, `[7]`, string(envelope.Params))
	assert.NotEmpty(t, envelope.ID)
}

func TestJSONCodecEncodeRequestWithoutParams(t *testing.T) {
	payload, err := JSONCodec{}.EncodeRequest("getblockcount", nil)
	require.NoError(t, err)

	var envelope struct {
		Params json.RawMessage `json:"params"`
	}
	require.NoError(t, json.Unmarshal(payload, &envelope))
	assert.JSONEq(t, `[]`, string(envelope.Params))
}

func TestJSONCodecDecodeResponse(t *testing.T) {
	var height uint32
	require.NoError(t, JSONCodec{}.DecodeResponse([]byte(`{"result":812345,"error":null,"id":42}`), &height))
	assert.Equal(t, uint32(812345), height)

	err := JSONCodec{}.DecodeResponse([]byte(`{"result":null,"error":{"code":-28,"message":"Loading wallet..."},"id":42}`), &height)
	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.True(t, rpcErr.IsBusy())
	assert.Equal(t, "rpc error -28: Loading wallet...", rpcErr.Error())
}

func TestBasicAuth(t *testing.T) {
	value, err := basicAuth("user", "p:a:ss")
	require.NoError(t, err)
	assert.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte("user:p:a:ss")), value)

	_, err = basicAuth("us:er", "pass")
	assert.ErrorIs(t, err, errInvalidCredentials)

	value, err = basicAuth("user", "pa\x7f\nss")
	require.NoError(t, err)
	assert.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte("user:pa\x7f\nss")), value)
}

func TestTransportErrorMessage(t *testing.T) {
	err := &TransportError{Method: "getblockcount", StatusCode: 401, Err: ErrUnexpectedStatus}
	assert.Equal(t, "getblockcount: http status 401: unexpected http status", err.Error())
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}
