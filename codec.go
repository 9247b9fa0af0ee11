// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package btcrpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	rpc "github.com/gorilla/rpc/v2/json2"
)

// Codec builds request envelopes and decodes response bodies.
type Codec interface {
	// EncodeRequest returns the envelope for method with positional params.
	EncodeRequest(method string, params []any) ([]byte, error)
	// DecodeResponse decodes body into reply. It returns an *RPCError when
	// the body is a well-formed error response.
	DecodeResponse(body []byte, reply any) error
}

// JSONCodec is the JSON-RPC envelope codec.
type JSONCodec struct{}

var defaultCodec Codec = JSONCodec{}

func (JSONCodec) EncodeRequest(method string, params []any) ([]byte, error) {
	if params == nil {
		params = []any{}
	}
	return rpc.EncodeClientRequest(method, params)
}

func (JSONCodec) DecodeResponse(body []byte, reply any) error {
	err := rpc.DecodeClientResponse(bytes.NewReader(body), reply)
	if err == nil {
		return nil
	}

	var jsonErr *rpc.Error
	switch {
	case errors.As(err, &jsonErr):
		if !hasErrorCode(body) {
			return fmt.Errorf("%w: invalid error object", ErrMalformedResponse)
		}
		return &RPCError{Code: int(jsonErr.Code), Message: jsonErr.Message}
	case errors.Is(err, rpc.ErrNullResult):
		if !nullable(reply) {
			return ErrNullResult
		}
		if err := json.Unmarshal([]byte("null"), reply); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
}

// nullable reports whether reply points to a value that can represent a
// JSON null, such as json.RawMessage or a pointer.
func nullable(reply any) bool {
	v := reflect.ValueOf(reply)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return false
	}
	switch v.Elem().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return true
	default:
		return false
	}
}

// hasErrorCode reports whether the error member of body is an object with a
// numeric code.
func hasErrorCode(body []byte) bool {
	var resp struct {
		Error *struct {
			Code *int `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return false
	}
	return resp.Error != nil && resp.Error.Code != nil
}
