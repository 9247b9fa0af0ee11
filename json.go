// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package btcrpc

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/http/httpguts"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 30 * time.Second
	// Verbose blocks can be large; anything beyond this is not a node reply.
	maxResponseSize = 64 * 1024 * 1024
)

var errInvalidCredentials = errors.New("invalid credentials")

// newHTTPClient creates the HTTP client shared by every call of one Client.
// It clones http.DefaultTransport unless a program has replaced it with a
// different RoundTripper.
func newHTTPClient(timeout time.Duration) *http.Client {
	var transport *http.Transport
	if t, ok := http.DefaultTransport.(*http.Transport); ok {
		transport = t.Clone()
	} else {
		transport = &http.Transport{
			Proxy:             http.ProxyFromEnvironment,
			ForceAttemptHTTP2: true,
		}
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// CleanlyCloseBody drains and closes an HTTP response body to prevent
// HTTP/2 GOAWAY errors caused by closing bodies with unread data.
// See: https://github.com/golang/go/issues/46071
func CleanlyCloseBody(body io.ReadCloser) error {
	if body == nil {
		return nil
	}
	_, _ = io.Copy(io.Discard, body)
	return body.Close()
}

// basicAuth builds the Authorization header value for username and password.
// Both are base64 encoded, so only a ':' in the username is ambiguous.
func basicAuth(username, password string) (string, error) {
	if strings.Contains(username, ":") {
		return "", fmt.Errorf("%w: username must not contain ':'", errInvalidCredentials)
	}
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password)), nil
}

// httpTransport posts envelopes to a fixed endpoint with a fixed set of
// headers. It is immutable after construction.
type httpTransport struct {
	endpoint string
	header   http.Header
	client   *http.Client
	limiter  *rate.Limiter
}

func newHTTPTransport(endpoint, authorization string, o *options) (*httpTransport, error) {
	header := make(http.Header, len(o.headers)+2)
	for name, values := range o.headers {
		if !httpguts.ValidHeaderFieldName(name) {
			return nil, fmt.Errorf("invalid header name %q", name)
		}
		for _, v := range values {
			if !httpguts.ValidHeaderFieldValue(v) {
				return nil, fmt.Errorf("invalid value for header %q", name)
			}
			header.Add(name, v)
		}
	}
	header.Set("Content-Type", "application/json")
	header.Set("Authorization", authorization)

	client := o.httpClient
	if client == nil {
		client = newHTTPClient(o.timeout)
	}

	t := &httpTransport{
		endpoint: endpoint,
		header:   header,
		client:   client,
	}
	if o.rateLimit > 0 {
		t.limiter = rate.NewLimiter(o.rateLimit, o.rateBurst)
	}
	return t, nil
}

func (t *httpTransport) RoundTrip(ctx context.Context, payload []byte) (int, []byte, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return 0, nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Header = t.header.Clone()

	resp, err := t.client.Do(request)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to issue request: %w", err)
	}
	defer CleanlyCloseBody(resp.Body)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(body) > maxResponseSize {
		return resp.StatusCode, nil, fmt.Errorf("response exceeds %d bytes", maxResponseSize)
	}
	return resp.StatusCode, body, nil
}
