// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

/*
Package apiclient is the official Go client for the Hirelane API.

It manages the dual-token session transparently:

  - The access token lives only in client memory and is attached as a
    Bearer header to every request.
  - The refresh token lives in the cookie jar, exactly as a browser would
    hold it, and is never inspected by this package.

When a request fails with 401 while a session is held, the client refreshes
the access token once and retries the original request once. Concurrent
refreshes are coalesced: whichever goroutine wins performs the round-trip,
the rest reuse its result.
*/
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"
)

// defaultTimeout bounds each HTTP round-trip when the caller's context
// carries no deadline of its own.
const defaultTimeout = 30 * time.Second

// # Client Definition

// Client is a session-aware HTTP client for the Hirelane API.
//
// The zero value is not usable; construct with [New]. All methods are safe
// for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client

	// mu guards accessToken. It is also held across the refresh round-trip,
	// which is what coalesces concurrent refresh attempts.
	mu          sync.Mutex
	accessToken string
}

// New constructs a [Client] for the API at baseURL (e.g. "http://localhost:8080").
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("apiclient: failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: defaultTimeout,
		},
	}, nil
}

// HasSession reports whether the client currently holds an access token.
func (client *Client) HasSession() bool {
	client.mu.Lock()
	defer client.mu.Unlock()
	return client.accessToken != ""
}

// token returns the current access token, or "" when logged out.
func (client *Client) token() string {
	client.mu.Lock()
	defer client.mu.Unlock()
	return client.accessToken
}

// setToken replaces the in-memory access token.
func (client *Client) setToken(token string) {
	client.mu.Lock()
	defer client.mu.Unlock()
	client.accessToken = token
}

// # Error Type

// APIError is a non-2xx response decoded from the API's error envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface.
func (apiError *APIError) Error() string {
	if apiError.Message != "" {
		return fmt.Sprintf("apiclient: %d %s", apiError.StatusCode, apiError.Message)
	}
	return fmt.Sprintf("apiclient: unexpected status %d", apiError.StatusCode)
}

// IsUnauthorized reports whether err is an [APIError] with status 401.
func IsUnauthorized(err error) bool {
	apiError, ok := err.(*APIError)
	return ok && apiError.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is an [APIError] with status 404.
func IsNotFound(err error) bool {
	apiError, ok := err.(*APIError)
	return ok && apiError.StatusCode == http.StatusNotFound
}

// # Transport Core

/*
do executes one API call with automatic session recovery.

Description: Sends the request with the current Bearer token. If the server
answers 401 and a session is held, the access token is refreshed (once) and
the request replayed (once). A second 401 is surfaced to the caller; a failed
refresh — rejected or unreachable — surfaces the original 401 as well.

Parameters:
  - context: context.Context
  - method: string (HTTP verb)
  - path: string (e.g. "/api/jobs")
  - body: any (JSON-marshalled when non-nil)
  - out: any (response "data" destination, may be nil)
  - meta: *PageMeta (filled on paginated responses, may be nil)

Returns:
  - error: *APIError for non-2xx responses, transport or decoding errors otherwise
*/
func (client *Client) do(context context.Context, method, path string, body any, out any, meta *PageMeta) error {

	// Marshal once so the payload can be replayed after a refresh.
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: failed to encode request body: %w", err)
		}
		payload = encoded
	}

	token := client.token()

	statusCode, responseBody, err := client.send(context, method, path, payload, token)
	if err != nil {
		return err
	}

	// One refresh-and-retry cycle, only when a session was in play.
	if statusCode == http.StatusUnauthorized && token != "" {
		freshToken, refreshErr := client.refreshAccessToken(context, token)
		if refreshErr != nil {
			// The session is unrecoverable: drop the token so the caller sees
			// a clean logged-out state, and surface the ORIGINAL request's
			// 401 — not the refresh call's failure. IsUnauthorized must hold
			// even when the refresh round-trip died at the transport level.
			client.setToken("")
			return decodeResponse(statusCode, responseBody, out, meta)
		}

		statusCode, responseBody, err = client.send(context, method, path, payload, freshToken)
		if err != nil {
			return err
		}
	}

	return decodeResponse(statusCode, responseBody, out, meta)
}

// send performs a single HTTP round-trip and slurps the response body.
func (client *Client) send(context context.Context, method, path string, payload []byte, token string) (int, []byte, error) {

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(context, method, client.baseURL+path, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("apiclient: failed to build request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return 0, nil, fmt.Errorf("apiclient: request failed: %w", err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("apiclient: failed to read response: %w", err)
	}

	return response.StatusCode, responseBody, nil
}

/*
refreshAccessToken obtains a fresh access token via the refresh cookie.

Description: The mutex is held for the whole round-trip. A goroutine that
blocked here while another was refreshing finds the token already changed
from its stale value and returns it without a second round-trip.

Parameters:
  - context: context.Context
  - staleToken: string (the token the caller saw fail)

Returns:
  - string: A valid access token
  - error: *APIError when the refresh token itself is rejected
*/
func (client *Client) refreshAccessToken(context context.Context, staleToken string) (string, error) {
	client.mu.Lock()
	defer client.mu.Unlock()

	// Coalesced: someone else already swapped the token while we waited.
	if client.accessToken != "" && client.accessToken != staleToken {
		return client.accessToken, nil
	}

	statusCode, responseBody, err := client.sendLocked(context, http.MethodPost, "/api/auth/refresh")
	if err != nil {
		return "", err
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := decodeResponse(statusCode, responseBody, &result, nil); err != nil {
		return "", err
	}

	client.accessToken = result.AccessToken
	return client.accessToken, nil
}

// sendLocked is a bodyless, tokenless round-trip used under the session mutex.
func (client *Client) sendLocked(context context.Context, method, path string) (int, []byte, error) {

	request, err := http.NewRequestWithContext(context, method, client.baseURL+path, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("apiclient: failed to build request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return 0, nil, fmt.Errorf("apiclient: request failed: %w", err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("apiclient: failed to read response: %w", err)
	}

	return response.StatusCode, responseBody, nil
}

// # Envelope Decoding

// successEnvelope mirrors the API's success wrapper.
type successEnvelope struct {
	Data json.RawMessage `json:"data"`
	Meta json.RawMessage `json:"meta"`
}

// errorEnvelope mirrors the API's error wrapper.
type errorEnvelope struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// decodeResponse maps a raw response onto out and meta, or onto an [APIError].
func decodeResponse(statusCode int, responseBody []byte, out any, meta *PageMeta) error {

	if statusCode < 200 || statusCode > 299 {
		apiError := &APIError{StatusCode: statusCode}
		var envelope errorEnvelope
		if err := json.Unmarshal(responseBody, &envelope); err == nil {
			apiError.Message = envelope.Message
			apiError.Code = envelope.Code
		}
		return apiError
	}

	if out == nil {
		return nil
	}

	var envelope successEnvelope
	if err := json.Unmarshal(responseBody, &envelope); err != nil {
		return fmt.Errorf("apiclient: failed to decode response envelope: %w", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("apiclient: failed to decode response data: %w", err)
	}
	if meta != nil && envelope.Meta != nil {
		if err := json.Unmarshal(envelope.Meta, meta); err != nil {
			return fmt.Errorf("apiclient: failed to decode response meta: %w", err)
		}
	}

	return nil
}
