// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// DefaultBaseURL points at a locally running backend, the development
	// setup the original client assumed when no override was given.
	DefaultBaseURL = "http://localhost:8000"

	// EnvBaseURL overrides the backend address from the environment.
	EnvBaseURL = "LEGALCHAT_API_URL"

	// chatPath is the streaming answer endpoint.
	chatPath = "/chat"

	// connectTimeout bounds dialing and TLS setup. The stream itself has no
	// timeout: answers take as long as the model takes, and cancellation is
	// the caller's context.
	connectTimeout = 10 * time.Second
)

// FallbackAnswer is the fixed assistant message shown when the stream
// fails. The partially received text is discarded from the transcript; the
// StreamError still carries it for callers that want to log it.
const FallbackAnswer = "Lỗi khi nhận phản hồi từ máy chủ."

// streamingClient is shared by all Clients: pooled connections, no
// whole-request timeout.
var streamingClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: connectTimeout,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	},
}

// ResolveBaseURL picks the backend address: an explicit override wins, then
// the LEGALCHAT_API_URL environment variable, then the configured value,
// then the development default. Trailing slashes are stripped so path
// joining stays predictable.
func ResolveBaseURL(override, configured string) string {
	for _, candidate := range []string{override, os.Getenv(EnvBaseURL), configured} {
		if candidate != "" {
			return strings.TrimSuffix(candidate, "/")
		}
	}
	return DefaultBaseURL
}

// Client talks to one backend instance. It carries no session state; the
// conversation travels in every request.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: streamingClient,
	}
}

// BaseURL returns the resolved backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ChatRequest is the POST /chat payload. ChatHistory is the full transcript
// as ordered [question, answer] pairs; MaxTokens is included only when the
// preference holds a value from the fixed option set.
type ChatRequest struct {
	Question    string      `json:"question"`
	ChatHistory [][2]string `json:"chat_history"`
	MaxTokens   int         `json:"max_tokens,omitempty"`
}

// APIError is a non-2xx response from the backend. All statuses are treated
// uniformly as failure — the backend does not distinguish error classes.
type APIError struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("backend returned HTTP %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("backend returned HTTP %d", e.Status)
}

// StreamError is a transport failure after streaming began. Partial holds
// whatever text had been decoded before the failure.
type StreamError struct {
	Partial string
	Err     error
}

// Error implements the error interface.
func (e *StreamError) Error() string {
	if e.Partial != "" {
		return fmt.Sprintf("stream failed after %d chars: %v", len(e.Partial), e.Err)
	}
	return fmt.Sprintf("stream failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *StreamError) Unwrap() error {
	return e.Err
}
