// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// readBufferSize is the per-read buffer for the response body. Chunks from
// the backend are typically a few tokens, far smaller than this.
const readBufferSize = 4096

// StreamFunc receives each decoded piece of the answer, in arrival order.
// The reconciler does not read the next chunk until the callback returns,
// so handlers never observe reordering.
type StreamFunc func(text string)

// Stream sends the chat request and feeds the decoded answer to fn chunk by
// chunk. It returns nil after a clean end of stream. A non-2xx status comes
// back as *APIError before fn is ever called; a transport failure
// mid-stream comes back as *StreamError carrying the partial text.
func (c *Client) Stream(ctx context.Context, req ChatRequest, fn StreamFunc) error {
	if req.ChatHistory == nil {
		// The backend expects an array; never send null.
		req.ChatHistory = [][2]string{}
	}
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("ngrok-skip-browser-warning", "1")

	start := time.Now()
	log.Printf("api: POST %s (history=%d turns)", chatPath, len(req.ChatHistory))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Uniform failure for every non-2xx status.
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("api: POST %s -> %d (%v)", chatPath, resp.StatusCode, time.Since(start))
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(errBody))}
	}

	err = c.consume(ctx, resp.Body, fn)
	log.Printf("api: POST %s -> %d done (%v)", chatPath, resp.StatusCode, time.Since(start))
	return err
}

// consume reads the body to EOF, decoding as it goes. Reads are strictly
// sequential; the decoder carries split characters across them.
func (c *Client) consume(ctx context.Context, body io.Reader, fn StreamFunc) error {
	var (
		dec      Decoder
		received strings.Builder
		buf      = make([]byte, readBufferSize)
	)

	for {
		select {
		case <-ctx.Done():
			return &StreamError{Partial: received.String(), Err: ctx.Err()}
		default:
		}

		n, err := body.Read(buf)
		if n > 0 {
			if text := dec.Write(buf[:n]); text != "" {
				received.WriteString(text)
				fn(text)
			}
		}
		if err == io.EOF {
			if tail := dec.Flush(); tail != "" {
				received.WriteString(tail)
				fn(tail)
			}
			return nil
		}
		if err != nil {
			return &StreamError{Partial: received.String(), Err: err}
		}
	}
}

// StreamAccumulate streams the answer and returns it whole. On failure the
// text received so far is returned alongside the error.
func (c *Client) StreamAccumulate(ctx context.Context, req ChatRequest) (string, error) {
	var sb strings.Builder
	err := c.Stream(ctx, req, func(text string) {
		sb.WriteString(text)
	})
	return sb.String(), err
}

// =============================================================================
// CHANNEL DELIVERY
// =============================================================================

// Event is one step of a streamed answer as delivered on a channel. Exactly
// one of the terminal fields is set on the final event: Done for a clean
// finish, Err for a failure.
type Event struct {
	Text string
	Done bool
	Err  error
}

// StreamChan runs Stream in a goroutine and delivers events on the returned
// channel. The channel is closed after the terminal event. Consumers that
// read one event at a time (a Bubble Tea wait-loop) get the same strict
// ordering as the callback form.
func (c *Client) StreamChan(ctx context.Context, req ChatRequest) <-chan Event {
	events := make(chan Event, 64)

	go func() {
		defer close(events)

		err := c.Stream(ctx, req, func(text string) {
			select {
			case events <- Event{Text: text}:
			case <-ctx.Done():
			}
		})
		final := Event{Done: true}
		if err != nil {
			final = Event{Err: err}
		}
		select {
		case events <- final:
		case <-ctx.Done():
		}
	}()

	return events
}
