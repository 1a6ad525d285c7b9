// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api is the client for the Legal AI Assistant backend.
//
// The backend exposes a single POST /chat endpoint that takes the question
// plus the conversation so far and streams the answer back as a chunked
// plain-text body — not SSE, not JSON, just text written as the model
// produces it. This package owns the request shape, the incremental UTF-8
// decoding of the stream (chunk boundaries can split a character), and the
// delivery of decoded text to the caller in strict arrival order.
package api
