// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the saved-session collection and the current
// transcript.
//
// The Store is the only writer of conversation state: the UI mutates
// transcripts through it, the API layer feeds streamed answers into it, and
// renderers read from it. Persistence goes through an injected storage.KV,
// so tests run against an in-memory store.
//
// The collection is bounded to MaxSessions entries, newest first. Saving an
// existing session updates it in place without reordering; saving a new one
// prepends it and evicts from the tail on overflow.
package session
