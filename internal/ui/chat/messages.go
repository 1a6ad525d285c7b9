// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main chat view for the legalchat TUI.
//
// This file defines all Bubble Tea message types used by the chat
// interface. Every streaming message carries the generation that produced
// it; the update loop drops messages whose generation is not current.
package chat

import "github.com/hoangtm/legalchat-tui/internal/config"

// =============================================================================
// STREAMING MESSAGES
// =============================================================================

// StreamStartMsg signals that a stream has been opened.
type StreamStartMsg struct {
	Gen int
}

// StreamTokenMsg delivers a decoded piece of the answer.
type StreamTokenMsg struct {
	Gen  int
	Text string
}

// StreamCompleteMsg signals a clean end of stream.
type StreamCompleteMsg struct {
	Gen int
}

// StreamErrorMsg signals a failed stream. The transcript gets the fallback
// answer; Err is kept for the status line.
type StreamErrorMsg struct {
	Gen int
	Err error
}

// =============================================================================
// UI MESSAGES
// =============================================================================

// statusExpiredMsg clears a temporary status message.
type statusExpiredMsg struct {
	id int
}

// copyResultMsg reports the outcome of a clipboard copy.
type copyResultMsg struct {
	err error
}

// exportResultMsg reports the outcome of an export.
type exportResultMsg struct {
	path string
	err  error
}

// ConfigReloadedMsg delivers a hot-reloaded configuration.
type ConfigReloadedMsg struct {
	Config *config.Config
}
