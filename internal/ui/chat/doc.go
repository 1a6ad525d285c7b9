// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main chat view for the legalchat TUI.
//
// The view is a Bubble Tea model: a viewport with the conversation, a
// sidebar listing saved sessions, a single-line input, and a status bar.
// Answers stream in chunk by chunk; a generation counter ties stream
// messages to the question that started them, so chunks from an abandoned
// stream are dropped instead of leaking into the next answer.
package chat
