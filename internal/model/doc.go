// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the conversation data structures.
//
// A Transcript is an ordered list of Turns, where each Turn pairs a user
// question with the assistant's answer. At most the final Turn may have an
// empty answer (a question still being answered); every earlier Turn is
// complete. The Transcript is the single source of truth for a
// conversation — renderers read it, they are never read back.
package model
