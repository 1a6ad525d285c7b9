// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across legalchat-tui:
// crash-safe file writes and rune-aware string truncation.
package util
