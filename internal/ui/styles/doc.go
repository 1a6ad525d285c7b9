// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the legalchat TUI.
//
// The theme is built from one of two explicit palettes, light or dark,
// mirroring the persisted dark-mode preference. "auto" picks a palette
// from the terminal background via termenv.
package styles
