// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for
// legalchat.
//
// Configuration lives in TOML at ~/.legalchat/config.toml, with sensible
// defaults, environment variable overrides, and validation. A Watcher can
// reload the file on change so a running TUI picks up edits without a
// restart.
package config
