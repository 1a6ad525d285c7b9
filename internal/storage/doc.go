// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the key-value persistence layer for
// legalchat-tui.
//
// The KV interface is a deliberately small string-to-string store: the
// session collection, the max-tokens preference, the dark-mode flag, and the
// custom background all persist through it as opaque strings. Three backends
// implement it: a SQLite database (the default), one file per key, and an
// in-memory map for tests. The store enforces no size limits and no
// schema — callers own serialization and bounds such as the session cap.
package storage
