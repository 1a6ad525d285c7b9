// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

// Well-known keys. KeySavedChats and KeyMaxTokens predate this program (the
// original web client stored them in browser localStorage), so their exact
// spelling is part of the persisted format.
const (
	// KeySavedChats holds the JSON-serialized session collection.
	KeySavedChats = "savedChats"

	// KeyMaxTokens holds the max-tokens preference as a stringified integer.
	KeyMaxTokens = "legal-ai-max-tokens"

	// KeyDarkMode holds the dark-mode flag as "true"/"false".
	KeyDarkMode = "darkMode"

	// KeyBackground holds the custom background value as an opaque string.
	KeyBackground = "customBackground"
)

// KV is the storage adapter: a synchronous string-keyed store.
//
// Load returns ok=false when the key has never been written. Save overwrites
// unconditionally. Errors from the underlying store (disk full, closed
// database) propagate to the caller unchanged; this layer never swallows
// them, since silently dropping chat history is the one failure users would
// actually notice.
type KV interface {
	Load(key string) (value string, ok bool, err error)
	Save(key, value string) error
	Delete(key string) error
	Close() error
}
