// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"strconv"

	"github.com/hoangtm/legalchat-tui/internal/storage"
)

// Max-tokens preference. The backend accepts only these values; anything
// else is treated as unset and falls back to the default.

// MaxTokenOptions is the fixed option set for the max_tokens request field.
var MaxTokenOptions = []int{64, 128, 256, 512, 1024, 2048}

// DefaultMaxTokens is used when the preference is absent or invalid.
const DefaultMaxTokens = 256

// ValidMaxTokens reports whether v is in the option set.
func ValidMaxTokens(v int) bool {
	for _, opt := range MaxTokenOptions {
		if v == opt {
			return true
		}
	}
	return false
}

// MaxTokens returns the persisted preference. An absent, unparseable, or
// out-of-set value resets to DefaultMaxTokens and the default is written
// back so the stored state is valid again.
func (s *Store) MaxTokens() int {
	raw, ok, err := s.kv.Load(storage.KeyMaxTokens)
	if err == nil && ok {
		if v, convErr := strconv.Atoi(raw); convErr == nil && ValidMaxTokens(v) {
			return v
		}
	}
	s.kv.Save(storage.KeyMaxTokens, strconv.Itoa(DefaultMaxTokens))
	return DefaultMaxTokens
}

// SetMaxTokens persists v if it is in the option set, otherwise it persists
// the default. The effective value is returned.
func (s *Store) SetMaxTokens(v int) (int, error) {
	if !ValidMaxTokens(v) {
		v = DefaultMaxTokens
	}
	return v, s.kv.Save(storage.KeyMaxTokens, strconv.Itoa(v))
}

// DarkMode returns the persisted dark-mode flag, defaulting to false.
func (s *Store) DarkMode() bool {
	raw, ok, err := s.kv.Load(storage.KeyDarkMode)
	if err != nil || !ok {
		return false
	}
	v, err := strconv.ParseBool(raw)
	return err == nil && v
}

// SetDarkMode persists the dark-mode flag.
func (s *Store) SetDarkMode(on bool) error {
	return s.kv.Save(storage.KeyDarkMode, strconv.FormatBool(on))
}

// Background returns the stored custom background value, if any. The value
// is opaque to this program — the original client stored a data URL.
func (s *Store) Background() (string, bool) {
	raw, ok, err := s.kv.Load(storage.KeyBackground)
	if err != nil || !ok || raw == "" {
		return "", false
	}
	return raw, true
}

// SetBackground persists a custom background value; empty removes it.
func (s *Store) SetBackground(v string) error {
	if v == "" {
		return s.kv.Delete(storage.KeyBackground)
	}
	return s.kv.Save(storage.KeyBackground, v)
}
