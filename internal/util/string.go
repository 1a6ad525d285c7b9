// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

// Rune-aware truncation. Session titles and previews routinely contain
// Vietnamese text, so byte-based slicing would cut multi-byte characters
// in half.

// TruncateRunes shortens s to at most max runes, appending "..." when
// anything was cut off.
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// FirstLine returns everything before the first newline in s.
func FirstLine(s string) string {
	for i, r := range s {
		if r == '\n' || r == '\r' {
			return s[:i]
		}
	}
	return s
}

// RuneLen counts the characters in s, not the bytes.
func RuneLen(s string) int {
	return len([]rune(s))
}
