// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import "unicode/utf8"

// Decoder turns a byte stream into text incrementally. The backend writes
// UTF-8, but HTTP chunk boundaries fall anywhere — including inside a
// multi-byte character, which happens constantly with Vietnamese text. The
// decoder holds back a trailing partial character until the bytes that
// complete it arrive, so callers only ever see whole characters.
type Decoder struct {
	pending []byte
}

// Write consumes the next chunk and returns the decoded text that is
// complete so far. Any trailing bytes that could still be the start of a
// character are carried into the next call.
func (d *Decoder) Write(p []byte) string {
	if len(d.pending) > 0 {
		p = append(d.pending, p...)
		d.pending = nil
	}

	cut := len(p)
	// A UTF-8 character is at most utf8.UTFMax bytes; only the tail can be
	// incomplete.
	for i := len(p) - 1; i >= 0 && len(p)-i < utf8.UTFMax; i-- {
		if utf8.RuneStart(p[i]) {
			if !utf8.FullRune(p[i:]) {
				cut = i
			}
			break
		}
	}

	if cut < len(p) {
		d.pending = append(d.pending, p[cut:]...)
	}
	return string(p[:cut])
}

// Flush returns any bytes still held back. Called at end of stream; a
// truncated final character comes out as-is rather than being dropped.
func (d *Decoder) Flush() string {
	out := string(d.pending)
	d.pending = nil
	return out
}
