// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import "testing"

func TestDecoder_PassThroughASCII(t *testing.T) {
	var d Decoder
	if got := d.Write([]byte("hello")); got != "hello" {
		t.Errorf("Write = %q, want %q", got, "hello")
	}
	if got := d.Flush(); got != "" {
		t.Errorf("Flush = %q, want empty", got)
	}
}

func TestDecoder_SplitCharacter(t *testing.T) {
	// "ầ" is three bytes: E1 BA A7. Split it across every boundary.
	full := []byte("Phần")
	for split := 1; split < len(full); split++ {
		var d Decoder
		out := d.Write(full[:split]) + d.Write(full[split:]) + d.Flush()
		if out != "Phần" {
			t.Errorf("split at %d: got %q, want %q", split, out, "Phần")
		}
	}
}

func TestDecoder_OneByteAtATime(t *testing.T) {
	var d Decoder
	var out string
	for _, b := range []byte("Tổng thời gian: 3s") {
		out += d.Write([]byte{b})
	}
	out += d.Flush()
	if out != "Tổng thời gian: 3s" {
		t.Errorf("got %q", out)
	}
}

func TestDecoder_HoldsIncompleteTail(t *testing.T) {
	var d Decoder
	// First two bytes of a three-byte character: nothing to emit yet.
	if got := d.Write([]byte{0xE1, 0xBA}); got != "" {
		t.Errorf("incomplete character emitted early: %q", got)
	}
	if got := d.Write([]byte{0xA7}); got != "ầ" {
		t.Errorf("Write = %q, want %q", got, "ầ")
	}
}

func TestDecoder_FlushTruncatedTail(t *testing.T) {
	var d Decoder
	d.Write([]byte{0xE1, 0xBA}) // stream ends mid-character
	if got := d.Flush(); got != string([]byte{0xE1, 0xBA}) {
		t.Errorf("Flush = %q, want the raw tail", got)
	}
	if got := d.Flush(); got != "" {
		t.Errorf("second Flush = %q, want empty", got)
	}
}
