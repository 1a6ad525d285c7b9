// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"strings"

	"github.com/hoangtm/legalchat-tui/internal/session"
)

// =============================================================================
// PLAIN-TEXT EXPORTER
// =============================================================================

// textHeader is the fixed first line of every text export.
const textHeader = "AI Legal Assistant - Chat Export"

// TextExporter writes the classic plain-text layout: a fixed header, a rule
// of 50 equals signs, then one "User:"/"AI:" block per turn. The layout is
// fixed; Options are accepted only for interface symmetry.
type TextExporter struct{}

// NewTextExporter creates a new plain-text exporter.
func NewTextExporter(_ *Options) *TextExporter {
	return &TextExporter{}
}

// Export converts a session to the plain-text layout.
func (e *TextExporter) Export(sess *session.Session) ([]byte, error) {
	if sess == nil || sess.History.IsEmpty() {
		return nil, ErrEmptySession
	}

	var sb strings.Builder
	sb.WriteString(textHeader)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("=", 50))
	sb.WriteString("\n\n")

	for _, turn := range sess.History {
		sb.WriteString("User: ")
		sb.WriteString(turn.Question)
		sb.WriteByte('\n')
		sb.WriteString("AI: ")
		sb.WriteString(turn.Answer)
		sb.WriteString("\n\n")
	}

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for plain text.
func (e *TextExporter) FileExtension() string {
	return ".txt"
}

// MimeType returns the MIME type for plain text.
func (e *TextExporter) MimeType() string {
	return "text/plain"
}
