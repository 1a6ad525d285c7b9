// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/hoangtm/legalchat-tui/internal/session"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports sessions to Markdown. Answers are emitted inside
// fenced blocks so the text stays verbatim — the backend's output is plain
// text, and rendering it as Markdown would mangle underscores and asterisks
// in legal citations.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// Export converts a session to Markdown.
func (e *MarkdownExporter) Export(sess *session.Session) ([]byte, error) {
	if sess == nil || sess.History.IsEmpty() {
		return nil, ErrEmptySession
	}

	var sb strings.Builder

	if e.options.IncludeMetadata {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("title: %q\n", sess.Title))
		if !sess.Timestamp.IsZero() {
			sb.WriteString(fmt.Sprintf("date: %s\n", sess.Timestamp.Format(time.RFC3339)))
		}
		sb.WriteString(fmt.Sprintf("questions: %d\n", len(sess.History)))
		sb.WriteString(fmt.Sprintf("exported: %s\n", time.Now().Format(time.RFC3339)))
		sb.WriteString("---\n\n")
	}

	sb.WriteString(fmt.Sprintf("# %s\n\n", sess.Title))

	for i, turn := range sess.History {
		sb.WriteString(fmt.Sprintf("## Câu hỏi %d\n\n", i+1))
		sb.WriteString("**User:**\n\n")
		sb.WriteString(fence(turn.Question))
		sb.WriteString("\n**AI:**\n\n")
		sb.WriteString(fence(turn.Answer))
		if stars, ok := sess.Ratings[i]; ok {
			sb.WriteString(fmt.Sprintf("\nĐánh giá: %d/5\n", stars))
		}
		if i < len(sess.History)-1 {
			sb.WriteString("\n---\n\n")
		}
	}

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns the MIME type for Markdown.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}

// fence wraps text in a code fence long enough to contain any backtick runs
// in the text itself.
func fence(text string) string {
	marker := "```"
	for strings.Contains(text, marker) {
		marker += "`"
	}
	return fmt.Sprintf("%s\n%s\n%s\n", marker, text, marker)
}
