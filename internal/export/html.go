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
// ANSWER FORMATTING
// =============================================================================

// statsPrefix marks the timing summary line the backend appends to answers.
const statsPrefix = "tổng thời gian"

// Escape escapes the three characters with HTML meaning, ampersand first so
// already-escaped entities are not double-escaped in reverse. Quotes are
// deliberately left alone; answer text is never placed in attributes.
func Escape(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// IsStatsLine reports whether a line is the backend's timing summary. The
// check trims whitespace and lowercases first, so indented or capitalized
// variants still match.
func IsStatsLine(line string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), statsPrefix)
}

// FormatAnswerHTML converts an assistant answer to HTML: characters
// escaped, newlines become <br>, and timing summary lines are wrapped in a
// stats-line span. Answers are rendered verbatim otherwise — no Markdown.
func FormatAnswerHTML(text string) string {
	lines := strings.Split(Escape(text), "\n")
	for i, line := range lines {
		if IsStatsLine(line) {
			lines[i] = `<span class="stats-line">` + line + `</span>`
		}
	}
	return strings.Join(lines, "<br>")
}

// FormatQuestionHTML converts a user question to HTML: escaped with
// newlines as <br>. The stats-line wrapping applies to assistant output
// only, so a question that happens to start with the timing prefix stays
// plain.
func FormatQuestionHTML(text string) string {
	return strings.Join(strings.Split(Escape(text), "\n"), "<br>")
}

// =============================================================================
// HTML EXPORTER
// =============================================================================

// HTMLExporter exports sessions to a standalone HTML document with
// embedded CSS.
type HTMLExporter struct {
	options *Options
}

// NewHTMLExporter creates a new HTML exporter.
func NewHTMLExporter(opts *Options) *HTMLExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HTMLExporter{options: opts}
}

// Export converts a session to HTML.
func (e *HTMLExporter) Export(sess *session.Session) ([]byte, error) {
	if sess == nil || sess.History.IsEmpty() {
		return nil, ErrEmptySession
	}

	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"vi\">\n")
	sb.WriteString("<head>\n")
	sb.WriteString("    <meta charset=\"UTF-8\">\n")
	sb.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", Escape(sess.Title)))
	if !sess.Timestamp.IsZero() {
		sb.WriteString(fmt.Sprintf("    <meta name=\"date\" content=\"%s\">\n", sess.Timestamp.Format(time.RFC3339)))
	}
	sb.WriteString(e.getCSS())
	sb.WriteString("</head>\n")
	sb.WriteString(fmt.Sprintf("<body class=\"%s-theme\">\n", e.options.Theme))
	sb.WriteString("    <div class=\"container\">\n")

	if e.options.IncludeMetadata {
		sb.WriteString("        <header class=\"header\">\n")
		sb.WriteString(fmt.Sprintf("            <h1>%s</h1>\n", Escape(sess.Title)))
		sb.WriteString("            <div class=\"metadata\">\n")
		if !sess.Timestamp.IsZero() {
			sb.WriteString(fmt.Sprintf("                <span class=\"meta-item\">%s</span>\n",
				sess.Timestamp.Format("02/01/2006 15:04")))
		}
		sb.WriteString(fmt.Sprintf("                <span class=\"meta-item\">%d câu hỏi</span>\n", len(sess.History)))
		sb.WriteString("            </div>\n")
		sb.WriteString("        </header>\n")
	}

	sb.WriteString("        <main class=\"conversation\">\n")
	for i, turn := range sess.History {
		sb.WriteString("            <div class=\"message user\">\n")
		sb.WriteString(fmt.Sprintf("                <div class=\"bubble\">%s</div>\n", FormatQuestionHTML(turn.Question)))
		sb.WriteString("            </div>\n")
		sb.WriteString("            <div class=\"message ai\">\n")
		sb.WriteString(fmt.Sprintf("                <div class=\"bubble\">%s</div>\n", FormatAnswerHTML(turn.Answer)))
		if stars, ok := sess.Ratings[i]; ok {
			sb.WriteString(fmt.Sprintf("                <div class=\"rating\">%s</div>\n",
				strings.Repeat("★", stars)+strings.Repeat("☆", 5-stars)))
		}
		sb.WriteString("            </div>\n")
	}
	sb.WriteString("        </main>\n")

	sb.WriteString("    </div>\n")
	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for HTML.
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}

// MimeType returns the MIME type for HTML.
func (e *HTMLExporter) MimeType() string {
	return "text/html"
}

// getCSS returns the embedded stylesheet for both themes.
func (e *HTMLExporter) getCSS() string {
	return `    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, "Segoe UI", Roboto, sans-serif;
            line-height: 1.6;
            padding: 20px;
        }
        body.light-theme { background: #f5f5f5; color: #1a1a1a; }
        body.dark-theme { background: #1a1a2e; color: #e0e0e0; }
        .container { max-width: 800px; margin: 0 auto; }
        .header { margin-bottom: 24px; }
        .header h1 { font-size: 1.4em; margin-bottom: 8px; }
        .metadata { font-size: 0.85em; opacity: 0.7; }
        .meta-item { margin-right: 16px; }
        .message { margin-bottom: 16px; display: flex; flex-direction: column; }
        .message.user { align-items: flex-end; }
        .message.ai { align-items: flex-start; }
        .bubble {
            max-width: 80%;
            padding: 10px 14px;
            border-radius: 12px;
            white-space: normal;
        }
        .light-theme .message.user .bubble { background: #2563eb; color: #fff; }
        .light-theme .message.ai .bubble { background: #fff; border: 1px solid #ddd; }
        .dark-theme .message.user .bubble { background: #3b82f6; color: #fff; }
        .dark-theme .message.ai .bubble { background: #16213e; border: 1px solid #333; }
        .stats-line { font-style: italic; opacity: 0.75; font-size: 0.9em; }
        .rating { font-size: 0.85em; margin-top: 4px; color: #f59e0b; }
    </style>
`
}
