// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hoangtm/legalchat-tui/internal/model"
	"github.com/hoangtm/legalchat-tui/internal/session"
)

func sampleSession() *session.Session {
	return &session.Session{
		ID:        "s1",
		Title:     "Điều 51 quy định gì?",
		Timestamp: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		History: model.Transcript{
			{Question: "Điều 51 quy định gì?", Answer: "Điều 51 quy định về...\nTổng thời gian: 3.2s"},
			{Question: "Còn Điều 52?", Answer: "Điều 52 nói về..."},
		},
		Ratings: map[int]int{0: 4},
	}
}

// =============================================================================
// ESCAPING AND ANSWER FORMATTING
// =============================================================================

func TestEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`<script>&"x"</script>`, `&lt;script&gt;&amp;"x"&lt;/script&gt;`},
		{"a & b", "a &amp; b"},
		{"1 < 2 > 0", "1 &lt; 2 &gt; 0"},
		{"&amp;", "&amp;amp;"}, // existing entities escape again, ampersand first
		{"không có gì", "không có gì"},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsStatsLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Tổng thời gian: 3.2s", true},
		{"  tổng thời gian: 3.2s  ", true},
		{"TỔNG THỜI GIAN xử lý", true},
		{"Thời gian: 3.2s", false},
		{"Điều 51 tổng thời gian", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsStatsLine(tt.line); got != tt.want {
			t.Errorf("IsStatsLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestFormatAnswerHTML(t *testing.T) {
	in := "Điều 51 quy định.\nChi tiết > 0.\nTổng thời gian: 3.2s"
	want := "Điều 51 quy định.<br>Chi tiết &gt; 0.<br>" +
		`<span class="stats-line">Tổng thời gian: 3.2s</span>`
	if got := FormatAnswerHTML(in); got != want {
		t.Errorf("FormatAnswerHTML:\n got %q\nwant %q", got, want)
	}
}

func TestFormatAnswerHTML_NoNewlines(t *testing.T) {
	if got := FormatAnswerHTML("một dòng"); got != "một dòng" {
		t.Errorf("got %q", got)
	}
}

func TestFormatQuestionHTML(t *testing.T) {
	in := "Tổng thời gian: bao lâu?\nVà chi tiết < 1?"
	want := "Tổng thời gian: bao lâu?<br>Và chi tiết &lt; 1?"
	if got := FormatQuestionHTML(in); got != want {
		t.Errorf("FormatQuestionHTML:\n got %q\nwant %q", got, want)
	}
}

// =============================================================================
// PLAIN TEXT
// =============================================================================

func TestTextExportLayout(t *testing.T) {
	content, err := NewTextExporter(nil).Export(sampleSession())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	want := "AI Legal Assistant - Chat Export\n" +
		strings.Repeat("=", 50) + "\n\n" +
		"User: Điều 51 quy định gì?\n" +
		"AI: Điều 51 quy định về...\nTổng thời gian: 3.2s\n\n" +
		"User: Còn Điều 52?\n" +
		"AI: Điều 52 nói về...\n\n"
	if string(content) != want {
		t.Errorf("text export:\n got %q\nwant %q", content, want)
	}
}

func TestTextExportEmptySession(t *testing.T) {
	_, err := NewTextExporter(nil).Export(&session.Session{ID: "x"})
	if !errors.Is(err, ErrEmptySession) {
		t.Errorf("err = %v, want ErrEmptySession", err)
	}
}

// =============================================================================
// HTML AND MARKDOWN
// =============================================================================

func TestHTMLExportContainsEscapedContent(t *testing.T) {
	sess := sampleSession()
	sess.History[0].Answer = "x < y & <b>bold</b>\nTổng thời gian: 1s"
	content, err := NewHTMLExporter(nil).Export(sess)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	out := string(content)
	if strings.Contains(out, "<b>bold</b>") {
		t.Error("answer markup not escaped")
	}
	if !strings.Contains(out, "x &lt; y &amp; &lt;b&gt;bold&lt;/b&gt;") {
		t.Error("escaped answer text missing")
	}
	if !strings.Contains(out, `<span class="stats-line">`) {
		t.Error("stats-line span missing")
	}
	if !strings.Contains(out, "★★★★☆") {
		t.Error("rating stars missing")
	}
}

func TestHTMLExportQuestionNeverGetsStatsSpan(t *testing.T) {
	sess := sampleSession()
	sess.History = model.Transcript{
		{Question: "Tổng thời gian: bao lâu?", Answer: "Khoảng một giây."},
	}
	content, err := NewHTMLExporter(nil).Export(sess)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if strings.Contains(string(content), `<span class="stats-line">`) {
		t.Error("user question wrapped as a stats line")
	}
}

func TestHTMLExportTheme(t *testing.T) {
	opts := DefaultOptions()
	opts.Theme = "dark"
	content, err := NewHTMLExporter(opts).Export(sampleSession())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(string(content), `<body class="dark-theme">`) {
		t.Error("dark theme class missing")
	}
}

func TestMarkdownExportFencesAnswers(t *testing.T) {
	sess := sampleSession()
	sess.History[1].Answer = "ví dụ có ``` bên trong"
	content, err := NewMarkdownExporter(nil).Export(sess)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	out := string(content)
	if !strings.Contains(out, "````\nví dụ có ``` bên trong\n````") {
		t.Error("backtick run not fenced with a longer marker")
	}
	if !strings.Contains(out, "Đánh giá: 4/5") {
		t.Error("rating line missing")
	}
}

// =============================================================================
// FILE OUTPUT
// =============================================================================

func TestFilename(t *testing.T) {
	now := time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC)
	if got := Filename(NewTextExporter(nil), now); got != "chat-export-2025-03-14.txt" {
		t.Errorf("Filename = %q", got)
	}
	if got := Filename(NewHTMLExporter(nil), now); got != "chat-export-2025-03-14.html" {
		t.Errorf("Filename = %q", got)
	}
}

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()
	opts := &Options{OutputDir: dir}
	path, err := ExportToFile(sampleSession(), NewTextExporter(opts), opts)
	if err != nil {
		t.Fatalf("ExportToFile: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("path = %q, want inside %q", path, dir)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasPrefix(string(data), "AI Legal Assistant - Chat Export\n") {
		t.Errorf("unexpected file head: %q", data[:40])
	}
}

func TestByFormat(t *testing.T) {
	for _, f := range []string{"text", "txt", "", "html", "markdown", "md"} {
		if _, err := ByFormat(f, nil); err != nil {
			t.Errorf("ByFormat(%q): %v", f, err)
		}
	}
	if _, err := ByFormat("pdf", nil); err == nil {
		t.Error("ByFormat(pdf) should fail")
	}
}
