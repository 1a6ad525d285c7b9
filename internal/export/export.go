// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/hoangtm/legalchat-tui/internal/session"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter renders one chat session to a target format.
type Exporter interface {
	// Export converts a session to the target format and returns the content.
	Export(sess *session.Session) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".txt", ".html").
	FileExtension() string

	// MimeType returns the MIME type for the exported format.
	MimeType() string
}

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where files will be saved.
	// Default: current working directory
	OutputDir string

	// OpenAfterExport opens the file in the default application.
	OpenAfterExport bool

	// IncludeMetadata includes a metadata header (title, timestamp, ratings)
	// in formats that support one. The plain-text layout is fixed and
	// ignores this.
	IncludeMetadata bool

	// Theme for HTML export ("light" or "dark").
	// Default: "light"
	Theme string
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:       ".",
		OpenAfterExport: false,
		IncludeMetadata: true,
		Theme:           "light",
	}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ErrEmptySession is returned when the session has no turns to export.
var ErrEmptySession = fmt.Errorf("no conversation to export")

// Filename returns the export file name for today: chat-export-YYYY-MM-DD
// plus the exporter's extension.
func Filename(exporter Exporter, now time.Time) string {
	return fmt.Sprintf("chat-export-%s%s", now.Format("2006-01-02"), exporter.FileExtension())
}

// ExportToFile exports a session using the given exporter and writes it
// under opts.OutputDir. Returns the output file path.
func ExportToFile(sess *session.Session, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	content, err := exporter.Export(sess)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	outputPath := filepath.Join(opts.OutputDir, Filename(exporter, time.Now()))
	if err := os.WriteFile(outputPath, content, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	if opts.OpenAfterExport {
		if err := openFile(outputPath); err != nil {
			// Non-fatal, the file was still created.
			fmt.Printf("Warning: could not open file: %v\n", err)
		}
	}

	return outputPath, nil
}

// ExportText exports to the plain-text format.
func ExportText(sess *session.Session, opts *Options) (string, error) {
	return ExportToFile(sess, NewTextExporter(opts), opts)
}

// ExportHTML exports to HTML format.
func ExportHTML(sess *session.Session, opts *Options) (string, error) {
	return ExportToFile(sess, NewHTMLExporter(opts), opts)
}

// ExportMarkdown exports to Markdown format.
func ExportMarkdown(sess *session.Session, opts *Options) (string, error) {
	return ExportToFile(sess, NewMarkdownExporter(opts), opts)
}

// ByFormat returns the exporter for a format name ("text", "html",
// "markdown" / "md").
func ByFormat(format string, opts *Options) (Exporter, error) {
	switch format {
	case "text", "txt", "":
		return NewTextExporter(opts), nil
	case "html":
		return NewHTMLExporter(opts), nil
	case "markdown", "md":
		return NewMarkdownExporter(opts), nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// openFile opens a file in the default application for the OS.
func openFile(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", `""`, path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
