// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/hoangtm/legalchat-tui/internal/ui/styles"
)

// =============================================================================
// CLI STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Light.Primary).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.Light.TextDim)

	statsStyle = lipgloss.NewStyle().
			Foreground(styles.Light.TextDim).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Light.Danger).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(styles.Light.Primary).
			Bold(true)
)

// isInteractive reports whether stdout is a terminal. Plumbed output (pipes,
// redirects) gets no styling and no prompts.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// render applies a style only on interactive terminals.
func render(style lipgloss.Style, text string) string {
	if !isInteractive() {
		return text
	}
	return style.Render(text)
}
