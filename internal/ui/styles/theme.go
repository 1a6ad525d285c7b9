// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
type Theme struct {
	IsDark       bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// SIDEBAR (SAVED CHATS) STYLES
	// ==========================================================================

	Sidebar        lipgloss.Style
	SidebarTitle   lipgloss.Style
	SidebarItem    lipgloss.Style
	SidebarActive  lipgloss.Style
	SidebarTime    lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble lipgloss.Style
	AIBubble   lipgloss.Style
	StatsLine  lipgloss.Style
	Rating     lipgloss.Style
	ErrorText  lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR AND HELP STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	StatusKey    lipgloss.Style
	StatusDesc   lipgloss.Style
	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style

	// ==========================================================================
	// WELCOME SCREEN STYLES
	// ==========================================================================

	WelcomeTitle      lipgloss.Style
	WelcomeSubtitle   lipgloss.Style
	WelcomeSuggestion lipgloss.Style
}

// NewTheme creates a theme from the given palette.
func NewTheme(dark bool) *Theme {
	t := &Theme{
		IsDark:       dark,
		ColorProfile: termenv.ColorProfile(),
	}
	t.initStyles(t.palette())
	return t
}

// NewThemeAuto creates a theme following the terminal background.
func NewThemeAuto() *Theme {
	return NewTheme(termenv.HasDarkBackground())
}

// SetDark switches the palette in place. Callers re-render afterwards.
func (t *Theme) SetDark(dark bool) {
	t.IsDark = dark
	t.initStyles(t.palette())
}

func (t *Theme) palette() Palette {
	if t.IsDark {
		return Dark
	}
	return Light
}

// initStyles initializes all the lip gloss styles from a palette.
func (t *Theme) initStyles(p Palette) {
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Overlay).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(p.TextDim).
		Italic(true)

	// Sidebar
	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(p.Overlay).
		PaddingRight(1)

	t.SidebarTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextDim).
		Underline(true)

	t.SidebarItem = lipgloss.NewStyle().
		Foreground(p.Text)

	t.SidebarActive = lipgloss.NewStyle().
		Foreground(p.Inverse).
		Background(p.Primary).
		Bold(true)

	t.SidebarTime = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(p.UserBubbleFg).
		Background(p.UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 2).
		MarginLeft(4)

	t.AIBubble = lipgloss.NewStyle().
		Foreground(p.AIBubbleFg).
		Background(p.AIBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Overlay).
		Padding(0, 2).
		MarginRight(4)

	t.StatsLine = lipgloss.NewStyle().
		Foreground(p.StatsFg).
		Italic(true)

	t.Rating = lipgloss.NewStyle().
		Foreground(p.StarFg)

	t.ErrorText = lipgloss.NewStyle().
		Foreground(p.Danger)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(p.Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(p.SurfaceDim).
		Foreground(p.TextDim).
		Padding(0, 1)

	t.StatusKey = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	t.StatusDesc = lipgloss.NewStyle().
		Foreground(p.TextDim)

	t.Spinner = lipgloss.NewStyle().
		Foreground(p.Primary)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(p.TextDim).
		Italic(true)

	// Welcome screen
	t.WelcomeTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		Align(lipgloss.Center)

	t.WelcomeSubtitle = lipgloss.NewStyle().
		Foreground(p.TextDim).
		Align(lipgloss.Center)

	t.WelcomeSuggestion = lipgloss.NewStyle().
		Foreground(p.Text).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Overlay).
		Padding(0, 1)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 70 columns, sidebar hidden
	LayoutWide                     // sidebar visible
)

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 70 {
		return LayoutNarrow
	}
	return LayoutWide
}
