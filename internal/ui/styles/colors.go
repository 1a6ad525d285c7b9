// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// Palette is one concrete color set. Unlike adaptive colors, a palette is
// chosen explicitly so the in-app dark-mode toggle works even when the
// terminal background says otherwise.
type Palette struct {
	// Accent colors
	Primary     lipgloss.Color // brand blue, user messages, highlights
	PrimaryDeep lipgloss.Color
	Success     lipgloss.Color
	Warning     lipgloss.Color
	Danger      lipgloss.Color

	// Surfaces
	Surface    lipgloss.Color
	SurfaceDim lipgloss.Color
	Overlay    lipgloss.Color

	// Text
	Text      lipgloss.Color
	TextDim   lipgloss.Color
	TextMuted lipgloss.Color
	Inverse   lipgloss.Color

	// Message bubbles
	UserBubbleBg lipgloss.Color
	UserBubbleFg lipgloss.Color
	AIBubbleBg   lipgloss.Color
	AIBubbleFg   lipgloss.Color

	// Stats line (the backend's timing summary)
	StatsFg lipgloss.Color

	// Rating stars
	StarFg lipgloss.Color
}

// Light is the light-mode palette.
var Light = Palette{
	Primary:     lipgloss.Color("#2563EB"),
	PrimaryDeep: lipgloss.Color("#1E40AF"),
	Success:     lipgloss.Color("#059669"),
	Warning:     lipgloss.Color("#D97706"),
	Danger:      lipgloss.Color("#E11D48"),

	Surface:    lipgloss.Color("#FFFFFF"),
	SurfaceDim: lipgloss.Color("#F5F5F5"),
	Overlay:    lipgloss.Color("#E5E5E5"),

	Text:      lipgloss.Color("#1F2937"),
	TextDim:   lipgloss.Color("#6B7280"),
	TextMuted: lipgloss.Color("#9CA3AF"),
	Inverse:   lipgloss.Color("#FFFFFF"),

	UserBubbleBg: lipgloss.Color("#DBEAFE"),
	UserBubbleFg: lipgloss.Color("#1E40AF"),
	AIBubbleBg:   lipgloss.Color("#F3F4F6"),
	AIBubbleFg:   lipgloss.Color("#1F2937"),

	StatsFg: lipgloss.Color("#6B7280"),
	StarFg:  lipgloss.Color("#D97706"),
}

// Dark is the dark-mode palette.
var Dark = Palette{
	Primary:     lipgloss.Color("#3B82F6"),
	PrimaryDeep: lipgloss.Color("#1D4ED8"),
	Success:     lipgloss.Color("#34D399"),
	Warning:     lipgloss.Color("#FBBF24"),
	Danger:      lipgloss.Color("#FB7185"),

	Surface:    lipgloss.Color("#1A1A2E"),
	SurfaceDim: lipgloss.Color("#16213E"),
	Overlay:    lipgloss.Color("#45475A"),

	Text:      lipgloss.Color("#E0E0E0"),
	TextDim:   lipgloss.Color("#A6ADC8"),
	TextMuted: lipgloss.Color("#6C7086"),
	Inverse:   lipgloss.Color("#1A1A2E"),

	UserBubbleBg: lipgloss.Color("#1D4ED8"),
	UserBubbleFg: lipgloss.Color("#E0F2FE"),
	AIBubbleBg:   lipgloss.Color("#16213E"),
	AIBubbleFg:   lipgloss.Color("#E0E0E0"),

	StatsFg: lipgloss.Color("#A6ADC8"),
	StarFg:  lipgloss.Color("#FBBF24"),
}
