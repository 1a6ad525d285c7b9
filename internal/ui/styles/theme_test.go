// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "testing"

func TestNewTheme(t *testing.T) {
	light := NewTheme(false)
	if light.IsDark {
		t.Error("NewTheme(false) is dark")
	}
	dark := NewTheme(true)
	if !dark.IsDark {
		t.Error("NewTheme(true) is light")
	}
}

func TestSetDarkSwitchesPalette(t *testing.T) {
	th := NewTheme(false)
	lightFg := th.UserBubble.GetForeground()

	th.SetDark(true)
	if !th.IsDark {
		t.Fatal("SetDark(true) did not stick")
	}
	if th.UserBubble.GetForeground() == lightFg {
		t.Error("palette did not change after SetDark")
	}

	th.SetDark(false)
	if th.UserBubble.GetForeground() != lightFg {
		t.Error("palette did not restore after SetDark(false)")
	}
}

func TestLayoutMode(t *testing.T) {
	th := NewTheme(false)

	th.SetSize(50, 24)
	if th.GetLayoutMode() != LayoutNarrow {
		t.Error("width 50 should be narrow")
	}

	th.SetSize(120, 40)
	if th.GetLayoutMode() != LayoutWide {
		t.Error("width 120 should be wide")
	}
}
