// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the chat interface. Plain keys
// go to the input field; everything here is a control or alt combination.
type KeyMap struct {
	Submit   key.Binding
	Cancel   key.Binding
	Quit     key.Binding
	NewChat  key.Binding
	Save     key.Binding
	Export   key.Binding
	DarkMode key.Binding
	Copy     key.Binding
	Help     key.Binding

	PageUp   key.Binding
	PageDown key.Binding

	PrevSession key.Binding
	NextSession key.Binding
	OpenSession key.Binding

	Rate1 key.Binding
	Rate2 key.Binding
	Rate3 key.Binding
	Rate4 key.Binding
	Rate5 key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "gửi câu hỏi"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "hủy trả lời"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("C-c", "thoát"),
		),
		NewChat: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("C-n", "chat mới"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "lưu chat"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("C-e", "xuất file"),
		),
		DarkMode: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "đổi giao diện"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "sao chép trả lời"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("C-g", "trợ giúp"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", "cuộn lên"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn", "cuộn xuống"),
		),
		PrevSession: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("C-k", "chat trước"),
		),
		NextSession: key.NewBinding(
			key.WithKeys("ctrl+j"),
			key.WithHelp("C-j", "chat sau"),
		),
		OpenSession: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("C-o", "mở chat đã chọn"),
		),
		Rate1: key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("M-1..5", "đánh giá trả lời")),
		Rate2: key.NewBinding(key.WithKeys("alt+2")),
		Rate3: key.NewBinding(key.WithKeys("alt+3")),
		Rate4: key.NewBinding(key.WithKeys("alt+4")),
		Rate5: key.NewBinding(key.WithKeys("alt+5")),
	}
}

// HelpEntries returns the bindings shown on the help screen, in display
// order.
func (k KeyMap) HelpEntries() []key.Binding {
	return []key.Binding{
		k.Submit, k.Cancel, k.NewChat, k.Save, k.Export,
		k.Copy, k.DarkMode, k.PrevSession, k.NextSession, k.OpenSession,
		k.PageUp, k.PageDown, k.Rate1, k.Help, k.Quit,
	}
}
