// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hoangtm/legalchat-tui/internal/export"
	"github.com/hoangtm/legalchat-tui/internal/session"
)

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// runCommand executes a slash command typed into the input.
func (m *Model) runCommand(text string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(text)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "/new":
		m.abandonStream()
		if err := m.store.StartNew(); err != nil {
			return m, m.setStatus("Không tạo được chat mới: " + err.Error())
		}
		m.sidebarIdx = 0
		m.refreshViewport()
		return m, m.setStatus("Chat mới")

	case "/save":
		if m.store.CurrentIsEmpty() {
			return m, m.setStatus("Chưa có gì để lưu")
		}
		if err := m.store.PersistCurrent(); err != nil {
			return m, m.setStatus("Không lưu được: " + err.Error())
		}
		return m, m.setStatus("Đã lưu chat")

	case "/load":
		return m.cmdLoad(args)

	case "/rename":
		return m.cmdRename(args)

	case "/delete":
		return m.cmdDelete(args)

	case "/clear":
		m.abandonStream()
		if err := m.store.ClearAll(); err != nil {
			return m, m.setStatus("Không xóa được: " + err.Error())
		}
		m.sidebarIdx = 0
		m.refreshViewport()
		return m, m.setStatus("Đã xóa tất cả chat đã lưu")

	case "/export":
		format := "text"
		if len(args) > 0 {
			format = args[0]
		}
		return m, m.exportCmd(format)

	case "/tokens":
		return m.cmdTokens(args)

	case "/bg":
		return m.cmdBackground(args)

	case "/dark":
		dark := !m.theme.IsDark
		m.theme.SetDark(dark)
		m.store.SetDarkMode(dark)
		m.refreshViewport()
		return m, m.setStatus("Đã đổi giao diện")

	case "/help":
		m.showHelp = !m.showHelp
		return m, nil

	case "/quit":
		if !m.store.CurrentIsEmpty() {
			m.store.PersistCurrent()
		}
		return m, tea.Quit

	default:
		return m, m.setStatus("Lệnh không hợp lệ: " + cmd + " (gõ /help)")
	}
}

// cmdLoad opens a saved session by 1-based list position.
func (m *Model) cmdLoad(args []string) (tea.Model, tea.Cmd) {
	sess, status := m.resolveSession(args)
	if sess == nil {
		return m, m.setStatus(status)
	}
	m.abandonStream()
	if !m.store.LoadSession(sess.ID) {
		return m, m.setStatus("Không mở được chat đã lưu")
	}
	m.refreshViewport()
	m.viewport.GotoBottom()
	return m, m.setStatus("Đã mở: " + sess.Title)
}

// cmdRename renames a saved session: /rename <n> <tiêu đề mới>.
func (m *Model) cmdRename(args []string) (tea.Model, tea.Cmd) {
	if len(args) < 2 {
		return m, m.setStatus("Cách dùng: /rename <số> <tiêu đề mới>")
	}
	sess, status := m.resolveSession(args[:1])
	if sess == nil {
		return m, m.setStatus(status)
	}
	title := strings.Join(args[1:], " ")
	if err := m.store.RenameSession(sess.ID, title); err != nil {
		return m, m.setStatus("Không đổi tên được: " + err.Error())
	}
	return m, m.setStatus("Đã đổi tên")
}

// cmdDelete removes a saved session: /delete <n>.
func (m *Model) cmdDelete(args []string) (tea.Model, tea.Cmd) {
	sess, status := m.resolveSession(args)
	if sess == nil {
		return m, m.setStatus(status)
	}
	if err := m.store.DeleteSession(sess.ID); err != nil {
		return m, m.setStatus("Không xóa được: " + err.Error())
	}
	if m.sidebarIdx >= m.store.Len() && m.sidebarIdx > 0 {
		m.sidebarIdx--
	}
	m.refreshViewport()
	return m, m.setStatus("Đã xóa: " + sess.Title)
}

// cmdTokens shows or sets the max-tokens preference.
func (m *Model) cmdTokens(args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		return m, m.setStatus(fmt.Sprintf("Giới hạn hiện tại: %d (các mức: %s)",
			m.store.MaxTokens(), optionList()))
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return m, m.setStatus("Cách dùng: /tokens <" + optionList() + ">")
	}
	applied, err := m.store.SetMaxTokens(v)
	if err != nil {
		return m, m.setStatus("Mức không hợp lệ, chọn: " + optionList())
	}
	return m, m.setStatus(fmt.Sprintf("Giới hạn tokens: %d", applied))
}

// cmdBackground shows, sets, or clears the stored background value:
// /bg, /bg <giá trị>, /bg off. The value itself is opaque here; it is
// persisted for clients that render it.
func (m *Model) cmdBackground(args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		if v, ok := m.store.Background(); ok {
			return m, m.setStatus("Nền hiện tại: " + v)
		}
		return m, m.setStatus("Chưa đặt nền (dùng /bg <giá trị> hoặc /bg off)")
	}
	if args[0] == "off" {
		if err := m.store.SetBackground(""); err != nil {
			return m, m.setStatus("Không xóa được nền: " + err.Error())
		}
		return m, m.setStatus("Đã xóa nền")
	}
	if err := m.store.SetBackground(strings.Join(args, " ")); err != nil {
		return m, m.setStatus("Không lưu được nền: " + err.Error())
	}
	return m, m.setStatus("Đã lưu nền")
}

// resolveSession maps a 1-based position argument to a saved session.
// Returns nil and a status message when the argument is unusable.
func (m *Model) resolveSession(args []string) (*session.Session, string) {
	if len(args) == 0 {
		return nil, "Thiếu số thứ tự chat (xem thanh bên)"
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, "Số thứ tự không hợp lệ: " + args[0]
	}
	sessions := m.store.Sessions()
	if n < 1 || n > len(sessions) {
		return nil, fmt.Sprintf("Chỉ có %d chat đã lưu", len(sessions))
	}
	return &sessions[n-1], ""
}

func optionList() string {
	parts := make([]string, len(session.MaxTokenOptions))
	for i, v := range session.MaxTokenOptions {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "/")
}

// =============================================================================
// EXPORT
// =============================================================================

// exportCmd saves the current conversation first, then writes the export
// file in a command so file IO stays off the update loop.
func (m *Model) exportCmd(format string) tea.Cmd {
	if m.store.CurrentIsEmpty() {
		return m.setStatus("Không có cuộc trò chuyện nào để xuất.")
	}
	if err := m.store.PersistCurrent(); err != nil {
		return m.setStatus("Không lưu được trước khi xuất: " + err.Error())
	}
	sess, ok := m.store.Get(m.store.ActiveID())
	if !ok {
		return m.setStatus("Không tìm thấy chat hiện tại")
	}

	opts := export.DefaultOptions()
	opts.Theme = "light"
	if m.theme.IsDark {
		opts.Theme = "dark"
	}
	exporter, err := export.ByFormat(format, opts)
	if err != nil {
		return m.setStatus("Định dạng không hợp lệ: " + format)
	}

	return func() tea.Msg {
		path, err := export.ExportToFile(&sess, exporter, opts)
		return exportResultMsg{path: path, err: err}
	}
}
