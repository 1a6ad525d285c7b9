// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hoangtm/legalchat-tui/internal/export"
	"github.com/hoangtm/legalchat-tui/internal/ui/styles"
)

const sidebarWidth = 28

// layout recomputes component dimensions after a resize.
func (m *Model) layout() {
	chatWidth := m.width
	if m.theme.GetLayoutMode() == styles.LayoutWide {
		chatWidth -= sidebarWidth
	}
	if chatWidth < 20 {
		chatWidth = 20
	}

	// Header, input and status bar take five rows between them.
	viewHeight := m.height - 5
	if viewHeight < 3 {
		viewHeight = 3
	}

	m.viewport.Width = chatWidth
	m.viewport.Height = viewHeight
	m.input.Width = chatWidth - 6
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 {
		return "Đang khởi động..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderInput(),
		m.renderStatusBar(),
	)

	if m.theme.GetLayoutMode() == styles.LayoutWide {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), main)
	}
	return main
}

// refreshViewport re-renders the conversation into the viewport.
func (m *Model) refreshViewport() {
	if m.store.CurrentIsEmpty() && m.state == StateReady {
		m.viewport.SetContent(m.renderWelcome())
		return
	}
	m.viewport.SetContent(m.renderConversation())
}

// =============================================================================
// SECTIONS
// =============================================================================

func (m *Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("Trợ lý Pháp luật AI")
	sub := m.theme.HeaderSubtitle.Render("hỏi đáp văn bản pháp luật Việt Nam")
	return m.theme.Container.Render(title + "  " + sub)
}

// renderConversation renders every turn as a pair of bubbles, with the
// in-flight answer at the bottom.
func (m *Model) renderConversation() string {
	var sb strings.Builder
	bubbleWidth := m.viewport.Width - 8
	if bubbleWidth < 12 {
		bubbleWidth = 12
	}

	history := m.store.Current()
	active, activeOK := m.store.Get(m.store.ActiveID())

	for i, turn := range history {
		sb.WriteString(m.theme.UserBubble.MaxWidth(bubbleWidth).Render(turn.Question))
		sb.WriteString("\n")

		streamingLast := m.state == StateStreaming && i == len(history)-1
		switch {
		case streamingLast:
			text := m.partial.String()
			if text == "" {
				text = m.spinner.View() + m.theme.ThinkingText.Render(" Đang soạn câu trả lời...")
				sb.WriteString(text)
			} else {
				sb.WriteString(m.theme.AIBubble.MaxWidth(bubbleWidth).Render(m.styleAnswer(text)))
			}
		case turn.Answer != "":
			sb.WriteString(m.theme.AIBubble.MaxWidth(bubbleWidth).Render(m.styleAnswer(turn.Answer)))
			if activeOK {
				if stars, ok := active.Ratings[i]; ok {
					sb.WriteString("\n")
					sb.WriteString(m.theme.Rating.Render(
						strings.Repeat("★", stars) + strings.Repeat("☆", 5-stars)))
				}
			}
		}
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// styleAnswer applies the stats-line highlight to an answer. The text stays
// verbatim; only the timing summary line changes style.
func (m *Model) styleAnswer(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if export.IsStatsLine(line) {
			lines[i] = m.theme.StatsLine.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// renderSidebar lists saved sessions newest first.
func (m *Model) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString(m.theme.SidebarTitle.Render("Chat đã lưu"))
	sb.WriteString("\n\n")

	sessions := m.store.Sessions()
	if len(sessions) == 0 {
		sb.WriteString(m.theme.SidebarTime.Render("(trống)"))
	}
	for i, sess := range sessions {
		title := runewidth.Truncate(sess.Title, sidebarWidth-6, "…")
		line := fmt.Sprintf("%2d. %s", i+1, title)
		style := m.theme.SidebarItem
		if i == m.sidebarIdx {
			style = m.theme.SidebarActive
		}
		if sess.ID == m.store.ActiveID() {
			line = "▸" + line[1:]
		}
		sb.WriteString(style.Render(line))
		sb.WriteString("\n")
		sb.WriteString(m.theme.SidebarTime.Render("    " + sess.Timestamp.Format("02/01 15:04")))
		sb.WriteString("\n")
	}

	return m.theme.Sidebar.
		Width(sidebarWidth).
		Height(m.height - 1).
		Render(sb.String())
}

func (m *Model) renderWelcome() string {
	var sb strings.Builder
	sb.WriteString("\n\n")
	sb.WriteString(m.theme.WelcomeTitle.Width(m.viewport.Width).Render("Xin chào!"))
	sb.WriteString("\n")
	sb.WriteString(m.theme.WelcomeSubtitle.Width(m.viewport.Width).
		Render("Đặt câu hỏi pháp luật, hoặc nhấn Tab để thử một gợi ý:"))
	sb.WriteString("\n\n")
	for _, s := range WelcomeSuggestions {
		sb.WriteString("  ")
		sb.WriteString(m.theme.WelcomeSuggestion.Render(s))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m *Model) renderInput() string {
	prompt := m.theme.InputPrompt.Render("❯ ")
	return m.theme.InputContainer.Width(m.viewport.Width).Render(prompt + m.input.View())
}

func (m *Model) renderStatusBar() string {
	left := m.status
	if left == "" {
		if m.state == StateStreaming {
			left = m.spinner.View() + " đang trả lời (Esc để hủy)"
		} else {
			left = fmt.Sprintf("tokens: %d · %d chat đã lưu", m.store.MaxTokens(), m.store.Len())
		}
	}
	right := m.theme.StatusKey.Render("C-g") + m.theme.StatusDesc.Render(" trợ giúp")

	pad := m.viewport.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if pad < 1 {
		pad = 1
	}
	return m.theme.StatusBar.Width(m.viewport.Width).
		Render(left + strings.Repeat(" ", pad) + right)
}

func (m *Model) renderHelp() string {
	var sb strings.Builder
	sb.WriteString(m.theme.HeaderTitle.Render("Phím tắt"))
	sb.WriteString("\n\n")
	for _, b := range m.keyMap.HelpEntries() {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %s  %s\n",
			m.theme.StatusKey.Render(runewidth.FillRight(h.Key, 10)),
			m.theme.StatusDesc.Render(h.Desc)))
	}
	sb.WriteString("\n")
	sb.WriteString(m.theme.StatusDesc.Render("Lệnh: /new /save /load n /rename n tiêu-đề /delete n /clear /export [text|html|md] /tokens n /bg [giá-trị|off] /dark /quit"))
	sb.WriteString("\n\n")
	sb.WriteString(m.theme.StatusDesc.Render("Nhấn C-g hoặc Esc để đóng"))
	return m.theme.Container.Render(sb.String())
}
