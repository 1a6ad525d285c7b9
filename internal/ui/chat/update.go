// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hoangtm/legalchat-tui/internal/api"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.layout()
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.state != StateStreaming {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StreamStartMsg:
		// Informational; the spinner is already running.
		return m, nil

	case StreamTokenMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.partial.WriteString(msg.Text)
		// Keep the transcript in step with the stream so a persist during
		// streaming saves the text received so far.
		m.store.SetLastAnswer(m.partial.String())
		m.refreshViewport()
		return m, waitForEvent(m.streaming, m.gen)

	case StreamCompleteMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.finishStream(m.partial.String(), nil)

	case StreamErrorMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		// Discard the partial text; the transcript records the fallback.
		return m.finishStream(api.FallbackAnswer, msg.Err)

	case statusExpiredMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			return m, m.setStatus("Không sao chép được: " + msg.err.Error())
		}
		return m, m.setStatus("Đã sao chép câu trả lời")

	case exportResultMsg:
		if msg.err != nil {
			return m, m.setStatus("Xuất thất bại: " + msg.err.Error())
		}
		return m, m.setStatus("Đã xuất: " + msg.path)

	case ConfigReloadedMsg:
		m.cfg = msg.Config
		return m, m.setStatus("Đã tải lại cấu hình")
	}

	return m, m.updateInput(msg)
}

// finishStream records the answer for the in-flight question and returns to
// ready state. err is non-nil for the fallback path.
func (m *Model) finishStream(answer string, err error) (tea.Model, tea.Cmd) {
	m.store.SetLastAnswer(answer)
	m.state = StateReady
	m.streaming = nil
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.partial.Reset()

	var cmd tea.Cmd
	if persistErr := m.store.PersistCurrent(); persistErr != nil {
		cmd = m.setStatus("Không lưu được chat: " + persistErr.Error())
	} else if err != nil {
		cmd = m.setStatus("Lỗi máy chủ, đã dùng câu trả lời dự phòng")
	}
	m.refreshViewport()
	m.viewport.GotoBottom()
	return m, cmd
}

// handleKey routes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keyMap

	switch {
	case key.Matches(msg, k.Quit):
		if !m.store.CurrentIsEmpty() {
			m.store.PersistCurrent()
		}
		return m, tea.Quit

	case key.Matches(msg, k.Cancel):
		if m.state == StateStreaming {
			m.abandonStream()
			m.store.SetLastAnswer(api.FallbackAnswer)
			m.store.PersistCurrent()
			m.refreshViewport()
			return m, m.setStatus("Đã hủy, dùng câu trả lời dự phòng")
		}
		m.showHelp = false
		return m, nil

	case key.Matches(msg, k.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, k.Submit):
		return m.handleSubmit()

	case key.Matches(msg, k.NewChat):
		m.abandonStream()
		if err := m.store.StartNew(); err != nil {
			return m, m.setStatus("Không tạo được chat mới: " + err.Error())
		}
		m.sidebarIdx = 0
		m.refreshViewport()
		return m, m.setStatus("Chat mới")

	case key.Matches(msg, k.Save):
		if m.store.CurrentIsEmpty() {
			return m, m.setStatus("Chưa có gì để lưu")
		}
		if err := m.store.PersistCurrent(); err != nil {
			return m, m.setStatus("Không lưu được: " + err.Error())
		}
		return m, m.setStatus("Đã lưu chat")

	case key.Matches(msg, k.Export):
		return m, m.exportCmd("text")

	case key.Matches(msg, k.DarkMode):
		dark := !m.theme.IsDark
		m.theme.SetDark(dark)
		m.store.SetDarkMode(dark)
		m.refreshViewport()
		if dark {
			return m, m.setStatus("Giao diện tối")
		}
		return m, m.setStatus("Giao diện sáng")

	case key.Matches(msg, k.Copy):
		return m, m.copyLastAnswer()

	case key.Matches(msg, k.PrevSession):
		if m.sidebarIdx > 0 {
			m.sidebarIdx--
		}
		return m, nil

	case key.Matches(msg, k.NextSession):
		if m.sidebarIdx < m.store.Len()-1 {
			m.sidebarIdx++
		}
		return m, nil

	case key.Matches(msg, k.OpenSession):
		return m.openSelectedSession()

	case key.Matches(msg, k.Rate1):
		return m, m.rate(1)
	case key.Matches(msg, k.Rate2):
		return m, m.rate(2)
	case key.Matches(msg, k.Rate3):
		return m, m.rate(3)
	case key.Matches(msg, k.Rate4):
		return m, m.rate(4)
	case key.Matches(msg, k.Rate5):
		return m, m.rate(5)

	case key.Matches(msg, k.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, k.PageDown):
		m.viewport.HalfViewDown()
		return m, nil

	case msg.String() == "tab":
		if m.store.CurrentIsEmpty() && m.state == StateReady {
			m.cycleSuggestion()
			return m, nil
		}
	}

	return m, m.updateInput(msg)
}

// handleSubmit sends the input as a question or runs it as a slash command.
func (m *Model) handleSubmit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	if strings.HasPrefix(text, "/") {
		m.input.Reset()
		return m.runCommand(text)
	}
	if m.state == StateStreaming {
		// One question at a time.
		return m, m.setStatus("Đang trả lời, vui lòng chờ...")
	}

	if !m.store.AppendUserTurn(text) {
		return m, nil
	}
	m.input.Reset()
	m.suggestIdx = -1
	m.gen++
	cmd := m.startStream(text)
	m.refreshViewport()
	m.viewport.GotoBottom()
	return m, cmd
}

// openSelectedSession loads the sidebar selection into the view.
func (m *Model) openSelectedSession() (tea.Model, tea.Cmd) {
	sessions := m.store.Sessions()
	if m.sidebarIdx < 0 || m.sidebarIdx >= len(sessions) {
		return m, nil
	}
	m.abandonStream()
	if !m.store.LoadSession(sessions[m.sidebarIdx].ID) {
		return m, m.setStatus("Không mở được chat đã lưu")
	}
	m.refreshViewport()
	m.viewport.GotoBottom()
	return m, m.setStatus("Đã mở: " + sessions[m.sidebarIdx].Title)
}

// rate applies a star rating to the latest answered turn.
func (m *Model) rate(stars int) tea.Cmd {
	if err := m.store.RateLast(stars); err != nil {
		return m.setStatus("Chưa có câu trả lời để đánh giá")
	}
	m.refreshViewport()
	return m.setStatus(fmt.Sprintf("Đã đánh giá %d/5", stars))
}

// copyLastAnswer copies the latest answer to the system clipboard.
func (m *Model) copyLastAnswer() tea.Cmd {
	last := m.store.Current().Last()
	if last == nil || last.Answer == "" {
		return m.setStatus("Chưa có câu trả lời để sao chép")
	}
	answer := last.Answer
	return func() tea.Msg {
		return copyResultMsg{err: clipboard.WriteAll(answer)}
	}
}

// cycleSuggestion fills the input with the next welcome suggestion.
func (m *Model) cycleSuggestion() {
	if len(WelcomeSuggestions) == 0 {
		return
	}
	m.suggestIdx = (m.suggestIdx + 1) % len(WelcomeSuggestions)
	m.input.SetValue(WelcomeSuggestions[m.suggestIdx])
	m.input.CursorEnd()
}

// updateInput forwards a message to the text input.
func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}
