// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hoangtm/legalchat-tui/internal/api"
	"github.com/hoangtm/legalchat-tui/internal/config"
	"github.com/hoangtm/legalchat-tui/internal/session"
	"github.com/hoangtm/legalchat-tui/internal/ui/styles"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat view.
type State int

const (
	StateReady     State = iota // Ready for input
	StateStreaming              // Receiving a streamed answer
)

// WelcomeSuggestions are the canned questions shown on an empty chat.
var WelcomeSuggestions = []string{
	"Điều kiện kết hôn theo Luật Hôn nhân và Gia đình là gì?",
	"Thủ tục đăng ký doanh nghiệp gồm những bước nào?",
	"Người lao động được nghỉ phép năm bao nhiêu ngày?",
	"Mức phạt khi vượt đèn đỏ là bao nhiêu?",
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// State
	state State

	// Generation of the in-flight stream. Incremented on every submit and
	// on every action that abandons the stream; stream messages carrying an
	// older generation are dropped.
	gen int

	// Streaming accumulation for the in-flight answer
	partial   strings.Builder
	streaming <-chan api.Event
	cancel    func()

	// Dependencies
	store  *session.Store
	client *api.Client
	cfg    *config.Config

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	// Key bindings
	keyMap KeyMap

	// Sidebar selection (index into store.Sessions())
	sidebarIdx int

	// Transient status line; statusID invalidates stale expiry timers.
	status   string
	statusID int

	// Help overlay
	showHelp bool

	// Welcome suggestion cursor, -1 when none selected
	suggestIdx int
}

// New creates the chat model. The store must already be hydrated.
func New(store *session.Store, client *api.Client, cfg *config.Config, theme *styles.Theme) *Model {
	input := textinput.New()
	input.Placeholder = "Nhập câu hỏi pháp luật của bạn..."
	input.CharLimit = 4000
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return &Model{
		state:      StateReady,
		store:      store,
		client:     client,
		cfg:        cfg,
		theme:      theme,
		viewport:   viewport.New(80, 20),
		input:      input,
		spinner:    sp,
		keyMap:     DefaultKeyMap(),
		suggestIdx: -1,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// setStatus shows a transient status message and returns the command that
// clears it.
func (m *Model) setStatus(text string) tea.Cmd {
	m.status = text
	m.statusID++
	id := m.statusID
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return statusExpiredMsg{id: id}
	})
}

// abandonStream invalidates the in-flight stream, if any. Pending messages
// from it keep the old generation and will be dropped.
func (m *Model) abandonStream() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.streaming = nil
	m.partial.Reset()
	m.gen++
	m.state = StateReady
}
