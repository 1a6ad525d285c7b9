// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hoangtm/legalchat-tui/internal/api"
)

// =============================================================================
// STREAM COMMANDS
// =============================================================================

// startStream opens the stream for the current question and returns the
// command that waits for its first event. The question must already be
// appended to the transcript; the request history carries the full
// transcript, pending pair included, as the backend expects.
func (m *Model) startStream(question string) tea.Cmd {
	req := api.ChatRequest{
		Question:    question,
		ChatHistory: m.store.Current().Pairs(),
	}
	if mt := m.store.MaxTokens(); mt > 0 {
		req.MaxTokens = mt
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.streaming = m.client.StreamChan(ctx, req)
	m.state = StateStreaming
	m.partial.Reset()

	gen := m.gen
	ch := m.streaming
	return tea.Batch(
		func() tea.Msg { return StreamStartMsg{Gen: gen} },
		waitForEvent(ch, gen),
		m.spinner.Tick,
	)
}

// waitForEvent blocks on the next stream event and converts it to a Bubble
// Tea message. The update loop re-issues it after each token.
func waitForEvent(ch <-chan api.Event, gen int) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			// Channel closed without a terminal event: the producer was
			// cancelled. Report completion; a stale generation is dropped
			// anyway.
			return StreamCompleteMsg{Gen: gen}
		}
		switch {
		case ev.Err != nil:
			return StreamErrorMsg{Gen: gen, Err: ev.Err}
		case ev.Done:
			return StreamCompleteMsg{Gen: gen}
		default:
			return StreamTokenMsg{Gen: gen, Text: ev.Text}
		}
	}
}
