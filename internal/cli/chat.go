// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive REPL for terminals where the full-screen TUI is
// unwanted (ssh sessions, screen readers, scripts driving a pty).
//
// Command: chat
//
// Interactive commands during chat:
//   /new               start a new conversation (saves the current one)
//   /history           print the current conversation
//   /tokens [n]        show or set the answer length limit
//   /export [format]   export the conversation to a file
//   /quit, /q          exit (also: exit, quit, Ctrl+D)
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/hoangtm/legalchat-tui/internal/api"
	"github.com/hoangtm/legalchat-tui/internal/config"
	"github.com/hoangtm/legalchat-tui/internal/export"
)

// =============================================================================
// LINE EDITOR
// =============================================================================

// ChatCLI provides input history and line editing for the REPL.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a line editor with persistent history.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	dir, err := config.Dir()
	if err != nil {
		dir = os.TempDir()
	}
	c := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(dir, "chat_history"),
	}
	c.loadHistory()
	return c
}

func (c *ChatCLI) loadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads one line, recording non-empty input in the history.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// Close saves history and restores the terminal.
func (c *ChatCLI) Close() {
	if err := config.EnsureDir(); err == nil {
		if f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600); err == nil {
			c.line.WriteHistory(f)
			f.Close()
		}
	}
	c.line.Close()
}

// =============================================================================
// REPL
// =============================================================================

// RunChat runs the interactive REPL.
func RunChat(parser *ArgParser) error {
	app, err := newApp(parser)
	if err != nil {
		return err
	}
	defer app.Close()

	input := NewChatCLI()
	defer input.Close()

	fmt.Println(render(titleStyle, "Trợ lý Pháp luật AI"))
	fmt.Println(render(infoStyle, "Backend: "+app.Client.BaseURL()))
	fmt.Println(render(infoStyle, "Gõ câu hỏi và Enter. /quit để thoát, /help để xem lệnh."))
	fmt.Println()

	// A cancellable context per question; Ctrl+C aborts the in-flight
	// answer instead of the whole process.
	var cancelCurrent func()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		for range sigCh {
			if cancelCurrent != nil {
				cancelCurrent()
			}
		}
	}()

	for {
		text, err := input.ReadInput(render(promptStyle, "legalchat> "))
		if err != nil {
			// liner.ErrPromptAborted is Ctrl+C at the prompt; EOF is Ctrl+D.
			fmt.Println()
			return saveOnExit(app)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		if strings.EqualFold(text, "exit") || strings.EqualFold(text, "quit") {
			return saveOnExit(app)
		}
		if strings.HasPrefix(text, "/") {
			cont, err := replCommand(app, text)
			if err != nil {
				fmt.Fprintln(os.Stderr, render(errorStyle, "[Lỗi] ")+err.Error())
			}
			if !cont {
				return saveOnExit(app)
			}
			continue
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancelCurrent = cancel
		askOne(ctx, app, text)
		cancel()
		cancelCurrent = nil
	}
}

func saveOnExit(app *App) error {
	if app.Store.CurrentIsEmpty() {
		return nil
	}
	return app.Store.PersistCurrent()
}

// askOne streams one answer to stdout. On failure the transcript gets the
// fallback answer, matching the TUI behavior.
func askOne(ctx context.Context, app *App, question string) {
	if !app.Store.AppendUserTurn(question) {
		return
	}

	req := api.ChatRequest{
		Question:    question,
		ChatHistory: app.Store.Current().Pairs(),
	}
	if mt := app.Store.MaxTokens(); mt > 0 {
		req.MaxTokens = mt
	}

	var sb strings.Builder
	err := app.Client.Stream(ctx, req, func(text string) {
		sb.WriteString(text)
		app.Store.SetLastAnswer(sb.String())
		printAnswerChunk(text)
	})
	fmt.Println()

	if err != nil {
		app.Store.SetLastAnswer(api.FallbackAnswer)
		fmt.Println(render(errorStyle, api.FallbackAnswer))
	} else {
		app.Store.SetLastAnswer(sb.String())
	}
	if persistErr := app.Store.PersistCurrent(); persistErr != nil {
		fmt.Fprintln(os.Stderr, render(errorStyle, "[Lỗi] ")+persistErr.Error())
	}
	fmt.Println()
}

// printAnswerChunk writes a chunk, styling any complete stats line it
// carries. Chunks may split lines arbitrarily, so only a chunk containing a
// full line gets the treatment; partial stats lines print plain.
func printAnswerChunk(text string) {
	if !strings.Contains(text, "\n") {
		fmt.Print(text)
		return
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if export.IsStatsLine(line) {
			line = render(statsStyle, line)
		}
		fmt.Print(line)
		if i < len(lines)-1 {
			fmt.Println()
		}
	}
}

// replCommand handles slash commands. The bool result is false when the
// REPL should exit.
func replCommand(app *App, text string) (bool, error) {
	fields := strings.Fields(text)
	switch fields[0] {
	case "/quit", "/q":
		return false, nil

	case "/help", "/h":
		fmt.Println(render(infoStyle, "/new /history /tokens [n] /export [text|html|md] /quit"))
		return true, nil

	case "/new":
		if err := app.Store.StartNew(); err != nil {
			return true, err
		}
		fmt.Println(render(infoStyle, "Đã bắt đầu chat mới."))
		return true, nil

	case "/history":
		for _, turn := range app.Store.Current() {
			fmt.Println(render(promptStyle, "Bạn: ") + turn.Question)
			fmt.Println(render(infoStyle, "AI:  ") + turn.Answer)
			fmt.Println()
		}
		return true, nil

	case "/tokens":
		if len(fields) == 1 {
			fmt.Println(render(infoStyle, fmt.Sprintf("Giới hạn hiện tại: %d", app.Store.MaxTokens())))
			return true, nil
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return true, fmt.Errorf("mức không hợp lệ: %s", fields[1])
		}
		applied, err := app.Store.SetMaxTokens(v)
		if err != nil {
			return true, err
		}
		fmt.Println(render(infoStyle, fmt.Sprintf("Giới hạn tokens: %d", applied)))
		return true, nil

	case "/export":
		format := "text"
		if len(fields) > 1 {
			format = fields[1]
		}
		path, err := exportCurrent(app, format, ".")
		if err != nil {
			return true, err
		}
		fmt.Println(render(infoStyle, "Đã xuất: "+path))
		return true, nil

	default:
		return true, fmt.Errorf("lệnh không hợp lệ: %s", fields[0])
	}
}

// exportCurrent saves the active conversation and writes it to a file.
func exportCurrent(app *App, format, outDir string) (string, error) {
	if app.Store.CurrentIsEmpty() {
		return "", export.ErrEmptySession
	}
	if err := app.Store.PersistCurrent(); err != nil {
		return "", err
	}
	sess, ok := app.Store.Get(app.Store.ActiveID())
	if !ok {
		return "", fmt.Errorf("không tìm thấy chat hiện tại")
	}

	opts := export.DefaultOptions()
	opts.OutputDir = outDir
	exporter, err := export.ByFormat(format, opts)
	if err != nil {
		return "", err
	}
	return export.ExportToFile(&sess, exporter, opts)
}
