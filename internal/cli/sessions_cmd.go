// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

// sessions_cmd.go - Saved conversation management.
//
// Command: sessions
//
// Subcommands:
//   list (default)   list saved conversations, newest first
//   show <n>         print one conversation
//   delete <n>       delete one conversation
//   clear --confirm  delete all conversations
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hoangtm/legalchat-tui/internal/export"
	"github.com/hoangtm/legalchat-tui/internal/session"
)

func runSessions(parser *ArgParser) error {
	app, err := newApp(parser)
	if err != nil {
		return err
	}
	defer app.Close()

	switch parser.Positional(1) {
	case "", "list":
		return sessionsList(app)
	case "show":
		return sessionsShow(app, parser.Positional(2))
	case "delete":
		return sessionsDelete(app, parser.Positional(2))
	case "clear":
		if !parser.BoolFlag("confirm") {
			return fmt.Errorf("xóa tất cả cần --confirm")
		}
		if err := app.Store.ClearAll(); err != nil {
			return err
		}
		fmt.Println("Đã xóa tất cả chat đã lưu.")
		return nil
	default:
		return fmt.Errorf("lệnh không hợp lệ: sessions %s", parser.Positional(1))
	}
}

func sessionsList(app *App) error {
	sessions := app.Store.Sessions()
	if len(sessions) == 0 {
		fmt.Println("Chưa có chat nào được lưu.")
		return nil
	}
	for i, sess := range sessions {
		fmt.Printf("%2d. %s  %s  (%d câu hỏi)\n",
			i+1,
			sess.Timestamp.Format("02/01/2006 15:04"),
			sess.Title,
			len(sess.History))
	}
	return nil
}

func sessionsShow(app *App, arg string) error {
	sess, err := pickSession(app, arg)
	if err != nil {
		return err
	}
	fmt.Println(render(titleStyle, sess.Title))
	fmt.Println(render(infoStyle, sess.Timestamp.Format("02/01/2006 15:04")))
	fmt.Println()
	for i, turn := range sess.History {
		fmt.Println(render(promptStyle, "Bạn: ") + turn.Question)
		for _, line := range splitLines(turn.Answer) {
			if export.IsStatsLine(line) {
				line = render(statsStyle, line)
			}
			fmt.Println(line)
		}
		if stars, ok := sess.Ratings[i]; ok {
			fmt.Println(render(infoStyle, fmt.Sprintf("Đánh giá: %d/5", stars)))
		}
		fmt.Println()
	}
	return nil
}

func sessionsDelete(app *App, arg string) error {
	sess, err := pickSession(app, arg)
	if err != nil {
		return err
	}
	if err := app.Store.DeleteSession(sess.ID); err != nil {
		return err
	}
	fmt.Println("Đã xóa: " + sess.Title)
	return nil
}

// pickSession resolves a 1-based list position.
func pickSession(app *App, arg string) (*session.Session, error) {
	if arg == "" {
		return nil, fmt.Errorf("thiếu số thứ tự (xem: legalchat sessions list)")
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("số thứ tự không hợp lệ: %s", arg)
	}
	sessions := app.Store.Sessions()
	if n < 1 || n > len(sessions) {
		return nil, fmt.Errorf("chỉ có %d chat đã lưu", len(sessions))
	}
	return &sessions[n-1], nil
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}
