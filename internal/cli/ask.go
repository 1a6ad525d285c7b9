// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot question command.
//
// Command: ask
//
// Examples:
//   legalchat ask "Điều kiện kết hôn là gì?"
//   legalchat ask --tokens 512 "Thủ tục ly hôn?"
//   legalchat ask --no-save "câu hỏi thử"
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/hoangtm/legalchat-tui/internal/api"
)

// RunAsk sends one question, streams the answer to stdout, and exits.
func RunAsk(parser *ArgParser) error {
	question := strings.TrimSpace(strings.Join(parser.PositionalFrom(1), " "))
	if question == "" {
		return fmt.Errorf("thiếu câu hỏi: legalchat ask <câu hỏi>")
	}

	app, err := newApp(parser)
	if err != nil {
		return err
	}
	defer app.Close()

	app.Store.AppendUserTurn(question)
	req := api.ChatRequest{
		Question:    question,
		ChatHistory: app.Store.Current().Pairs(),
	}
	if v := parser.FlagIntOrDefault("tokens", 0); v > 0 {
		if applied, err := app.Store.SetMaxTokens(v); err == nil {
			req.MaxTokens = applied
		} else {
			return err
		}
	} else if mt := app.Store.MaxTokens(); mt > 0 {
		req.MaxTokens = mt
	}

	answer, err := app.Client.StreamAccumulate(context.Background(), req)
	if err != nil {
		fmt.Println(api.FallbackAnswer)
		return err
	}
	printAnswerChunk(answer)
	fmt.Println()

	if parser.BoolFlag("no-save") {
		return nil
	}
	app.Store.SetLastAnswer(answer)
	return app.Store.PersistCurrent()
}
