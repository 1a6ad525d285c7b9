// legalchat - a terminal client for the Vietnamese legal Q&A assistant.
//
// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/hoangtm/legalchat-tui/internal/cli"
	"github.com/hoangtm/legalchat-tui/internal/config"
)

// Version information (set at build time)
var Version = "0.1.0"

func main() {
	cli.Version = Version
	setupLogging()
	os.Exit(cli.Run(os.Args[1:]))
}

// setupLogging sends the standard logger to a file so log lines never tear
// the TUI. Falls back to discarding when the data directory is unusable.
func setupLogging() {
	dir, err := config.Dir()
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "legalchat.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(f)
}
