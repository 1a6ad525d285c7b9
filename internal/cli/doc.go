// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the legalchat command line: argument parsing,
// command dispatch, the interactive REPL, and the plain commands (ask,
// sessions, export) that work without a full-screen terminal.
package cli
