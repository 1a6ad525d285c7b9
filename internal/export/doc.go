// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export renders saved chat sessions to shareable formats.
//
// Three exporters are provided: plain text (the classic
// "AI Legal Assistant - Chat Export" layout), HTML with embedded CSS and
// the stats-line highlight, and Markdown. All exporters receive a
// *session.Session and return the full document as bytes; ExportToFile
// handles naming and writing.
package export
