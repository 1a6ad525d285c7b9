// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

// export_cmd.go - Export a saved conversation to a file.
//
// Command: export
//
// Examples:
//   legalchat export              export the newest conversation as text
//   legalchat export 3            export conversation 3 from the list
//   legalchat export --format html --out ~/Documents
package cli

import (
	"fmt"

	"github.com/hoangtm/legalchat-tui/internal/export"
)

func runExport(parser *ArgParser) error {
	app, err := newApp(parser)
	if err != nil {
		return err
	}
	defer app.Close()

	arg := parser.Positional(1)
	if arg == "" {
		if app.Store.Len() == 0 {
			return export.ErrEmptySession
		}
		arg = "1"
	}
	sess, err := pickSession(app, arg)
	if err != nil {
		return err
	}

	opts := export.DefaultOptions()
	opts.OutputDir = parser.FlagOrDefault("out", ".")
	exporter, err := export.ByFormat(parser.FlagOrDefault("format", "text"), opts)
	if err != nil {
		return err
	}

	path, err := export.ExportToFile(sess, exporter, opts)
	if err != nil {
		return err
	}
	fmt.Println("Đã xuất: " + path)
	return nil
}
