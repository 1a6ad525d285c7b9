// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Show or initialize the configuration file.
//
// Command: config
//
// Subcommands:
//   show (default)   print the effective configuration
//   init             write a config file with the defaults
package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/hoangtm/legalchat-tui/internal/config"
)

func runConfig(parser *ArgParser) error {
	switch parser.Positional(1) {
	case "", "show":
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		path, _ := config.Path()
		fmt.Println(render(infoStyle, "# "+path))
		return toml.NewEncoder(os.Stdout).Encode(cfg)

	case "init":
		path, err := config.Path()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !parser.BoolFlag("force") {
			return fmt.Errorf("%s đã tồn tại (dùng --force để ghi đè)", path)
		}
		if err := config.Save(config.Default()); err != nil {
			return err
		}
		fmt.Println("Đã tạo: " + path)
		return nil

	default:
		return fmt.Errorf("lệnh không hợp lệ: config %s", parser.Positional(1))
	}
}
