// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hoangtm/legalchat-tui/internal/api"
	"github.com/hoangtm/legalchat-tui/internal/config"
	"github.com/hoangtm/legalchat-tui/internal/session"
	"github.com/hoangtm/legalchat-tui/internal/storage"
	"github.com/hoangtm/legalchat-tui/internal/ui/chat"
	"github.com/hoangtm/legalchat-tui/internal/ui/styles"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// =============================================================================
// DISPATCH
// =============================================================================

// Run executes the command line and returns a process exit code.
func Run(args []string) int {
	parser := NewArgParser(args)

	switch parser.Subcommand() {
	case "", "tui":
		return exitOn(runTUI(parser))
	case "chat":
		return exitOn(RunChat(parser))
	case "ask":
		return exitOn(RunAsk(parser))
	case "sessions":
		return exitOn(runSessions(parser))
	case "export":
		return exitOn(runExport(parser))
	case "config":
		return exitOn(runConfig(parser))
	case "version":
		fmt.Printf("legalchat %s\n", Version)
		return 0
	case "help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "lệnh không hợp lệ: %s\n\n", parser.Subcommand())
		printUsage()
		return 2
	}
}

func exitOn(err error) int {
	if err != nil {
		fmt.Fprintf(os.Stderr, "lỗi: %v\n", err)
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Print(`legalchat - trợ lý pháp luật AI trong terminal

Cách dùng:
  legalchat [tui]                 giao diện đầy đủ (mặc định)
  legalchat chat                  hỏi đáp dạng dòng lệnh (REPL)
  legalchat ask <câu hỏi>         hỏi một lần rồi thoát
  legalchat sessions [list|show n|delete n|clear]
  legalchat export [n] [--format text|html|md] [--out DIR]
  legalchat config [show|init]
  legalchat version

Cờ chung:
  --api URL      địa chỉ backend (mặc định ` + api.DefaultBaseURL + `)
  --store NAME   sqlite, file hoặc memory
  --dark         bật giao diện tối
`)
}

// =============================================================================
// APP WIRING
// =============================================================================

// App bundles the dependencies every command needs.
type App struct {
	Config *config.Config
	KV     storage.KV
	Store  *session.Store
	Client *api.Client
}

// newApp loads config, opens the storage backend, and hydrates the session
// store. The caller must Close it.
func newApp(parser *ArgParser) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if backend := parser.Flag("store"); backend != "" {
		cfg.Storage.Backend = backend
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	kv, err := openKV(cfg)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(kv)
	store.Hydrate()

	client := api.NewClient(api.ResolveBaseURL(parser.Flag("api"), cfg.API.BaseURL))

	return &App{Config: cfg, KV: kv, Store: store, Client: client}, nil
}

// Close releases the storage backend.
func (a *App) Close() error {
	return a.KV.Close()
}

// openKV opens the configured storage backend.
func openKV(cfg *config.Config) (storage.KV, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return storage.NewMemStore(), nil
	case "file":
		dir, err := dataDir(cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewFileStore(filepath.Join(dir, "kv"))
	default: // sqlite
		dir, err := dataDir(cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewSQLiteStore(filepath.Join(dir, "state.db"))
	}
}

func dataDir(cfg *config.Config) (string, error) {
	dir := cfg.Storage.Dir
	if dir == "" {
		var err error
		dir, err = config.Dir()
		if err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return dir, nil
}

// darkMode resolves the initial theme: the persisted toggle wins, then the
// --dark flag, then the configured theme.
func darkMode(parser *ArgParser, app *App) bool {
	if _, has, err := app.KV.Load(storage.KeyDarkMode); err == nil && has {
		return app.Store.DarkMode()
	}
	if parser.BoolFlag("dark") {
		return true
	}
	switch app.Config.UI.Theme {
	case "dark":
		return true
	case "light":
		return false
	default:
		return styles.NewThemeAuto().IsDark
	}
}

// =============================================================================
// TUI
// =============================================================================

// runTUI starts the full-screen interface.
func runTUI(parser *ArgParser) error {
	app, err := newApp(parser)
	if err != nil {
		return err
	}
	defer app.Close()

	theme := styles.NewTheme(darkMode(parser, app))
	model := chat.New(app.Store, app.Client, app.Config, theme)
	program := tea.NewProgram(model, tea.WithAltScreen())

	// Hot-reload config edits into the running program.
	if path, err := config.Path(); err == nil {
		if w, err := config.NewWatcher(path, func(cfg *config.Config) {
			program.Send(chat.ConfigReloadedMsg{Config: cfg})
		}); err == nil {
			if w.Watch() == nil {
				defer w.Close()
			}
		}
	}

	_, err = program.Run()
	return err
}
