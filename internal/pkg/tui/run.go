package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/endorses/lippyphone/internal/pkg/call"
	"github.com/endorses/lippyphone/internal/pkg/directory"
	"github.com/endorses/lippyphone/internal/pkg/keys"
	"github.com/endorses/lippyphone/internal/pkg/logger"
	"github.com/endorses/lippyphone/internal/pkg/nav"
	"github.com/endorses/lippyphone/internal/pkg/signals"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
)

// Config selects how the TUI starts
type Config struct {
	Theme         string
	StartSection  string
	DirectoryFile string
	Watch         bool
	LogFile       string
	Settings      Settings
}

// Run starts the TUI and blocks until the user quits, a shutdown signal
// arrives or ctx ends. An active call is ended on the way out.
func Run(ctx context.Context, cfg Config) error {
	restoreLog, err := redirectLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer restoreLog()

	dir, err := directory.Open(cfg.DirectoryFile)
	if err != nil {
		return fmt.Errorf("failed to load directory: %w", err)
	}
	dirStore := directory.NewStore(dir)

	start, err := nav.ParseSection(cfg.StartSection)
	if err != nil {
		logger.Warn("Unknown start section, using chats", "section", cfg.StartSection)
		start = nav.SectionChats
	}

	hub := keys.NewHub()
	router := nav.NewRouter(start)
	bridge := NewCallBridge()
	defer bridge.Stop()

	ctrl := call.NewController(
		call.WithNavigator(router),
		call.WithKeyboard(hub),
		call.WithOnChange(bridge.Notify),
	)
	defer ctrl.EndCall()

	model := NewModel(Options{
		Controller: ctrl,
		Router:     router,
		Keyboard:   hub,
		Directory:  dirStore,
		Theme:      themes.GetTheme(cfg.Theme),
		Settings:   cfg.Settings,
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	go bridge.Run(p.Send)
	dirStore.Subscribe(func(d *directory.Directory) {
		p.Send(DirectoryReloadedMsg{Dir: d})
	})

	if cfg.Watch && cfg.DirectoryFile != "" {
		w := directory.NewWatcher(cfg.DirectoryFile, dirStore,
			directory.WithErrorHandler(func(err error) {
				p.Send(DirectoryErrorMsg{Err: err})
			}))
		if err := w.Start(ctx); err != nil {
			logger.Warn("Directory watch unavailable", "path", cfg.DirectoryFile, "error", err)
		} else {
			defer w.Stop()
		}
	}

	cleanup := signals.SetupHandlerWithCallback(ctx, func() {
		ctrl.EndCall()
		p.Quit()
	})
	defer cleanup()

	logger.Info("TUI started", "section", string(start), "directory", dir.Source())
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// redirectLogging keeps log output off the terminal while the TUI owns
// it. Records go to the dev console buffer when LOG_LEVEL=DEBUG, else to
// logFile, else nowhere. The returned func restores stderr output.
func redirectLogging(logFile string) (restore func(), err error) {
	if logger.InitConsole() {
		logger.EnableConsoleCapture()
		return func() { logger.SetOutput(os.Stderr) }, nil
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger.SetOutput(f)
		return func() {
			logger.SetOutput(os.Stderr)
			if err := f.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
			}
		}, nil
	}

	logger.Disable()
	return logger.Enable, nil
}
