package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/burrow/internal/backend"
	"github.com/atomicstack/burrow/internal/logging"
	"github.com/atomicstack/burrow/internal/message"
	"github.com/atomicstack/burrow/internal/settings"
	"github.com/atomicstack/burrow/internal/store"
	"github.com/atomicstack/burrow/internal/ui"
	"github.com/atomicstack/burrow/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	StartURL   string
	Width      int
	Height     int
	ShowFooter bool
	DataDir    string
	Settings   settings.Settings
}

// BookmarksPath returns the bookmark file kept in dataDir.
func BookmarksPath(dataDir string) string {
	return filepath.Join(dataDir, "bookmarks.toml")
}

// Run bootstraps the backend and executes the Bubble Tea program. It returns
// an error when the UI stopped because the backend went away.
func Run(cfg Config) error {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	downloadDir := ""
	if home != "" {
		downloadDir = cfg.Settings.DownloadDir(home)
	} else if filepath.IsAbs(cfg.Settings.DownloadPath) {
		downloadDir = cfg.Settings.DownloadPath
	}
	start := cfg.StartURL
	if start == "" {
		start = cfg.Settings.Homepage
	}

	queue := message.NewQueue(message.DefaultQueueSize)
	bookmarks := store.NewBookmarks(BookmarksPath(cfg.DataDir))
	ctrl := backend.NewController(backend.Options{
		Queue:       queue,
		Bookmarks:   bookmarks,
		History:     store.NewHistory(filepath.Join(cfg.DataDir, "history.toml"), store.DefaultHistoryLimit),
		DownloadDir: downloadDir,
		Homepage:    start,
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	backendErr := make(chan error, 1)
	go func() {
		backendErr <- ctrl.Run(ctx)
	}()

	model := ui.NewModel(ui.Options{
		Width:         cfg.Width,
		Height:        cfg.Height,
		ShowFooter:    cfg.ShowFooter,
		Queue:         queue,
		Bus:           command.New(ctrl.Requests()).WithDone(ctrl.Done()),
		DownloadDir:   downloadDir,
		BookmarksPath: bookmarks.Path(),
		Settings:      cfg.Settings,
	})
	logging.Info("burrow starting at %q", start)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, runErr := program.Run()
	logging.Info("ui stopped, shutting down backend")
	cancel()
	queue.Close()
	if err := <-backendErr; err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("backend: %w", err)
	}
	if errors.Is(runErr, tea.ErrProgramKilled) {
		runErr = nil
	}
	if runErr != nil {
		return runErr
	}
	return model.Fatal()
}
