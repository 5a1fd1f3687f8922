package demo

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/muurk/focusguide/internal/config"
	"github.com/muurk/focusguide/internal/logging"
)

// TourLoadedMsg carries a tour re-read after its file changed.
type TourLoadedMsg struct {
	Tour *config.Tour
}

// TourErrorMsg reports a tour file that changed but could not be loaded.
type TourErrorMsg struct {
	Err error
}

// reloadDelay collapses the burst of events an editor save produces.
const reloadDelay = 100 * time.Millisecond

// WatchTour reloads the tour at path whenever it changes and delivers the
// result through send, typically tea.Program.Send. It blocks until ctx is
// cancelled.
func WatchTour(ctx context.Context, path string, send func(tea.Msg)) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve tour path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: atomic saves replace the file, which drops a
	// watch placed on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}
	logging.Debug("Watching tour file", zap.String("path", path))

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(reloadDelay, func() {
				send(reload(path))
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warn("Tour watcher error", zap.Error(err))
		}
	}
}

func reload(path string) tea.Msg {
	tour, err := config.Load(path)
	if err != nil {
		logging.Warn("Tour reload failed", zap.String("path", path), zap.Error(err))
		return TourErrorMsg{Err: err}
	}
	logging.Info("Tour reloaded", zap.String("path", path), zap.Int("steps", len(tour.Steps)))
	return TourLoadedMsg{Tour: tour}
}
