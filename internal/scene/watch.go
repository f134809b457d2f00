package scene

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long Watch waits after the last change before reloading.
// Editors often save in several steps (truncate, write, rename).
const settle = 150 * time.Millisecond

// Watch reloads the description at path whenever the file changes and
// passes each successfully parsed result to onChange. Parse errors are logged
// and the previous description stays in effect. The directory is watched
// rather than the file so that atomic saves (write temp + rename) are seen.
// Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, log *slog.Logger, onChange func(Description)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("scene: watch: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("scene: watch: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("scene: watch %s: %w", filepath.Dir(abs), err)
	}
	log.Info("scene: watching", "path", abs)

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				timer.Reset(settle)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("scene: watch error", "err", err)
		case <-timer.C:
			d, err := Load(abs)
			if err != nil {
				log.Warn("scene: reload failed", "err", err)
				continue
			}
			log.Info("scene: reloaded", "path", abs, "objects", len(d.Objects))
			onChange(d)
		}
	}
}
