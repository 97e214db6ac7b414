package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-runs a conversion whenever its input file changes.
type Watcher struct {
	conv     *Converter
	log      *slog.Logger
	input    string
	output   string
	debounce time.Duration

	// OnResult is called after every successful conversion.
	OnResult func(*Result)
}

func NewWatcher(conv *Converter, log *slog.Logger, input, output string, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}
	return &Watcher{
		conv:     conv,
		log:      log,
		input:    input,
		output:   output,
		debounce: debounce,
	}
}

// Run converts once, then again after each burst of changes to the input,
// until ctx is done. Conversion failures are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	// Watch the directory: editors often replace the file instead of
	// writing it in place.
	target := filepath.Clean(w.input)
	dir := filepath.Dir(target)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.log.Info("watching input", "input", target, "output", w.output)

	w.convert(ctx)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug("input changed", "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", "error", err)

		case <-timer.C:
			w.convert(ctx)
		}
	}
}

func (w *Watcher) convert(ctx context.Context) {
	res, err := w.conv.Convert(ctx, w.input, w.output)
	if err != nil {
		w.log.Error("conversion failed", "input", w.input, "error", err)
		return
	}
	if w.OnResult != nil {
		w.OnResult(res)
	}
}
