package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/flight"
)

const (
	ProcessedDir = "processed"
	FailedDir    = "failed"
)

// DefaultSettle is how long a file must stay unchanged before it is imported.
const DefaultSettle = 500 * time.Millisecond

type Importer interface {
	Import(ctx context.Context, req dto.ImportRequest, requester flight.OverrideRequester) (dto.ImportSummary, error)
}

// Watcher imports arrival files dropped into a directory and moves each one
// into processed/ or failed/ afterwards.
type Watcher struct {
	Dir       string
	Settle    time.Duration
	importer  Importer
	requester flight.OverrideRequester
	supports  func(fileName string) bool

	mu      sync.Mutex
	pending map[string]*time.Timer
}

func New(dir string, importer Importer, requester flight.OverrideRequester, supports func(string) bool) *Watcher {
	return &Watcher{
		Dir:       dir,
		Settle:    DefaultSettle,
		importer:  importer,
		requester: requester,
		supports:  supports,
		pending:   make(map[string]*time.Timer),
	}
}

// Start watches Dir until ctx is done.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.prepare(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(w.Dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", w.Dir, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				w.stopPending()
				return
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 && w.accepts(evt.Name) {
					w.schedule(ctx, evt.Name)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.WarnContext(ctx, "watcher error", slog.String("error", err.Error()))
			}
		}
	}()

	slog.InfoContext(ctx, "watching for arrival files", slog.String("dir", w.Dir))

	return nil
}

// Backfill imports files already present in Dir.
func (w *Watcher) Backfill(ctx context.Context) error {
	if err := w.prepare(); err != nil {
		return err
	}

	entries, err := os.ReadDir(w.Dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", w.Dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(w.Dir, entry.Name())
		if entry.IsDir() || !w.accepts(path) {
			continue
		}
		if err := w.ImportFile(ctx, path); err != nil {
			slog.WarnContext(ctx, "backfill import failed",
				slog.String("file", path),
				slog.String("error", err.Error()))
		}
	}

	return nil
}

// ImportFile imports one file and moves it away. The returned error is the
// import error, if any; the file then lands in failed/.
func (w *Watcher) ImportFile(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		// already moved by an earlier event
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	summary, importErr := w.importer.Import(ctx, dto.ImportRequest{
		FileName: filepath.Base(path),
		Content:  content,
	}, w.requester)

	target := ProcessedDir
	lines := summary.Log
	if importErr != nil {
		target = FailedDir
		lines = []string{importErr.Error()}
	}

	if err := w.moveTo(path, target, lines); err != nil {
		slog.ErrorContext(ctx, "failed to move imported file",
			slog.String("file", path),
			slog.String("error", err.Error()))
	}

	return importErr
}

func (w *Watcher) prepare() error {
	for _, sub := range []string{ProcessedDir, FailedDir} {
		if err := os.MkdirAll(filepath.Join(w.Dir, sub), 0o755); err != nil {
			return fmt.Errorf("create %s dir: %w", sub, err)
		}
	}

	return nil
}

func (w *Watcher) accepts(path string) bool {
	if filepath.Dir(path) != filepath.Clean(w.Dir) {
		return false
	}

	name := filepath.Base(path)

	return !strings.HasPrefix(name, ".") && w.supports(name)
}

// schedule imports path once it has settled, restarting the wait on every
// new event for the same file.
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.Settle)
		return
	}

	w.pending[path] = time.AfterFunc(w.Settle, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		if err := w.ImportFile(ctx, path); err != nil {
			slog.WarnContext(ctx, "watched import failed",
				slog.String("file", path),
				slog.String("error", err.Error()))
		}
	})
}

func (w *Watcher) stopPending() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
}

// moveTo moves path into dir/target and writes the run log beside it.
func (w *Watcher) moveTo(path, target string, lines []string) error {
	dest := filepath.Join(w.Dir, target, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		return err
	}

	if len(lines) == 0 {
		return nil
	}

	return os.WriteFile(dest+".log", []byte(strings.Join(lines, "\n")+"\n"), 0o644)
}
