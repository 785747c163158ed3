package internal

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/konstankino/nameit/internal/types"
)

const defaultSettleDelay = 100 * time.Millisecond

// Watcher re-lints files when they are written or created. A file whose
// content did not change since its last report is not reported again.
type Watcher struct {
	engine   *Engine
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	accept   func(path string) bool
	onReport func(tt.FileReport)

	// files holds explicitly watched files; their directory is watched
	// but only these files are linted.
	files       map[string]struct{}
	dirs        map[string]struct{}
	cache       *Cache
	settleDelay time.Duration
}

// NewWatcher creates a watcher. accept decides which files inside watched
// directories are linted; onReport receives every fresh report.
func NewWatcher(engine *Engine, logger *zap.Logger, accept func(string) bool, onReport func(tt.FileReport)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating file watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		engine:      engine,
		watcher:     fw,
		logger:      logger,
		accept:      accept,
		onReport:    onReport,
		files:       make(map[string]struct{}),
		dirs:        make(map[string]struct{}),
		cache:       NewCache(),
		settleDelay: defaultSettleDelay,
	}, nil
}

// Add registers files and directories. Directories are watched recursively,
// skipping hidden ones.
// Add must not be called once Watch is running.
func (w *Watcher) Add(paths ...string) error {
	for _, path := range paths {
		path = filepath.Clean(path)
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("error accessing %s: %w", path, err)
		}

		if !info.IsDir() {
			w.files[path] = struct{}{}
			if err := w.watcher.Add(filepath.Dir(path)); err != nil {
				return fmt.Errorf("error watching %s: %w", path, err)
			}
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			// hidden directories are not linted, see scanner.Scan
			if p != path && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			w.dirs[p] = struct{}{}
			return w.watcher.Add(p)
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}
	return nil
}

// Close releases the underlying file watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Watch handles file events until ctx is done, then closes the watcher.
func (w *Watcher) Watch(ctx context.Context) error {
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleFileEvent(ctx, event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("File watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleFileEvent(ctx context.Context, event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	path := filepath.Clean(event.Name)
	if !w.isTarget(path) {
		return
	}

	// give the writer a moment to finish before the file is read
	select {
	case <-ctx.Done():
		return
	case <-time.After(w.settleDelay):
	}

	content, err := os.ReadFile(path)
	if err != nil {
		// the file may be gone again by the time it is read
		w.cache.Invalidate(path)
		w.logger.Warn("Error linting file", zap.String("file", path), zap.Error(fmt.Errorf("%w: %w", ErrInputUnavailable, err)))
		return
	}
	if _, ok := w.cache.Get(path, content); ok {
		w.logger.Debug("File unchanged", zap.String("file", path))
		return
	}

	findings := w.engine.RunSource(content)
	w.cache.Set(path, content, findings)

	w.logger.Debug("Linted file", zap.String("file", path), zap.Int("findings", len(findings)))
	w.onReport(tt.FileReport{Filename: path, Findings: findings})
}

func (w *Watcher) isTarget(path string) bool {
	if _, ok := w.files[path]; ok {
		return true
	}
	if _, ok := w.dirs[filepath.Dir(path)]; !ok {
		return false
	}
	return w.accept == nil || w.accept(path)
}
