package devserver

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// fingerprint captures the observable state of one source file. Two scans
// that produce the same fingerprint for every file mean nothing changed.
type fingerprint struct {
	modTime time.Time
	size    int64
}

// Watcher polls a set of directories for changes to matching source files.
// Runs every second and invokes the onChange callback once per scan that
// observed a difference.
type Watcher struct {
	dirs     []string
	exts     []string
	onChange func()
	cron     *cron.Cron
	logger   *slog.Logger

	mu       sync.Mutex
	snapshot map[string]fingerprint
}

// NewWatcher creates a watcher over the given directories. Only files whose
// extension appears in exts (e.g. ".go", ".json") are tracked. The onChange
// callback fires on the watcher's goroutine.
func NewWatcher(dirs []string, exts []string, onChange func(), logger *slog.Logger) *Watcher {
	return &Watcher{
		dirs:     dirs,
		exts:     exts,
		onChange: onChange,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "watcher"),
	}
}

// Start primes the snapshot and begins scanning every second. The priming
// scan means pre-existing files never count as a change.
func (w *Watcher) Start() error {
	w.mu.Lock()
	w.snapshot = w.scan()
	w.mu.Unlock()

	_, err := w.cron.AddFunc("* * * * * *", func() {
		if w.Changed() {
			w.onChange()
		}
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	w.logger.InfoContext(context.Background(), "Source watcher started (scanning every second)",
		"dirs", w.dirs, "exts", w.exts)
	return nil
}

// Stop stops the scan loop.
func (w *Watcher) Stop() {
	w.cron.Stop()
	w.logger.InfoContext(context.Background(), "Source watcher stopped")
}

// Changed rescans the tree and reports whether anything differs from the
// previous scan. The fresh scan becomes the new baseline either way.
func (w *Watcher) Changed() bool {
	current := w.scan()

	w.mu.Lock()
	defer w.mu.Unlock()

	changed := !snapshotsEqual(w.snapshot, current)
	w.snapshot = current
	return changed
}

// scan walks every watched directory and fingerprints matching files.
// Directories that do not exist are skipped, not errors: a watched path may
// appear later.
func (w *Watcher) scan() map[string]fingerprint {
	result := make(map[string]fingerprint)

	for _, dir := range w.dirs {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !slices.Contains(w.exts, filepath.Ext(path)) {
				return nil
			}

			info, infoErr := d.Info()
			if infoErr != nil {
				// File vanished between the walk and the stat.
				return nil
			}
			result[path] = fingerprint{modTime: info.ModTime(), size: info.Size()}
			return nil
		})
	}

	return result
}

func snapshotsEqual(a, b map[string]fingerprint) bool {
	if len(a) != len(b) {
		return false
	}
	for path, fp := range a {
		other, ok := b[path]
		if !ok || !fp.modTime.Equal(other.modTime) || fp.size != other.size {
			return false
		}
	}
	return true
}
