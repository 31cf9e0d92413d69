package secretfile

import (
	"context"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jonwraymond/configsecret/value"
)

// DefaultDebounce is the quiet period Watch waits for before re-collecting.
const DefaultDebounce = 100 * time.Millisecond

// ChangeFunc receives the result of a re-collection.
type ChangeFunc func(tree value.Value, err error)

// Watcher re-collects a Source when the directories holding its secret
// files change. Kubernetes rotates mounted secrets by swapping a symlinked
// directory, so directories are watched rather than files.
type Watcher struct {
	src      *Source
	fsw      *fsnotify.Watcher
	debounce time.Duration
	onChange ChangeFunc
	dirs     []string

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// Watch starts watching the secret files named by the current environment.
// Bursts of events within debounce trigger a single Collect whose result is
// passed to onChange. The watcher stops when ctx is done or Close is called.
func (s *Source) Watch(ctx context.Context, debounce time.Duration, onChange ChangeFunc) (*Watcher, error) {
	if onChange == nil {
		return nil, ErrNilChangeFunc
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	dirs, err := s.watchDirs()
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &Error{Kind: ErrFileRead, Err: err}
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, &Error{Kind: ErrFileRead, File: dir, Err: err}
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	w := &Watcher{
		src:      s,
		fsw:      fsw,
		debounce: debounce,
		onChange: onChange,
		dirs:     dirs,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go w.run(ctx)
	return w, nil
}

// Dirs returns the watched directories in sorted order.
func (w *Watcher) Dirs() []string {
	return slices.Clone(w.dirs)
}

// Close stops the watcher and waits for it to exit.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		w.cancel()
		<-w.done
		w.closeErr = w.fsw.Close()
	})
	return w.closeErr
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.onChange(value.Value{}, &Error{Kind: ErrFileRead, Err: err})

		case <-fire:
			fire = nil
			tree, err := w.src.Collect(ctx)
			if ctx.Err() != nil {
				return
			}
			w.onChange(tree, err)
		}
	}
}

// watchDirs returns the sorted, de-duplicated parent directories of the
// files named by the current environment.
func (s *Source) watchDirs() ([]string, error) {
	environ := s.environ()

	var lookup func(string) (string, bool)
	if s.cfg.ExpandPaths {
		lookup = lookupFunc(environ)
	}

	var dirs []string
	for _, c := range Scan(environ, s.cfg) {
		file := c.Path
		if lookup != nil {
			expanded, err := expandStrict(c.Path, lookup)
			if err != nil {
				return nil, &Error{Kind: ErrUnresolvedVariable, Variable: c.Name, Err: err}
			}
			file = expanded
		}
		dir, err := filepath.Abs(filepath.Dir(file))
		if err != nil {
			return nil, &Error{Kind: ErrFileRead, Variable: c.Name, File: file, Err: err}
		}
		dirs = append(dirs, dir)
	}
	slices.Sort(dirs)
	return slices.Compact(dirs), nil
}
