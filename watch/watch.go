// Package watch classifies files as they are created or modified in a set of
// watched directories.
package watch

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"

	"github.com/gobeaver/mimekit"
)

// Event reports the detected type of a file that changed
type Event struct {
	Path string
	Op   fsnotify.Op
	Type mimekit.Descriptor
}

// Option configures a Watcher
type Option func(*options)

type options struct {
	include []string
	exclude []string
	logger  logrus.FieldLogger
}

// Include only reports files whose base name matches one of the glob patterns,
// e.g. "*.png" or "report-*"
func Include(patterns ...string) Option {
	return func(o *options) {
		o.include = append(o.include, patterns...)
	}
}

// Exclude drops files whose base name matches one of the glob patterns
func Exclude(patterns ...string) Option {
	return func(o *options) {
		o.exclude = append(o.exclude, patterns...)
	}
}

// WithLogger sets where watcher errors are reported
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Watcher wraps fsnotify.Watcher and resolves the type of every changed file
type Watcher struct {
	resolver *mimekit.Resolver
	watcher  *fsnotify.Watcher
	include  []glob.Glob
	exclude  []glob.Glob
	logger   logrus.FieldLogger
}

// New creates a Watcher that classifies files with r.
// Invalid glob patterns are reported as *mimekit.PathError.
func New(r *mimekit.Resolver, opts ...Option) (*Watcher, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logrus.StandardLogger()
	}

	include, err := compileAll(o.include)
	if err != nil {
		return nil, err
	}
	exclude, err := compileAll(o.exclude)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		resolver: r,
		watcher:  w,
		include:  include,
		exclude:  exclude,
		logger:   o.logger,
	}, nil
}

func compileAll(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, &mimekit.PathError{
				Op:   "watch",
				Path: p,
				Err:  err,
			}
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// Add starts watching dir. Subdirectories are not watched.
func (w *Watcher) Add(dir string) error {
	if err := w.watcher.Add(dir); err != nil {
		return &mimekit.PathError{Op: "watch", Path: dir, Err: err}
	}
	return nil
}

// Close stops watching and makes Run return
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Match reports whether path passes the include and exclude filters
func (w *Watcher) Match(path string) bool {
	name := filepath.Base(path)
	for _, g := range w.exclude {
		if g.Match(name) {
			return false
		}
	}
	if len(w.include) == 0 {
		return true
	}
	for _, g := range w.include {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Run delivers an Event to fn for every create or write of a matching file.
// It blocks until ctx is done or the Watcher is closed.
func (w *Watcher) Run(ctx context.Context, fn func(Event)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if !w.Match(ev.Name) {
				continue
			}
			fn(Event{
				Path: ev.Name,
				Op:   ev.Op,
				Type: w.resolver.ByPath(ev.Name),
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.WithError(err).Error("watch error")
		}
	}
}
