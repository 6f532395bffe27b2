// Package dev implements the regenerate-on-change loop used by the dev
// command.
package dev

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watcher watches a discovery document and invokes a callback when it
// changes. Editors write files in bursts, so events are debounced.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	onChange func(path string) error
}

// NewWatcher creates a watcher for the discovery document at path.
func NewWatcher(path string, debounce time.Duration, onChange func(path string) error) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	// Watch the containing directory: editors replace files on save, which
	// would drop a watch on the file itself.
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		watcher:  fw,
		path:     abs,
		debounce: debounce,
		onChange: onChange,
	}, nil
}

// Start blocks, regenerating on every debounced change to the document,
// until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}
			if !w.matches(event) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			log.Info().Str("path", w.path).Msg("discovery document changed, regenerating")
			if err := w.onChange(w.path); err != nil {
				// Keep watching: a half-saved document should not kill the loop.
				log.Error().Err(err).Msg("regeneration failed")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			if err != nil {
				log.Warn().Err(err).Msg("watcher error")
			}
		}
	}
}

// matches reports whether an event concerns the watched document.
func (w *Watcher) matches(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return abs == w.path
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
