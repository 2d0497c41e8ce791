package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/go-cmp/cmp"
)

const watchDebounce = 250 * time.Millisecond

// Watch reloads the config at path whenever the file changes and passes each
// valid result to onChange. A file that fails to load or validate is
// rejected and the diff against the last accepted content is logged. Watch
// blocks until ctx is done.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	target, err := canonicalPath(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	defer watcher.Close()

	// Editors replace files on save, so watch the directory and filter.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch config dir: %w", err)
	}

	last, _ := os.ReadFile(target)

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
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
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
				timerCh = timer.C
			} else {
				if !timer.Stop() {
					<-timerCh
				}
				timer.Reset(watchDebounce)
			}
		case <-timerCh:
			timer = nil
			timerCh = nil
			if next, ok := reloadWatched(target, last, onChange); ok {
				last = next
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Config: watcher error: %v", err)
		}
	}
}

func reloadWatched(target string, last []byte, onChange func(*Config)) ([]byte, bool) {
	data, err := os.ReadFile(target)
	if err != nil {
		log.Printf("Config: failed to read %s: %v", target, err)
		return nil, false
	}

	res, err := LoadFromPath(target)
	if err != nil {
		log.Printf("Config: change rejected: %v", err)
		if diff := DiffSerialized(last, data); diff != "" {
			log.Printf("Config: diff vs last valid config:\n%s", diff)
		}
		return nil, false
	}

	log.Printf("Config: reloaded %s", target)
	onChange(res.Config)
	return data, true
}

// DiffSerialized returns a line diff between two serialized configurations,
// or "" when they match.
func DiffSerialized(previous, current []byte) string {
	return cmp.Diff(splitLines(previous), splitLines(current))
}

func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}
