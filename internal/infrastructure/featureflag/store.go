// Package featureflag serves runtime switches from a JSON document on disk.
// The file is re-read when it changes so flags can be flipped without a restart.
package featureflag

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"togetherly/internal/shared/logger"
)

// Well-known flag keys.
const (
	KeyGate7DayToPaid    = "gate7DayToPaid"
	KeyReelsQuotaMonthly = "reelsQuotaMonthly"
)

// versionKey is reported through Version and hidden from All.
const versionKey = "version"

const defaultVersion = "local"

// Store holds the latest successfully parsed flags. A missing file means no
// flags; a malformed file keeps the previous snapshot.
type Store struct {
	path     string
	logger   logger.Interface
	debounce time.Duration

	mu      sync.RWMutex
	flags   map[string]any
	lower   map[string]string
	version string

	subMu sync.Mutex
	subs  []func()

	watcher  *fsnotify.Watcher
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewStore loads path once. Call Watch to follow later edits.
func NewStore(path string, log logger.Interface) (*Store, error) {
	s := &Store{
		path:     path,
		logger:   log,
		debounce: 200 * time.Millisecond,
		flags:    map[string]any{},
		lower:    map[string]string{},
		version:  defaultVersion,
		done:     make(chan struct{}),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the file.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.replace(map[string]any{})
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read flags file: %w", err)
	}

	doc := map[string]any{}
	if len(strings.TrimSpace(string(raw))) > 0 {
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("failed to parse flags file %s: %w", s.path, err)
		}
	}
	s.replace(doc)
	return nil
}

func (s *Store) replace(doc map[string]any) {
	version := defaultVersion
	if v, ok := doc[versionKey].(string); ok && v != "" {
		version = v
	}
	delete(doc, versionKey)

	lower := make(map[string]string, len(doc))
	for k := range doc {
		lower[strings.ToLower(k)] = k
	}

	s.mu.Lock()
	s.flags = doc
	s.lower = lower
	s.version = version
	s.mu.Unlock()
}

func (s *Store) lookup(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.flags[key]; ok {
		return v, true
	}
	if k, ok := s.lower[strings.ToLower(key)]; ok {
		return s.flags[k], true
	}
	return nil, false
}

// Bool accepts JSON booleans, numbers and the strings understood by strconv.ParseBool.
func (s *Store) Bool(key string, def bool) bool {
	v, ok := s.lookup(key)
	if !ok {
		return def
	}
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
			return b
		}
	}
	return def
}

func (s *Store) Int(key string, def int) int {
	v, ok := s.lookup(key)
	if !ok {
		return def
	}
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
	}
	return def
}

// All returns a copy of every flag.
func (s *Store) All() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]any, len(s.flags))
	for k, v := range s.flags {
		out[k] = v
	}
	return out
}

// Version is the document's "version" field, or "local".
func (s *Store) Version() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// OnChange registers fn to run after every successful reload triggered by Watch.
func (s *Store) OnChange(fn func()) {
	s.subMu.Lock()
	s.subs = append(s.subs, fn)
	s.subMu.Unlock()
}

// Watch follows the directory holding the flags file so editor rename-over
// saves are picked up.
func (s *Store) Watch() error {
	if s.path == "" {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create flags watcher: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	s.watcher = w

	s.wg.Add(1)
	go s.loop()
	return nil
}

// Close stops watching. Safe to call more than once.
func (s *Store) Close() error {
	s.stopOnce.Do(func() { close(s.done) })
	s.wg.Wait()
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

func (s *Store) loop() {
	defer s.wg.Done()

	target := filepath.Clean(s.path)
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-s.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				timer.Reset(s.debounce)
			}
			fire = timer.C

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Errorw("flags watcher error", "error", err)

		case <-fire:
			fire = nil
			if err := s.Reload(); err != nil {
				s.logger.Warnw("keeping previous flags", "path", s.path, "error", err)
				continue
			}
			s.logger.Infow("feature flags reloaded", "path", s.path, "version", s.Version())
			s.notify()
		}
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	subs := append([]func(){}, s.subs...)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
