package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	// eventChannelBuffer is the size of the watch event channel.
	eventChannelBuffer = 500

	defaultDebounceDelay = 500 * time.Millisecond
)

// WatchConfig configures bibliography file watching.
type WatchConfig struct {
	// DebounceDelay is how long to wait for more changes before processing.
	DebounceDelay string `yaml:"debounce_delay"`

	// Extensions lists file extensions to watch (e.g., [".json"]).
	Extensions []string `yaml:"extensions"`
}

// DefaultWatchConfig returns default watch configuration.
func DefaultWatchConfig() WatchConfig {
	return WatchConfig{
		DebounceDelay: "500ms",
		Extensions:    []string{".json"},
	}
}

// GetDebounceDelay returns the debounce delay as a duration.
func (c WatchConfig) GetDebounceDelay() time.Duration {
	if c.DebounceDelay == "" {
		return defaultDebounceDelay
	}
	d, err := time.ParseDuration(c.DebounceDelay)
	if err != nil || d <= 0 {
		return defaultDebounceDelay
	}
	return d
}

// WatchOperation indicates the type of file operation.
type WatchOperation string

// WatchOpCreate, WatchOpModify, and WatchOpDelete enumerate the file watch operation types.
const (
	WatchOpCreate WatchOperation = "create"
	WatchOpModify WatchOperation = "modify"
	WatchOpDelete WatchOperation = "delete"
)

// WatchEvent represents a bibliography file change.
type WatchEvent struct {
	// Path is the file path relative to the watched directory.
	Path string

	// AbsPath is the path as seen by the watcher.
	AbsPath string

	// Operation is the type of change.
	Operation WatchOperation
}

// Watcher watches a directory tree for bibliography file changes.
type Watcher struct {
	config     WatchConfig
	root       string
	watcher    *fsnotify.Watcher
	logger     *slog.Logger
	extensions map[string]bool

	// Debouncing: collect changes before processing
	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op

	// Hash-based change detection, keyed by relative path
	hashMu sync.RWMutex
	hashes map[string]string

	events chan WatchEvent

	droppedEvents atomic.Int64
}

// NewWatcher creates a watcher for the tree rooted at root.
func NewWatcher(config WatchConfig, root string, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	exts := config.Extensions
	if len(exts) == 0 {
		exts = DefaultWatchConfig().Extensions
	}
	extensions := make(map[string]bool)
	for _, ext := range exts {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions[strings.ToLower(ext)] = true
	}

	return &Watcher{
		config:     config,
		root:       root,
		watcher:    fsw,
		logger:     logger,
		extensions: extensions,
		pending:    make(map[string]fsnotify.Op),
		hashes:     make(map[string]string),
		events:     make(chan WatchEvent, eventChannelBuffer),
	}, nil
}

// Events returns the channel of watch events. It is closed when the watcher
// stops.
func (w *Watcher) Events() <-chan WatchEvent {
	return w.events
}

// Start begins watching. Existing files are hashed first so that only real
// content changes produce events.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.addWatchesRecursive(w.root); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("Bibliography watcher started",
		"root", w.root,
		"debounce", w.config.GetDebounceDelay())
	return nil
}

// Stop stops the watcher.
// The events channel is closed by processEvents when it exits.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// SetHash records the content hash for a relative path.
func (w *Watcher) SetHash(path, hash string) {
	w.hashMu.Lock()
	defer w.hashMu.Unlock()
	w.hashes[path] = hash
}

// GetHash returns the recorded content hash for a relative path.
func (w *Watcher) GetHash(path string) (string, bool) {
	w.hashMu.RLock()
	defer w.hashMu.RUnlock()
	hash, ok := w.hashes[path]
	return hash, ok
}

// DroppedEvents returns the number of events dropped due to channel overflow.
func (w *Watcher) DroppedEvents() int64 {
	return w.droppedEvents.Load()
}

// addWatchesRecursive adds watches to all directories and hashes the
// watched files already present.
func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			if w.watches(path) {
				if content, err := os.ReadFile(path); err == nil {
					w.SetHash(w.rel(path), contentHash(content))
				}
			}
			return nil
		}

		// Skip hidden directories
		base := filepath.Base(path)
		if strings.HasPrefix(base, ".") && path != root {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory",
				"path", path,
				"error", err)
		} else {
			w.logger.Debug("Watching directory", "path", path)
		}
		return nil
	})
}

// processEvents handles fsnotify events with debouncing.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)
	ticker := time.NewTicker(w.config.GetDebounceDelay())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

// handleFSEvent processes a single fsnotify event.
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	path := event.Name

	if !w.watches(path) {
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				w.handleNewDirectory(path)
			}
		}
		return
	}

	w.pendingMu.Lock()
	w.pending[path] |= event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("Bibliography change detected",
		"path", w.rel(path),
		"op", event.Op.String())
}

// handleNewDirectory adds a watch to a newly created directory.
func (w *Watcher) handleNewDirectory(path string) {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return
	}

	if err := w.watcher.Add(path); err != nil {
		w.logger.Warn("Failed to watch new directory",
			"path", path,
			"error", err)
	} else {
		w.logger.Debug("Added watch for new directory", "path", path)
	}
}

// flushPending processes accumulated changes.
func (w *Watcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	toProcess := w.pending
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	for path := range toProcess {
		select {
		case <-ctx.Done():
			return
		default:
		}

		relPath := w.rel(path)
		event := WatchEvent{Path: relPath, AbsPath: path}

		content, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			w.hashMu.Lock()
			_, tracked := w.hashes[relPath]
			delete(w.hashes, relPath)
			w.hashMu.Unlock()

			if tracked {
				event.Operation = WatchOpDelete
				w.sendEvent(event)
			}
			continue
		}
		if err != nil {
			w.logger.Warn("Failed to read file for hash check",
				"path", relPath,
				"error", err)
			continue
		}

		newHash := contentHash(content)
		oldHash, hadHash := w.GetHash(relPath)
		if hadHash && oldHash == newHash {
			continue
		}
		w.SetHash(relPath, newHash)

		if hadHash {
			event.Operation = WatchOpModify
		} else {
			event.Operation = WatchOpCreate
		}
		w.sendEvent(event)
	}
}

// sendEvent sends an event to the output channel.
func (w *Watcher) sendEvent(event WatchEvent) {
	select {
	case w.events <- event:
		w.logger.Debug("Sent watch event",
			"path", event.Path,
			"op", event.Operation)
	default:
		dropped := w.droppedEvents.Add(1)
		w.logger.Warn("Event channel full, dropping event",
			"path", event.Path,
			"total_dropped", dropped)
	}
}

// watches reports whether path has a watched extension.
func (w *Watcher) watches(path string) bool {
	return w.extensions[strings.ToLower(filepath.Ext(path))]
}

func (w *Watcher) rel(path string) string {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return path
	}
	return rel
}

func contentHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
