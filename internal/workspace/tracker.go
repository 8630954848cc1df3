package workspace

import (
	"context"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"qwikshortcuts/internal/project"
)

// Tracker holds the current Context for a long-lived session. It watches
// the workspace root and marks the context stale when package.json or a
// lockfile changes; the next Current call reloads it.
type Tracker struct {
	mu      sync.Mutex
	root    string
	markers project.MarkerTable
	log     *zap.Logger
	watcher *fsnotify.Watcher

	current Context
	stale   bool
	loads   int

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
	closed  bool
}

// NewTracker creates a tracker for root. The context is loaded lazily.
func NewTracker(root string, markers project.MarkerTable, log *zap.Logger) (*Tracker, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if markers == nil {
		markers = project.DefaultMarkers()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Tracker{
		root:    root,
		markers: markers,
		log:     log,
		watcher: watcher,
		stale:   true,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Start begins watching the workspace root. It does not block.
func (t *Tracker) Start(ctx context.Context) error {
	t.mu.Lock()
	if t.running || t.closed {
		t.mu.Unlock()
		return nil
	}
	t.running = true
	t.mu.Unlock()

	if err := t.watcher.Add(t.root); err != nil {
		// The root may not exist yet; Current still reports Exists=false.
		t.log.Warn("workspace watch failed", zap.String("root", t.root), zap.Error(err))
	} else {
		t.log.Debug("watching workspace", zap.String("root", t.root))
	}

	go t.run(ctx)
	return nil
}

// Stop ends the watch loop and releases the watcher.
func (t *Tracker) Stop() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	wasRunning := t.running
	t.running = false
	t.mu.Unlock()

	if wasRunning {
		close(t.stopCh)
		<-t.doneCh
	}
	if err := t.watcher.Close(); err != nil {
		t.log.Warn("close workspace watcher", zap.Error(err))
	}
}

// Current returns the workspace context, reloading it if it is stale.
func (t *Tracker) Current() Context {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stale {
		t.current = Load(t.root, t.markers)
		t.stale = false
		t.loads++
		t.log.Debug("workspace context loaded",
			zap.String("kind", string(t.current.Classification.Kind())),
			zap.String("package_manager", string(t.current.PackageManager)))
	}
	return t.current
}

// Invalidate forces the next Current call to reload.
func (t *Tracker) Invalidate() {
	t.mu.Lock()
	t.stale = true
	t.mu.Unlock()
}

// Loads reports how many times the context has been computed.
func (t *Tracker) Loads() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loads
}

func (t *Tracker) run(ctx context.Context) {
	defer close(t.doneCh)

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.stopCh:
			return
		case event, ok := <-t.watcher.Events:
			if !ok {
				return
			}
			t.handleEvent(event)
		case err, ok := <-t.watcher.Errors:
			if !ok {
				return
			}
			t.log.Warn("workspace watcher error", zap.Error(err))
		}
	}
}

func (t *Tracker) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	if !(Context{Markers: t.markers}).Watched(event.Name) {
		return
	}
	t.log.Debug("workspace changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
	t.Invalidate()
}
