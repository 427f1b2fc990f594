package lightsetups

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// WatchedCatalog caches one scan of the setups directory and drops the
// cache whenever the directory changes on disk. It is an opt-in for hosts
// whose chooser lists a large catalog; ApplySetup keeps re-scanning
// regardless, so the cache can never make an apply act on stale paths.
type WatchedCatalog struct {
	root    string
	log     Logger
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	entries []SetupEntry
	valid   bool
}

func NewWatchedCatalog(root string, log Logger) (*WatchedCatalog, error) {
	// Initial scan bootstraps the directory on first run, so the watch
	// target exists before Add.
	entries := ScanSetups(root, log)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Join(root, setupsDirName)); err != nil {
		watcher.Close()
		return nil, err
	}

	wc := &WatchedCatalog{
		root:    root,
		log:     log,
		watcher: watcher,
		entries: entries,
		valid:   true,
	}
	go wc.watch()

	return wc, nil
}

// Entries returns the cached catalog, re-scanning only after an
// invalidation. The returned slice is a copy.
func (wc *WatchedCatalog) Entries() []SetupEntry {
	wc.mu.Lock()
	defer wc.mu.Unlock()

	if !wc.valid {
		wc.entries = ScanSetups(wc.root, wc.log)
		wc.valid = true
	}

	out := make([]SetupEntry, len(wc.entries))
	copy(out, wc.entries)
	return out
}

// Invalidate forces the next Entries call to re-scan.
func (wc *WatchedCatalog) Invalidate() {
	wc.mu.Lock()
	wc.valid = false
	wc.mu.Unlock()
}

func (wc *WatchedCatalog) Close() error {
	return wc.watcher.Close()
}

func (wc *WatchedCatalog) watch() {
	for {
		select {
		case ev, ok := <-wc.watcher.Events:
			if !ok {
				return
			}
			wc.log.Debugf("setups directory changed (%s), dropping catalog cache", ev.Op)
			wc.Invalidate()
		case err, ok := <-wc.watcher.Errors:
			if !ok {
				return
			}
			wc.log.Warnf("catalog watcher error: %v", err)
		}
	}
}
