package loader

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tobich/oasreq/model"
)

// Cache memoizes Load results for repeated reads of the same document. It is
// owned by the caller, never global. Entries are keyed by absolute path and
// revalidated against file size and modification time on every call, so an
// edited document is reloaded transparently. Safe for concurrent use.
type Cache struct {
	loader *Loader

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	spec    *model.Specification
	size    int64
	modTime time.Time
}

// NewCache creates a cache over l. A nil l gets the same defaults as the
// package-level Load.
func NewCache(l *Loader) *Cache {
	if l == nil {
		l = &Loader{AllowFileReferences: true}
	}
	return &Cache{
		loader:  l,
		entries: make(map[string]cacheEntry),
	}
}

// Load returns the cached Specification for path if the file is unchanged
// since the last read, and reloads it otherwise. Load errors are never cached.
func (c *Cache) Load(path string) (*model.Specification, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	c.mu.Lock()
	entry, ok := c.entries[abs]
	c.mu.Unlock()
	if ok && entry.size == info.Size() && entry.modTime.Equal(info.ModTime()) {
		return entry.spec, nil
	}

	spec, err := c.loader.Load(abs)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[abs] = cacheEntry{spec: spec, size: info.Size(), modTime: info.ModTime()}
	c.mu.Unlock()
	return spec, nil
}

// Invalidate drops the cached entry for path, if any.
func (c *Cache) Invalidate(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	c.mu.Lock()
	delete(c.entries, abs)
	c.mu.Unlock()
}
