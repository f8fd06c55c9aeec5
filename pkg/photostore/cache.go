package photostore

import (
	"fmt"
	"io/fs"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheEntry struct {
	size    int64
	modTime time.Time
	data    []byte
}

// readCache holds recently read photos. An entry is only served while the
// file on disk still has the size and mtime it had when cached.
type readCache struct {
	entries *lru.Cache[string, cacheEntry]
}

func newReadCache(size int) (*readCache, error) {
	if size <= 0 {
		return &readCache{}, nil
	}
	entries, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil, fmt.Errorf("creating photo cache: %w", err)
	}
	return &readCache{entries: entries}, nil
}

func (c *readCache) get(name string, info fs.FileInfo) ([]byte, bool) {
	if c.entries == nil {
		return nil, false
	}
	entry, ok := c.entries.Get(name)
	if !ok {
		return nil, false
	}
	if entry.size != info.Size() || !entry.modTime.Equal(info.ModTime()) {
		c.entries.Remove(name)
		return nil, false
	}
	return entry.data, true
}

func (c *readCache) add(name string, info fs.FileInfo, data []byte) {
	if c.entries == nil {
		return
	}
	c.entries.Add(name, cacheEntry{size: info.Size(), modTime: info.ModTime(), data: data})
}

func (c *readCache) len() int {
	if c.entries == nil {
		return 0
	}
	return c.entries.Len()
}
