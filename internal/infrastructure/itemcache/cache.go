// Package itemcache persists resolved item class info to a single JSON file.
package itemcache

import (
	"fmt"
	"os"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/dylan-park/TradeBell/internal/domain"
	"github.com/dylan-park/TradeBell/internal/domain/entity"
	"github.com/dylan-park/TradeBell/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Cache is an in-memory classid -> item info map mirrored to a file on every
// insert. Entries are never evicted; the map grows for the process lifetime.
type Cache struct {
	mu   sync.RWMutex
	data map[string]entity.ItemInfo
	path string
}

// New loads the cache file at path. A missing file is not an error and yields
// an empty cache.
func New(path string) (*Cache, error) {
	data := make(map[string]entity.ItemInfo)

	content, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("read cache file %q: %w", path, err)
	case len(content) > 0:
		if err := json.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("parse cache file %q: %w", path, err)
		}
	}

	return &Cache{
		data: data,
		path: path,
	}, nil
}

// Get looks an item class up by classid alone. Instance variations sharing a
// classid collapse to one entry.
func (c *Cache) Get(classID string) (entity.ItemInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	info, ok := c.data[classID]
	return info, ok
}

// Insert stores info and rewrites the whole backing file. A write failure is
// returned to the caller but the in-memory update is kept; the next
// successful insert persists the merged state.
func (c *Cache) Insert(classID string, info entity.ItemInfo) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[classID] = info

	if err := c.save(); err != nil {
		return domain.WrapError(err, errcodes.CachePersistError, "persist item cache")
	}

	return nil
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.data)
}

// save must be called with the write lock held. It writes to a temp file and
// renames it into place so a crash mid-write cannot truncate the cache.
func (c *Cache) save() error {
	content, err := json.MarshalIndent(c.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		return fmt.Errorf("write cache file %q: %w", tmp, err)
	}

	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("rename cache file %q: %w", c.path, err)
	}

	return nil
}
