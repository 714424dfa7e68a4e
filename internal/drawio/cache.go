package drawio

import (
	"log/slog"
	"path/filepath"
)

// DefaultCacheSize is the number of parsed containers kept by a Cache
// when no explicit size is configured.
const DefaultCacheSize = 32

// Cache is a bounded parse cache keyed by resolved file path. It is
// meant to live for a single processing pass over a site, so there is no
// invalidation: a file that changes mid-pass is served stale. Parse
// failures are not cached; a broken file is re-attempted on each
// reference so its error stays attributable to the referencing page.
type Cache struct {
	max   int
	files map[string]*File
	order []string
}

// NewCache returns a cache holding at most max parsed containers.
// A non-positive max selects DefaultCacheSize.
func NewCache(max int) *Cache {
	if max <= 0 {
		max = DefaultCacheSize
	}
	return &Cache{max: max, files: make(map[string]*File)}
}

// Load returns the parsed container for path, parsing it on first use.
func (c *Cache) Load(path string) (*File, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}
	if f, ok := c.files[key]; ok {
		return f, nil
	}

	f, err := ParseFile(path)
	if err != nil {
		return nil, err
	}

	if len(c.order) >= c.max {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.files, oldest)
		slog.Debug("evicted parsed diagram from cache", "path", oldest)
	}
	c.files[key] = f
	c.order = append(c.order, key)
	return f, nil
}

// Len reports the number of cached containers.
func (c *Cache) Len() int { return len(c.files) }
