package shapeval

import (
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// shapeCache memoizes compiled validators per document path and shape name.
// Compiled schemas are stateless, so cached entries are safe to share across
// goroutines.
type shapeCache struct {
	mu sync.Mutex
	m  map[cacheKey]*cacheEntry
}

type cacheKey struct {
	path  string
	shape string
}

type cacheEntry struct {
	validator *jsonschema.Schema
	names     FragmentNameMap
}

func newShapeCache() *shapeCache {
	return &shapeCache{m: make(map[cacheKey]*cacheEntry)}
}

func (c *shapeCache) get(path, shape string) (*cacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ce, ok := c.m[cacheKey{path, shape}]
	return ce, ok
}

func (c *shapeCache) put(path, shape string, ce *cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[cacheKey{path, shape}] = ce
}
