package schema

import (
	lru "github.com/hashicorp/golang-lru"
)

const defaultCacheSize = 4096

// lookupCache sits in front of AttributeType lookups only
// (LookupAttributeType); other kinds resolve straight from their
// registries. It is wholesale-invalidated on every commit rather than
// incrementally maintained — mutations are rare and expected to take
// microseconds (§5), so correctness-by-simplicity beats a fiddly
// per-entry invalidation scheme.
type lookupCache struct {
	entities *lru.Cache
}

func newLookupCache(size int) *lookupCache {
	if size <= 0 {
		size = defaultCacheSize
	}
	c, err := lru.New(size)
	if err != nil {
		// Only returns an error for a non-positive size, which is
		// already guarded above.
		panic(err)
	}
	return &lookupCache{entities: c}
}

func cacheKey(kind Kind, oidOrName string) string {
	return kind.String() + ":" + normalizeName(oidOrName)
}

func (c *lookupCache) get(kind Kind, oidOrName string) (Entity, bool) {
	v, ok := c.entities.Get(cacheKey(kind, oidOrName))
	if !ok {
		return nil, false
	}
	e, ok := v.(Entity)
	return e, ok
}

func (c *lookupCache) put(kind Kind, oidOrName string, e Entity) {
	c.entities.Add(cacheKey(kind, oidOrName), e)
}

func (c *lookupCache) reset() {
	c.entities.Purge()
}
