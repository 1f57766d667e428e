// Package identity memoizes numeric user and group id to name lookups.
package identity

import (
	"strconv"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Unknown is cached and returned for ids that could not be resolved.
const Unknown = ""

// LookupFunc performs the native lookup of a single id.
type LookupFunc func(id uint32) (string, error)

// Cache maps ids to names for the lifetime of the process.
// Entries are never evicted or replaced.
type Cache struct {
	kind   string
	lookup LookupFunc

	mu    sync.Mutex
	names map[uint32]string

	group singleflight.Group
}

func New(kind string, lookup LookupFunc) *Cache {
	return &Cache{
		kind:   kind,
		lookup: lookup,
		names:  make(map[uint32]string),
	}
}

// Resolve returns the name of id. The first call for an id performs the
// lookup and stores its result, failures included; later calls are served
// from the cache. Concurrent misses for the same id share one lookup.
func (c *Cache) Resolve(id uint32) string {
	if name, ok := c.get(id); ok {
		return name
	}

	v, _, _ := c.group.Do(strconv.FormatUint(uint64(id), 10), func() (interface{}, error) {
		// Another caller may have finished the lookup in the meantime
		if name, ok := c.get(id); ok {
			return name, nil
		}

		name, err := c.lookup(id)
		if err != nil {
			log.WithField(c.kind, id).Debugf("Cannot resolve %s name: %s", c.kind, err)
			name = Unknown
		}

		c.mu.Lock()
		c.names[id] = name
		c.mu.Unlock()

		return name, nil
	})

	return v.(string)
}

func (c *Cache) get(id uint32) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	name, ok := c.names[id]

	return name, ok
}

// Len returns the number of cached ids.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.names)
}
