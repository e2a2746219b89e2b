// Package client holds the client-resident read cache and the
// per-mutation reconciliation rules that keep it coherent with server
// mutations without full refetches.
package client

import (
	"encoding/json"
	"sync"
)

// Key identifies a cached query result: the query name plus the
// canonical JSON of its arguments.
type Key struct {
	Query string
	Args  string
}

func KeyFor(query string, args interface{}) Key {
	if args == nil {
		return Key{Query: query}
	}
	b, err := json.Marshal(args)
	if err != nil {
		return Key{Query: query}
	}
	return Key{Query: query, Args: string(b)}
}

type entry struct {
	value interface{}
	stale bool
	gen   uint64
}

// Cache is a normalized query cache. Entries carry a generation counter
// so a refetch scheduled for an invalidation can tell whether something
// newer landed in the meantime.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]*entry
}

func NewCache() *Cache {
	return &Cache{entries: make(map[Key]*entry)}
}

// Read returns a miss for absent and for stale entries.
func (c *Cache) Read(key Key) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || e.stale {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Write(key Key, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	e.value = value
	e.stale = false
	e.gen++
}

// Invalidate marks an existing entry stale and returns the generation a
// refetch must present to land its result. Absent entries are left
// absent; there is nothing to refetch.
func (c *Cache) Invalidate(key Key) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return 0, false
	}
	e.stale = true
	e.gen++
	return e.gen, true
}

// CompleteRefetch installs a refetched value only if the entry's
// generation still matches; a newer write or invalidation wins.
func (c *Cache) CompleteRefetch(key Key, value interface{}, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || e.gen != gen {
		return false
	}
	e.value = value
	e.stale = false
	return true
}

func (c *Cache) IsStale(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	return ok && e.stale
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
