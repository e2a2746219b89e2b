package client

import (
	"context"
	"sync"
)

// FetchFunc executes a query against the server. The key carries the
// query name and the canonical JSON of its arguments.
type FetchFunc func(ctx context.Context, key Key) (interface{}, error)

// Client is the read-through cache front. Queries hit the cache first;
// resolved mutations run through the rule table, invalidations schedule
// fire-and-forget refetches.
type Client struct {
	cache *Cache
	rules RuleTable
	fetch FetchFunc
	wg    sync.WaitGroup
}

func New(fetch FetchFunc) *Client {
	return &Client{
		cache: NewCache(),
		rules: Rules(),
		fetch: fetch,
	}
}

func (c *Client) Cache() *Cache {
	return c.cache
}

// Query serves from cache when the entry is fresh, otherwise fetches
// and installs the result.
func (c *Client) Query(ctx context.Context, query string, args interface{}) (interface{}, error) {
	key := KeyFor(query, args)
	if v, ok := c.cache.Read(key); ok {
		return v, nil
	}
	v, err := c.fetch(ctx, key)
	if err != nil {
		return nil, err
	}
	c.cache.Write(key, v)
	return v, nil
}

// ApplyMutation reconciles the cache after a mutation resolved.
// Overwrites land synchronously. Invalidations mark the entry stale and
// kick off a background refetch that only lands if nothing newer
// touched the entry in the meantime.
func (c *Client) ApplyMutation(name string, args Args, result interface{}) {
	rule, ok := c.rules[name]
	if !ok {
		return
	}
	for _, op := range rule(args, result) {
		if op.Overwrite {
			c.cache.Write(op.Key, op.Value)
			continue
		}
		gen, existed := c.cache.Invalidate(op.Key)
		if !existed {
			continue
		}
		c.refetch(op.Key, gen)
	}
}

func (c *Client) refetch(key Key, gen uint64) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		v, err := c.fetch(context.Background(), key)
		if err != nil {
			// Entry stays stale; the next Query fetches through.
			return
		}
		c.cache.CompleteRefetch(key, v, gen)
	}()
}

// Wait blocks until all in-flight refetches finish.
func (c *Client) Wait() {
	c.wg.Wait()
}
