package driver

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gopeg/pcomb"
)

// Cache memoizes the outcome of entering a matcher fresh (in CLEAN state) at
// a given cursor — classic packrat memoization, and exactly the
// "memoization/caching layer" spec section 1 names as a collaborator outside
// the core. Only CLEAN entries are memoized: backtracking resume states are
// branch-specific and not worth (or safe to) share across call sites.
type Cache struct {
	lru *lru.Cache[uint64, pcomb.Transition]
}

// NewCache creates a memoization cache holding up to size entries.
func NewCache(size int) *Cache {
	c, err := lru.New[uint64, pcomb.Transition](size)
	if err != nil {
		// size <= 0, which only a misconfigured caller would pass.
		panic(fmt.Sprintf("driver: invalid cache size %d: %v", size, err))
	}
	return &Cache{lru: c}
}

func cacheKey(m pcomb.Matcher, cur pcomb.Cursor) (uint64, bool) {
	h, ok := cur.(pcomb.Hashable)
	if !ok {
		return 0, false
	}

	d := xxhash.New()
	fmt.Fprintf(d, "%T:%+v", m, m)
	matcherHash := d.Sum64()
	return matcherHash ^ h.Hash(), true
}

// Lookup returns a previously stored transition for (m, cur), valid only
// when state is CLEAN.
func (c *Cache) Lookup(m pcomb.Matcher, state pcomb.State, cur pcomb.Cursor) (pcomb.Transition, bool) {
	if state != pcomb.CLEAN {
		return nil, false
	}
	key, ok := cacheKey(m, cur)
	if !ok {
		return nil, false
	}
	return c.lru.Get(key)
}

// Store remembers the outcome of a CLEAN entry of m at cur.
func (c *Cache) Store(m pcomb.Matcher, state pcomb.State, cur pcomb.Cursor, result pcomb.Transition) {
	if state != pcomb.CLEAN {
		return
	}
	if _, ok := result.(pcomb.Dispatch); ok {
		// Only terminal outcomes are cheap and sound to replay.
		return
	}
	key, ok := cacheKey(m, cur)
	if !ok {
		return
	}
	c.lru.Add(key, result)
}
