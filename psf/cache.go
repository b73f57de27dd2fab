package psf

// CacheCapacity is the number of entries of a Cache.
const CacheCapacity = 64

// MaxKeyLen is the longest key a Cache will store. It covers any single
// UTF-8 encoded scalar and most short combining sequences.
const MaxKeyLen = 16

type cacheEntry struct {
	len   uint8
	key   [MaxKeyLen]byte
	glyph uint32
}

// Cache maps short UTF-8 byte sequences to glyph indices.
//
// Cache has a fixed capacity and never allocates. New entries overwrite the
// slot at a round-robin cursor, regardless of what is stored there; there is
// no notion of recency or frequency. The zero value is an empty cache ready to use.
//
// Caching is an optimization only: a key missing from the cache is simply
// resolved the slow way.
type Cache struct {
	entries [CacheCapacity]cacheEntry
	next    int
}

// Get returns the glyph index stored for key.
//
// The empty key is never found. Unused slots have length 0, but they do not
// match an empty key, so empty text does not resolve to glyph 0.
// If duplicate keys happen to be stored, it is unspecified which one is returned.
func (c *Cache) Get(key []byte) (int, bool) {
	if len(key) == 0 || len(key) > MaxKeyLen {
		return 0, false
	}
	for i := range c.entries {
		e := &c.entries[i]
		if int(e.len) == len(key) && string(e.key[:e.len]) == string(key) {
			return int(e.glyph), true
		}
	}
	return 0, false
}

// Insert stores glyph for key in the slot under the cursor, then advances the
// cursor. Empty keys and keys longer than MaxKeyLen are silently ignored.
func (c *Cache) Insert(key []byte, glyph int) {
	if len(key) == 0 || len(key) > MaxKeyLen {
		return
	}
	e := &c.entries[c.next]
	e.len = uint8(len(key))
	copy(e.key[:], key)
	e.glyph = uint32(glyph)
	c.next = (c.next + 1) % CacheCapacity
}

// Reset empties the cache.
func (c *Cache) Reset() {
	*c = Cache{}
}
