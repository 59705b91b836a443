package catalog

import "sync"

// Cache is the product read model: single writer (the consumer), any number
// of concurrent readers. Values are copied in and out, so a reader never sees
// a torn snapshot.
type Cache struct {
	mu sync.RWMutex
	m  map[int64]ProductSnapshot
}

func NewCache() *Cache {
	return &Cache{m: make(map[int64]ProductSnapshot)}
}

// Upsert replaces any existing entry for the snapshot's product id.
// Last write wins by arrival order.
func (c *Cache) Upsert(s ProductSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[s.ProductID] = s
}

// Remove deletes the entry if present.
func (c *Cache) Remove(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, productID)
}

func (c *Cache) Get(productID int64) (ProductSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.m[productID]
	return s, ok
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
