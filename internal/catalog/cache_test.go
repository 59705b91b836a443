package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheUpsertIdempotent(t *testing.T) {
	c := NewCache()
	s := ProductSnapshot{ProductID: 5, Name: "Gadget", Price: 9.99, StockQuantity: 3, Category: "tools"}

	c.Upsert(s)
	c.Upsert(s)

	got, ok := c.Get(5)
	require.True(t, ok)
	assert.Equal(t, s, got)
	assert.Equal(t, 1, c.Len())
}

func TestCacheLastWriteWins(t *testing.T) {
	c := NewCache()
	c.Upsert(ProductSnapshot{ProductID: 1, Name: "Widget", Price: 10})
	c.Upsert(ProductSnapshot{ProductID: 1, Name: "Widget v2", Price: 12.5})

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Widget v2", got.Name)
	assert.Equal(t, 12.5, got.Price)
}

func TestCacheRemove(t *testing.T) {
	c := NewCache()
	c.Upsert(ProductSnapshot{ProductID: 7, Name: "Doodad"})

	c.Remove(7)
	_, ok := c.Get(7)
	assert.False(t, ok)

	// removing an absent key is a no-op
	c.Remove(7)
	c.Remove(42)
	assert.Equal(t, 0, c.Len())
}

func TestCacheConcurrentReaders(t *testing.T) {
	c := NewCache()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			c.Upsert(ProductSnapshot{ProductID: 1, Name: "Widget", Price: float64(i), StockQuantity: i})
		}
	}()

	var wg sync.WaitGroup
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				if s, ok := c.Get(1); ok {
					// a snapshot is read whole: price and stock always agree
					assert.Equal(t, float64(s.StockQuantity), s.Price)
				}
			}
		}()
	}
	wg.Wait()
	<-done
}
