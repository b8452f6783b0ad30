package resolver

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sayyara-vehicle-api/internal/model"
)

func TestCacheGetPut(t *testing.T) {
	c := NewCache()

	_, ok := c.Get("toyota", "camry")
	assert.False(t, ok)

	rng := model.YearRange{MinYear: 1982, MaxYear: 2026, Source: model.TierTrims, Confidence: true}
	c.Put("toyota", "camry", rng)

	got, ok := c.Get("toyota", "camry")
	require.True(t, ok)
	assert.Equal(t, rng, got)

	// keys are scoped to the pair, not the model alone
	_, ok = c.Get("dodge", "camry")
	assert.False(t, ok)
}

func TestCacheClear(t *testing.T) {
	c := NewCache()
	c.Put("toyota", "camry", model.YearRange{MinYear: 1982, MaxYear: 2026})
	c.Put("dodge", "charger", model.YearRange{MinYear: 2006, MaxYear: 2026})
	require.Equal(t, 2, c.Len())

	assert.Equal(t, 2, c.Clear())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Clear(), "clearing an empty cache removes nothing")

	_, ok := c.Get("toyota", "camry")
	assert.False(t, ok)
}

func TestCacheLastWriteWins(t *testing.T) {
	c := NewCache()
	c.Put("toyota", "camry", model.YearRange{MinYear: 1900, MaxYear: 2026, Source: model.TierFallback})
	c.Put("toyota", "camry", model.YearRange{MinYear: 1982, MaxYear: 2026, Source: model.TierTrims, Confidence: true})

	got, ok := c.Get("toyota", "camry")
	require.True(t, ok)
	assert.Equal(t, model.TierTrims, got.Source)
	assert.Equal(t, 1, c.Len())
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				key := fmt.Sprintf("model%d", j%10)
				c.Put("brand", key, model.YearRange{MinYear: 1990, MaxYear: 2020 + n})
				c.Get("brand", key)
				c.Len()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, c.Len())
}
