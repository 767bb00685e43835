package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugsAreGloballyUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, cat := range Categories() {
		for _, item := range cat.Items {
			if item.Unit != nil {
				assert.False(t, seen[item.Unit.Slug], "duplicate slug %q", item.Unit.Slug)
				seen[item.Unit.Slug] = true
				continue
			}
			require.NotEmpty(t, item.Variants, "item %q has neither unit nor variants", item.Name)
			for _, v := range item.Variants {
				assert.False(t, seen[v.Slug], "duplicate slug %q", v.Slug)
				seen[v.Slug] = true
			}
		}
	}
	assert.Equal(t, len(Units()), len(seen))
}

func TestFindUnit(t *testing.T) {
	u, ok := FindUnit("paya")
	require.True(t, ok)
	assert.Equal(t, "Paya", u.Item)
	assert.Equal(t, 150.0, u.Price)

	// variant slugs resolve to their own price
	full, ok := FindUnit("mutton-biryani-full")
	require.True(t, ok)
	assert.Equal(t, 450.0, full.Price)
	half, ok := FindUnit("mutton-biryani-half")
	require.True(t, ok)
	assert.Equal(t, 350.0, half.Price)

	_, ok = FindUnit("no-such-item")
	assert.False(t, ok)
}

func TestDessertName(t *testing.T) {
	assert.Equal(t, "Apricot delight", DessertName("apricot-delight"))
	assert.Equal(t, "kubani ka mitha", DessertName("kubani-ka-mitha"))
	// unknown slugs pass through unchanged
	assert.Equal(t, "mystery-sweet", DessertName("mystery-sweet"))
}

func TestIsDessert(t *testing.T) {
	assert.True(t, IsDessert("shatoot-malai"))
	assert.False(t, IsDessert("paya"))
	assert.False(t, IsDessert(""))
}

func TestDefaultDessertStockMatchesCatalog(t *testing.T) {
	seeds := DefaultDessertStock()
	require.Len(t, seeds, 5)
	for _, seed := range seeds {
		assert.True(t, IsDessert(seed.Slug))
		assert.Equal(t, DessertName(seed.Slug), seed.Item)
		assert.GreaterOrEqual(t, seed.Stock, 0)

		u, ok := FindUnit(seed.Slug)
		require.True(t, ok, "seed slug %q missing from menu", seed.Slug)
		assert.Equal(t, seed.Item, u.Item)
	}
}
