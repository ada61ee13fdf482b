package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSelectionDropsUnknownIDs(t *testing.T) {
	c := New(DefaultServices())

	sel := c.ResolveSelection(
		[]string{"haircut", "bogus-service"},
		[]string{"deep-condition", "bogus-addon"},
	)

	assert.Equal(t, []string{"haircut"}, sel.Services())
	assert.Equal(t, []string{"deep-condition"}, sel.Addons("haircut"))
}

func TestResolveSelectionDropsOrphanAddons(t *testing.T) {
	c := New(DefaultServices())

	// gloss belongs to color, which is not selected
	sel := c.ResolveSelection([]string{"haircut"}, []string{"gloss"})

	assert.Equal(t, []string{"haircut"}, sel.Services())
	assert.Empty(t, sel.Addons("haircut"))
}

func TestSnapshotFreezesPrices(t *testing.T) {
	c := New(DefaultServices())
	sel := c.ResolveSelection([]string{"haircut"}, []string{"blowout"})

	booked := c.Snapshot(sel)
	require.Len(t, booked, 1)
	assert.Equal(t, "haircut", booked[0].ID)
	assert.Equal(t, int64(6500), booked[0].PriceCents)
	assert.Equal(t, 60, booked[0].DurationMin)
	require.Len(t, booked[0].Addons, 1)
	assert.Equal(t, "blowout", booked[0].Addons[0].ID)
	assert.Equal(t, int64(2500), booked[0].Addons[0].PriceCents)
}

func TestListKeepsCatalogOrder(t *testing.T) {
	c := New(DefaultServices())
	list := c.List()
	require.NotEmpty(t, list)
	assert.Equal(t, "haircut", list[0].ID)
}

func TestAddonLookup(t *testing.T) {
	c := New(DefaultServices())

	addon, ok := c.Addon("manicure", "gel-polish")
	require.True(t, ok)
	assert.Equal(t, "Gel Polish", addon.Name)

	_, ok = c.Addon("manicure", "gloss")
	assert.False(t, ok)

	_, ok = c.Addon("nope", "gloss")
	assert.False(t, ok)
}
