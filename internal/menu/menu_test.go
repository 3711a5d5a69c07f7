package menu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogue(t *testing.T) {
	c := Default()

	items := c.Items()
	require.Len(t, items, 10)

	seen := make(map[string]bool, len(items))
	for _, it := range items {
		require.NotEmpty(t, it.ID)
		require.NotEmpty(t, it.Name)
		require.NotEmpty(t, it.Category)
		require.Greater(t, it.Price, int64(0))
		require.False(t, seen[it.ID], "duplicate id %q", it.ID)
		seen[it.ID] = true
	}
}

func TestLookup(t *testing.T) {
	c := Default()

	it, err := c.Lookup("tea_green")
	require.NoError(t, err)
	require.Equal(t, "Ko'k choy", it.Name)
	require.Equal(t, int64(5000), it.Price)

	_, err = c.Lookup("sushi")
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "sushi")
}

func TestNewRejectsBadItems(t *testing.T) {
	_, err := New([]Item{
		{ID: "plov", Name: "Palov", Category: "Asosiy taomlar", Price: 28000},
		{ID: "plov", Name: "Palov II", Category: "Asosiy taomlar", Price: 30000},
	})
	require.Error(t, err)

	_, err = New([]Item{{ID: "", Name: "nameless", Category: "X", Price: 100}})
	require.Error(t, err)

	_, err = New([]Item{{ID: "x", Name: "X", Category: "X", Price: -1}})
	require.Error(t, err)
}

func TestSections(t *testing.T) {
	c := Default()

	sections := c.Sections()
	require.Len(t, sections, 5)

	var categories []string
	total := 0
	for _, s := range sections {
		categories = append(categories, s.Category)
		total += len(s.Items)
	}
	require.Equal(t, []string{"Asosiy taomlar", "Ichimliklar", "Qo'shimchalar", "Salatlar", "Somsa"}, categories)
	require.Equal(t, 10, total)

	// Items keep declaration order inside their category.
	require.Equal(t, "tea_green", sections[1].Items[0].ID)
	require.Equal(t, "tea_black", sections[1].Items[1].ID)
	require.Equal(t, "ayran", sections[1].Items[2].ID)
}

func TestItemsReturnsACopy(t *testing.T) {
	c := Default()

	items := c.Items()
	items[0].Price = 1

	it, err := c.Lookup(items[0].ID)
	require.NoError(t, err)
	require.NotEqual(t, int64(1), it.Price)
}

func TestLookupUnknownIsNotFound(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)

	_, err = c.Lookup("anything")
	require.True(t, errors.Is(err, ErrNotFound))
}
