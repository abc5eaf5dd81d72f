package memory

import (
	"testing"

	"deligo/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Seed(t *testing.T) {
	c := NewCatalog()

	categories, err := c.Categories()
	require.NoError(t, err)
	assert.NotEmpty(t, categories)

	restaurants, err := c.Restaurants()
	require.NoError(t, err)
	require.NotEmpty(t, restaurants)

	// Every restaurant references existing categories and has a menu.
	catIDs := map[string]struct{}{}
	for _, cat := range categories {
		catIDs[cat.ID] = struct{}{}
	}
	for _, r := range restaurants {
		require.NotEmpty(t, r.CategoryIDs, r.Name)
		for _, id := range r.CategoryIDs {
			assert.Contains(t, catIDs, id, "%s references unknown category %s", r.Name, id)
		}

		menu, err := c.MenuItems(r.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, menu, "%s has no menu", r.Name)
		for _, item := range menu {
			assert.Equal(t, r.ID, item.RestaurantID)
			assert.Greater(t, item.Price, int64(0))
		}
	}
}

func TestCatalog_Lookups(t *testing.T) {
	c := NewCatalog()

	r, err := c.RestaurantByID("rest-kigali-pizza")
	require.NoError(t, err)
	assert.Equal(t, "Kigali Pizza House", r.Name)

	_, err = c.RestaurantByID("rest-missing")
	assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)

	item, err := c.MenuItemByID("item-brochettes")
	require.NoError(t, err)
	assert.Equal(t, "Goat Brochettes", item.Name)

	_, err = c.MenuItemByID("item-missing")
	assert.ErrorIs(t, err, repository.ErrMenuItemNotFound)

	cat, err := c.CategoryByID("cat-pizza")
	require.NoError(t, err)
	assert.Equal(t, "Pizza", cat.NameEN)

	_, err = c.CategoryByID("cat-missing")
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestCatalog_AllMenuItems(t *testing.T) {
	c := NewCatalog()

	all, err := c.AllMenuItems()
	require.NoError(t, err)

	ids := map[string]struct{}{}
	for _, item := range all {
		_, dup := ids[item.ID]
		assert.False(t, dup, "duplicate menu item id %s", item.ID)
		ids[item.ID] = struct{}{}
	}
}

func TestFeed_Seed(t *testing.T) {
	f := NewFeed()

	notifications, err := f.Notifications()
	require.NoError(t, err)
	assert.NotEmpty(t, notifications)

	conversations, err := f.Conversations()
	require.NoError(t, err)
	require.NotEmpty(t, conversations)

	conv, err := f.ConversationByID(conversations[0].ID)
	require.NoError(t, err)
	assert.NotEmpty(t, conv.Messages)

	_, err = f.ConversationByID("conv-missing")
	assert.ErrorIs(t, err, ErrConversationNotFound)

	calls, err := f.CallHistory()
	require.NoError(t, err)
	assert.NotEmpty(t, calls)
}
