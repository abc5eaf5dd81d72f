package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRestaurants = []Restaurant{
	{ID: "v1", Name: "Mama Africa Kitchen", Rating: 4.8, DistanceKm: 2.5, DeliveryTimeMin: 30, OrderCount: 900, Verified: true, Partner: true},
	{ID: "v2", Name: "Kigali Pizza House", Rating: 4.5, DistanceKm: 1.2, DeliveryTimeMin: 25, OrderCount: 1500, FreeDelivery: true, Promoted: true},
	{ID: "v3", Name: "Fresh Bites", Rating: 4.5, DistanceKm: 3.8, DeliveryTimeMin: 40, OrderCount: 300, Verified: true},
}

func TestFilterRestaurants(t *testing.T) {
	tests := []struct {
		name   string
		filter RestaurantFilter
		ids    []string
	}{
		{name: "all", filter: FilterAll, ids: []string{"v1", "v2", "v3"}},
		{name: "free delivery", filter: FilterFreeDelivery, ids: []string{"v2"}},
		{name: "promoted", filter: FilterPromoted, ids: []string{"v2"}},
		{name: "verified", filter: FilterVerified, ids: []string{"v1", "v3"}},
		{name: "partner", filter: FilterPartner, ids: []string{"v1"}},
		{name: "unknown behaves like all", filter: RestaurantFilter("nope"), ids: []string{"v1", "v2", "v3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterRestaurants(testRestaurants, tt.filter)
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestSortRestaurants(t *testing.T) {
	tests := []struct {
		name string
		sort RestaurantSort
		ids  []string
	}{
		{name: "by rating, ties keep input order", sort: SortByRating, ids: []string{"v1", "v2", "v3"}},
		{name: "by distance", sort: SortByDistance, ids: []string{"v2", "v1", "v3"}},
		{name: "by delivery time", sort: SortByDeliveryTime, ids: []string{"v2", "v1", "v3"}},
		{name: "by orders", sort: SortByOrders, ids: []string{"v2", "v1", "v3"}},
		{name: "unknown keeps order", sort: RestaurantSort("nope"), ids: []string{"v1", "v2", "v3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortRestaurants(testRestaurants, tt.sort)
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.ids, ids)
			assert.Equal(t, "v1", testRestaurants[0].ID, "input slice must be untouched")
		})
	}
}

func TestSearchRestaurants(t *testing.T) {
	got := SearchRestaurants(testRestaurants, "pizza")
	require.Len(t, got, 1)
	assert.Equal(t, "v2", got[0].ID)

	assert.Empty(t, SearchRestaurants(testRestaurants, ""))
	assert.Empty(t, SearchRestaurants(testRestaurants, "sushi"))
	assert.Len(t, SearchRestaurants(testRestaurants, "KITCHEN"), 1)
}

func TestSearchMenuItems(t *testing.T) {
	items := []MenuItem{
		{ID: "m1", Name: "Margherita Pizza", Description: "tomato and cheese"},
		{ID: "m2", Name: "Isombe", Description: "cassava leaves with peanut sauce"},
	}

	got := SearchMenuItems(items, "pizza")
	require.Len(t, got, 1)
	assert.Equal(t, "m1", got[0].ID)

	got = SearchMenuItems(items, "peanut")
	require.Len(t, got, 1)
	assert.Equal(t, "m2", got[0].ID)

	assert.Empty(t, SearchMenuItems(items, ""))
}

func TestMenuCategories(t *testing.T) {
	items := []MenuItem{
		{ID: "m1", Category: "Mains"},
		{ID: "m2", Category: "Drinks"},
		{ID: "m3", Category: "Mains"},
	}

	assert.Equal(t, []string{"Mains", "Drinks"}, MenuCategories(items))
}

func TestCategory_Name(t *testing.T) {
	c := Category{ID: "c1", NameEN: "Traditional", NameRW: "Ibiryo gakondo"}

	assert.Equal(t, "Traditional", c.Name(LanguageEnglish))
	assert.Equal(t, "Ibiryo gakondo", c.Name(LanguageKinyarwanda))

	missing := Category{ID: "c2", NameEN: "Pizza"}
	assert.Equal(t, "Pizza", missing.Name(LanguageKinyarwanda))
}

func TestRestaurant_InCategory(t *testing.T) {
	r := Restaurant{ID: "v1", CategoryIDs: []string{"c1", "c2"}}

	assert.True(t, r.InCategory("c1"))
	assert.False(t, r.InCategory("c9"))
}
