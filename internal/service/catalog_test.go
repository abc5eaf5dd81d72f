package service

import (
	"fmt"
	"testing"

	"deligo/internal/domain"
	"deligo/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixtures() ([]domain.Restaurant, []domain.MenuItem) {
	restaurants := []domain.Restaurant{
		{ID: "v1", Name: "Mama Africa Kitchen", CategoryIDs: []string{"c1"}, Rating: 4.8, FreeDelivery: false},
		{ID: "v2", Name: "Kigali Pizza House", CategoryIDs: []string{"c2"}, Rating: 4.5, FreeDelivery: true},
	}
	items := []domain.MenuItem{
		{ID: "m1", RestaurantID: "v1", Name: "Isombe", Category: "Mains", Price: 4000},
		{ID: "m2", RestaurantID: "v1", Name: "Ikivuguto", Category: "Drinks", Price: 1500},
		{ID: "m3", RestaurantID: "v2", Name: "Margherita Pizza", Category: "Pizza", Price: 9000},
	}
	return restaurants, items
}

func TestCatalogService_Restaurants(t *testing.T) {
	restaurants, _ := catalogFixtures()

	mockRepo := new(testutil.MockCatalogRepository)
	mockRepo.On("Restaurants").Return(restaurants, nil)

	svc := NewCatalogService(mockRepo, testutil.NewTestLogger())

	got, err := svc.Restaurants(domain.FilterFreeDelivery, domain.SortByRating)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "v2", got[0].ID)

	mockRepo.AssertExpectations(t)
}

func TestCatalogService_RestaurantsInCategory(t *testing.T) {
	restaurants, _ := catalogFixtures()

	mockRepo := new(testutil.MockCatalogRepository)
	mockRepo.On("Restaurants").Return(restaurants, nil)

	svc := NewCatalogService(mockRepo, testutil.NewTestLogger())

	got, err := svc.RestaurantsInCategory("c1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "v1", got[0].ID)
}

func TestCatalogService_MenuByCategory(t *testing.T) {
	_, items := catalogFixtures()

	mockRepo := new(testutil.MockCatalogRepository)
	mockRepo.On("MenuItems", "v1").Return(items[:2], nil)

	svc := NewCatalogService(mockRepo, testutil.NewTestLogger())

	got, err := svc.MenuByCategory("v1", "Drinks")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "m2", got[0].ID)

	categories, err := svc.MenuCategories("v1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mains", "Drinks"}, categories)
}

func TestCatalogService_Search(t *testing.T) {
	restaurants, items := catalogFixtures()

	mockRepo := new(testutil.MockCatalogRepository)
	mockRepo.On("Restaurants").Return(restaurants, nil)
	mockRepo.On("AllMenuItems").Return(items, nil)

	svc := NewCatalogService(mockRepo, testutil.NewTestLogger())

	results, err := svc.Search("pizza")
	require.NoError(t, err)
	require.Len(t, results.Restaurants, 1)
	assert.Equal(t, "v2", results.Restaurants[0].ID)
	require.Len(t, results.Items, 1)
	assert.Equal(t, "m3", results.Items[0].ID)
}

func TestCatalogService_SearchRepoError(t *testing.T) {
	mockRepo := new(testutil.MockCatalogRepository)
	mockRepo.On("Restaurants").Return(nil, fmt.Errorf("catalog down"))

	svc := NewCatalogService(mockRepo, testutil.NewTestLogger())

	_, err := svc.Search("pizza")
	assert.Error(t, err)
}

func TestCatalogService_SavedItems(t *testing.T) {
	_, items := catalogFixtures()

	mockRepo := new(testutil.MockCatalogRepository)
	mockRepo.On("AllMenuItems").Return(items, nil)

	svc := NewCatalogService(mockRepo, testutil.NewTestLogger())

	saved := map[string]struct{}{"m1": {}, "m-gone": {}}
	got, err := svc.SavedItems(saved)
	require.NoError(t, err)
	require.Len(t, got, 1, "ids missing from the catalog are skipped")
	assert.Equal(t, "m1", got[0].ID)
}
