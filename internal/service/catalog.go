package service

import (
	"deligo/internal/domain"
	"deligo/internal/repository"

	"go.uber.org/zap"
)

// SearchResults bundles the two halves of a catalog search.
type SearchResults struct {
	Restaurants []domain.Restaurant
	Items       []domain.MenuItem
}

// CatalogService answers every browse/search/filter/sort question over the
// read-only catalog.
type CatalogService struct {
	catalog repository.CatalogRepository
	logger  *zap.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalog repository.CatalogRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{catalog: catalog, logger: logger}
}

// Categories lists all browse categories.
func (s *CatalogService) Categories() ([]domain.Category, error) {
	return s.catalog.Categories()
}

// Category looks up one category.
func (s *CatalogService) Category(id string) (*domain.Category, error) {
	return s.catalog.CategoryByID(id)
}

// Restaurants returns the restaurant list, filtered then sorted.
func (s *CatalogService) Restaurants(filter domain.RestaurantFilter, sort domain.RestaurantSort) ([]domain.Restaurant, error) {
	list, err := s.catalog.Restaurants()
	if err != nil {
		return nil, err
	}
	return domain.SortRestaurants(domain.FilterRestaurants(list, filter), sort), nil
}

// RestaurantsInCategory returns the restaurants belonging to a category.
func (s *CatalogService) RestaurantsInCategory(categoryID string) ([]domain.Restaurant, error) {
	list, err := s.catalog.Restaurants()
	if err != nil {
		return nil, err
	}
	var out []domain.Restaurant
	for _, r := range list {
		if r.InCategory(categoryID) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Restaurant looks up one restaurant.
func (s *CatalogService) Restaurant(id string) (*domain.Restaurant, error) {
	return s.catalog.RestaurantByID(id)
}

// Menu returns a restaurant's full menu.
func (s *CatalogService) Menu(restaurantID string) ([]domain.MenuItem, error) {
	return s.catalog.MenuItems(restaurantID)
}

// MenuByCategory returns the slice of a restaurant's menu in one category.
func (s *CatalogService) MenuByCategory(restaurantID, category string) ([]domain.MenuItem, error) {
	menu, err := s.catalog.MenuItems(restaurantID)
	if err != nil {
		return nil, err
	}
	var out []domain.MenuItem
	for _, it := range menu {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out, nil
}

// MenuCategories lists the distinct menu sections of a restaurant.
func (s *CatalogService) MenuCategories(restaurantID string) ([]string, error) {
	menu, err := s.catalog.MenuItems(restaurantID)
	if err != nil {
		return nil, err
	}
	return domain.MenuCategories(menu), nil
}

// Item looks up one menu item.
func (s *CatalogService) Item(id string) (*domain.MenuItem, error) {
	return s.catalog.MenuItemByID(id)
}

// Search matches restaurants and menu items against a free-text query.
func (s *CatalogService) Search(query string) (SearchResults, error) {
	restaurants, err := s.catalog.Restaurants()
	if err != nil {
		return SearchResults{}, err
	}
	items, err := s.catalog.AllMenuItems()
	if err != nil {
		return SearchResults{}, err
	}

	results := SearchResults{
		Restaurants: domain.SearchRestaurants(restaurants, query),
		Items:       domain.SearchMenuItems(items, query),
	}
	s.logger.Debug("Catalog search",
		zap.String("query", query),
		zap.Int("restaurants", len(results.Restaurants)),
		zap.Int("items", len(results.Items)),
	)
	return results, nil
}

// SavedItems resolves a saved-id set into menu items, skipping ids that no
// longer exist in the catalog.
func (s *CatalogService) SavedItems(savedIDs map[string]struct{}) ([]domain.MenuItem, error) {
	items, err := s.catalog.AllMenuItems()
	if err != nil {
		return nil, err
	}
	var out []domain.MenuItem
	for _, it := range items {
		if _, ok := savedIDs[it.ID]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}
