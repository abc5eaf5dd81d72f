package domain

import (
	"sort"
	"strings"
)

// Category is a browsable food category. Read-only reference data.
type Category struct {
	ID     string
	NameEN string
	NameRW string
	Icon   string
}

// Name returns the category label for the given language.
func (c Category) Name(lang Language) string {
	if lang == LanguageKinyarwanda && c.NameRW != "" {
		return c.NameRW
	}
	return c.NameEN
}

// Restaurant is a vendor in the catalog. Read-only reference data.
type Restaurant struct {
	ID              string
	Name            string
	Description     string
	CategoryIDs     []string
	Rating          float64
	DistanceKm      float64
	DeliveryTimeMin int
	OrderCount      int
	FreeDelivery    bool
	Promoted        bool
	Verified        bool
	Partner         bool
}

// InCategory reports whether the restaurant belongs to the category.
func (r Restaurant) InCategory(categoryID string) bool {
	for _, id := range r.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}

// MenuItem is one dish on a restaurant's menu. Read-only reference data.
type MenuItem struct {
	ID           string
	RestaurantID string
	Name         string
	Description  string
	Price        int64
	Image        string
	Category     string
	Ingredients  []string
	Available    bool
	Popular      bool
}

// RestaurantFilter selects a subset of the restaurant list.
type RestaurantFilter string

const (
	FilterAll          RestaurantFilter = "all"
	FilterFreeDelivery RestaurantFilter = "free-delivery"
	FilterPromoted     RestaurantFilter = "promoted"
	FilterVerified     RestaurantFilter = "verified"
	FilterPartner      RestaurantFilter = "partner"
)

// FilterRestaurants returns the restaurants matching the filter, in input
// order. Unknown filters behave like FilterAll.
func FilterRestaurants(list []Restaurant, f RestaurantFilter) []Restaurant {
	out := make([]Restaurant, 0, len(list))
	for _, r := range list {
		switch f {
		case FilterFreeDelivery:
			if !r.FreeDelivery {
				continue
			}
		case FilterPromoted:
			if !r.Promoted {
				continue
			}
		case FilterVerified:
			if !r.Verified {
				continue
			}
		case FilterPartner:
			if !r.Partner {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// RestaurantSort orders the restaurant list.
type RestaurantSort string

const (
	SortByRating       RestaurantSort = "rating"
	SortByDistance     RestaurantSort = "distance"
	SortByDeliveryTime RestaurantSort = "delivery-time"
	SortByOrders       RestaurantSort = "orders"
)

// SortRestaurants returns a sorted copy of the list. Sorting is stable; no
// particular tie-break beyond input order. Unknown keys leave the order as
// given.
func SortRestaurants(list []Restaurant, s RestaurantSort) []Restaurant {
	out := make([]Restaurant, len(list))
	copy(out, list)

	switch s {
	case SortByRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortByDistance:
		sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	case SortByDeliveryTime:
		sort.SliceStable(out, func(i, j int) bool { return out[i].DeliveryTimeMin < out[j].DeliveryTimeMin })
	case SortByOrders:
		sort.SliceStable(out, func(i, j int) bool { return out[i].OrderCount > out[j].OrderCount })
	}
	return out
}

// SearchRestaurants returns restaurants whose name or description contains
// the query, case-insensitively. An empty query matches nothing.
func SearchRestaurants(list []Restaurant, query string) []Restaurant {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Restaurant
	for _, r := range list {
		if strings.Contains(strings.ToLower(r.Name), q) || strings.Contains(strings.ToLower(r.Description), q) {
			out = append(out, r)
		}
	}
	return out
}

// SearchMenuItems returns menu items whose name or description contains the
// query, case-insensitively. An empty query matches nothing.
func SearchMenuItems(items []MenuItem, query string) []MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []MenuItem
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), q) || strings.Contains(strings.ToLower(it.Description), q) {
			out = append(out, it)
		}
	}
	return out
}

// MenuCategories lists the distinct menu categories of the items, in first
// appearance order.
func MenuCategories(items []MenuItem) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, it := range items {
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		out = append(out, it.Category)
	}
	return out
}
