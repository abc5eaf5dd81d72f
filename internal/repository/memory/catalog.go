package memory

import (
	"deligo/internal/domain"
	"deligo/internal/repository"
)

// Catalog is the in-memory restaurant and menu catalog, seeded with the
// static reference data. Read-only after construction, so no locking.
type Catalog struct {
	categories  []domain.Category
	restaurants []domain.Restaurant
	menuItems   []domain.MenuItem
}

// NewCatalog creates a catalog seeded with the mock Kigali dataset.
func NewCatalog() *Catalog {
	return &Catalog{
		categories:  seedCategories(),
		restaurants: seedRestaurants(),
		menuItems:   seedMenuItems(),
	}
}

// Categories returns all categories.
func (c *Catalog) Categories() ([]domain.Category, error) {
	return append([]domain.Category(nil), c.categories...), nil
}

// CategoryByID looks up one category.
func (c *Catalog) CategoryByID(id string) (*domain.Category, error) {
	for i := range c.categories {
		if c.categories[i].ID == id {
			cat := c.categories[i]
			return &cat, nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

// Restaurants returns all restaurants.
func (c *Catalog) Restaurants() ([]domain.Restaurant, error) {
	return append([]domain.Restaurant(nil), c.restaurants...), nil
}

// RestaurantByID looks up one restaurant.
func (c *Catalog) RestaurantByID(id string) (*domain.Restaurant, error) {
	for i := range c.restaurants {
		if c.restaurants[i].ID == id {
			r := c.restaurants[i]
			return &r, nil
		}
	}
	return nil, repository.ErrRestaurantNotFound
}

// MenuItems returns the menu of one restaurant.
func (c *Catalog) MenuItems(restaurantID string) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, it := range c.menuItems {
		if it.RestaurantID == restaurantID {
			out = append(out, it)
		}
	}
	return out, nil
}

// MenuItemByID looks up one menu item.
func (c *Catalog) MenuItemByID(id string) (*domain.MenuItem, error) {
	for i := range c.menuItems {
		if c.menuItems[i].ID == id {
			it := c.menuItems[i]
			return &it, nil
		}
	}
	return nil, repository.ErrMenuItemNotFound
}

// AllMenuItems returns every menu item across restaurants.
func (c *Catalog) AllMenuItems() ([]domain.MenuItem, error) {
	return append([]domain.MenuItem(nil), c.menuItems...), nil
}

func seedCategories() []domain.Category {
	return []domain.Category{
		{ID: "cat-traditional", NameEN: "Traditional", NameRW: "Ibiryo gakondo", Icon: "🍲"},
		{ID: "cat-fast-food", NameEN: "Fast food", NameRW: "Ibiryo byihuse", Icon: "🍟"},
		{ID: "cat-pizza", NameEN: "Pizza", NameRW: "Pizza", Icon: "🍕"},
		{ID: "cat-grill", NameEN: "Grill", NameRW: "Akanyobwa", Icon: "🍢"},
		{ID: "cat-drinks", NameEN: "Drinks", NameRW: "Ibinyobwa", Icon: "🥤"},
		{ID: "cat-breakfast", NameEN: "Breakfast", NameRW: "Ifunguro rya mu gitondo", Icon: "🍳"},
	}
}

func seedRestaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID:              "rest-mama-africa",
			Name:            "Mama Africa Kitchen",
			Description:     "Home-style Rwandan plates, generous portions.",
			CategoryIDs:     []string{"cat-traditional", "cat-breakfast"},
			Rating:          4.8,
			DistanceKm:      2.1,
			DeliveryTimeMin: 35,
			OrderCount:      1240,
			Verified:        true,
			Partner:         true,
		},
		{
			ID:              "rest-kigali-pizza",
			Name:            "Kigali Pizza House",
			Description:     "Wood-fired pizza in the heart of town.",
			CategoryIDs:     []string{"cat-pizza", "cat-fast-food"},
			Rating:          4.5,
			DistanceKm:      1.3,
			DeliveryTimeMin: 25,
			OrderCount:      2310,
			FreeDelivery:    true,
			Promoted:        true,
			Verified:        true,
		},
		{
			ID:              "rest-nyama-choma",
			Name:            "Nyama Choma Grill",
			Description:     "Charcoal brochettes and grilled plantain.",
			CategoryIDs:     []string{"cat-grill", "cat-traditional"},
			Rating:          4.7,
			DistanceKm:      3.4,
			DeliveryTimeMin: 40,
			OrderCount:      870,
			Partner:         true,
		},
		{
			ID:              "rest-fresh-bites",
			Name:            "Fresh Bites",
			Description:     "Salads, wraps and juices, made to order.",
			CategoryIDs:     []string{"cat-fast-food", "cat-drinks"},
			Rating:          4.3,
			DistanceKm:      0.8,
			DeliveryTimeMin: 20,
			OrderCount:      540,
			FreeDelivery:    true,
		},
		{
			ID:              "rest-inzozi-coffee",
			Name:            "Inzozi Coffee",
			Description:     "Specialty Rwandan coffee and breakfast all day.",
			CategoryIDs:     []string{"cat-drinks", "cat-breakfast"},
			Rating:          4.9,
			DistanceKm:      2.9,
			DeliveryTimeMin: 30,
			OrderCount:      1980,
			Promoted:        true,
			Verified:        true,
			Partner:         true,
		},
		{
			ID:              "rest-umucyo",
			Name:            "Umucyo Restaurant",
			Description:     "Buffet classics and isombe like home.",
			CategoryIDs:     []string{"cat-traditional"},
			Rating:          4.2,
			DistanceKm:      4.6,
			DeliveryTimeMin: 45,
			OrderCount:      320,
		},
	}
}

func seedMenuItems() []domain.MenuItem {
	return []domain.MenuItem{
		// Mama Africa Kitchen
		{ID: "item-isombe", RestaurantID: "rest-mama-africa", Name: "Isombe", Description: "Cassava leaves simmered with peanut sauce", Price: 4000, Category: "Mains", Ingredients: []string{"cassava leaves", "peanut sauce", "palm oil"}, Available: true, Popular: true},
		{ID: "item-ugali-fish", RestaurantID: "rest-mama-africa", Name: "Ugali & Fish", Description: "Lake Kivu tilapia with fresh ugali", Price: 6500, Category: "Mains", Ingredients: []string{"tilapia", "maize flour", "tomato"}, Available: true},
		{ID: "item-matoke", RestaurantID: "rest-mama-africa", Name: "Matoke", Description: "Stewed plantain in tomato sauce", Price: 3500, Category: "Mains", Ingredients: []string{"plantain", "tomato", "onion"}, Available: true},
		{ID: "item-ikivuguto", RestaurantID: "rest-mama-africa", Name: "Ikivuguto", Description: "Fermented milk, served cold", Price: 1500, Category: "Drinks", Ingredients: []string{"milk"}, Available: true},

		// Kigali Pizza House
		{ID: "item-margherita", RestaurantID: "rest-kigali-pizza", Name: "Margherita Pizza", Description: "Tomato, mozzarella, basil", Price: 9000, Category: "Pizza", Ingredients: []string{"tomato", "mozzarella", "basil"}, Available: true, Popular: true},
		{ID: "item-peri-chicken-pizza", RestaurantID: "rest-kigali-pizza", Name: "Peri Peri Chicken Pizza", Description: "Spicy grilled chicken and peppers", Price: 11000, Category: "Pizza", Ingredients: []string{"chicken", "peri peri", "peppers"}, Available: true},
		{ID: "item-garlic-bread", RestaurantID: "rest-kigali-pizza", Name: "Garlic Bread", Description: "Warm, buttery, herby", Price: 3000, Category: "Sides", Ingredients: []string{"bread", "garlic", "butter"}, Available: true},
		{ID: "item-fanta-citron", RestaurantID: "rest-kigali-pizza", Name: "Fanta Citron", Description: "Chilled 50cl bottle", Price: 1000, Category: "Drinks", Available: true},

		// Nyama Choma Grill
		{ID: "item-brochettes", RestaurantID: "rest-nyama-choma", Name: "Goat Brochettes", Description: "Three skewers with grilled plantain", Price: 3500, Category: "Grill", Ingredients: []string{"goat", "plantain", "pili pili"}, Available: true, Popular: true},
		{ID: "item-fish-brochettes", RestaurantID: "rest-nyama-choma", Name: "Fish Brochettes", Description: "Tilapia skewers, lime and chilli", Price: 4500, Category: "Grill", Ingredients: []string{"tilapia", "lime", "chilli"}, Available: true},
		{ID: "item-chips", RestaurantID: "rest-nyama-choma", Name: "Chips", Description: "Double-fried potato chips", Price: 2000, Category: "Sides", Available: true},
		{ID: "item-urwagwa", RestaurantID: "rest-nyama-choma", Name: "Urwagwa", Description: "Traditional banana beer", Price: 2500, Category: "Drinks", Available: false},

		// Fresh Bites
		{ID: "item-avocado-wrap", RestaurantID: "rest-fresh-bites", Name: "Avocado Chicken Wrap", Description: "Grilled chicken, avocado, greens", Price: 5500, Category: "Wraps", Ingredients: []string{"chicken", "avocado", "lettuce"}, Available: true, Popular: true},
		{ID: "item-garden-salad", RestaurantID: "rest-fresh-bites", Name: "Garden Salad", Description: "Seasonal vegetables, house dressing", Price: 4000, Category: "Salads", Available: true},
		{ID: "item-passion-juice", RestaurantID: "rest-fresh-bites", Name: "Passion Fruit Juice", Description: "Fresh-pressed, no sugar added", Price: 2000, Category: "Drinks", Available: true},

		// Inzozi Coffee
		{ID: "item-cappuccino", RestaurantID: "rest-inzozi-coffee", Name: "Cappuccino", Description: "Double shot, Huye beans", Price: 2500, Category: "Coffee", Available: true, Popular: true},
		{ID: "item-rolex", RestaurantID: "rest-inzozi-coffee", Name: "Rolex", Description: "Rolled chapati with eggs and vegetables", Price: 3000, Category: "Breakfast", Ingredients: []string{"chapati", "eggs", "tomato", "cabbage"}, Available: true},
		{ID: "item-mandazi", RestaurantID: "rest-inzozi-coffee", Name: "Mandazi", Description: "Sweet fried dough, three pieces", Price: 1500, Category: "Breakfast", Available: true},
		{ID: "item-african-tea", RestaurantID: "rest-inzozi-coffee", Name: "African Tea", Description: "Milky spiced tea", Price: 1500, Category: "Coffee", Available: true},

		// Umucyo Restaurant
		{ID: "item-buffet-plate", RestaurantID: "rest-umucyo", Name: "Buffet Plate", Description: "Rice, beans, vegetables and one protein", Price: 5000, Category: "Mains", Available: true, Popular: true},
		{ID: "item-umucyo-isombe", RestaurantID: "rest-umucyo", Name: "Isombe Special", Description: "With smoked fish", Price: 5500, Category: "Mains", Ingredients: []string{"cassava leaves", "smoked fish"}, Available: true},
		{ID: "item-ibirayi", RestaurantID: "rest-umucyo", Name: "Ibirayi", Description: "Fried potatoes with vegetables", Price: 2500, Category: "Sides", Available: true},
	}
}
