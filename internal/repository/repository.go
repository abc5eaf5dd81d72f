package repository

import (
	"errors"

	"deligo/internal/domain"
)

// ErrCategoryNotFound is returned for unknown category ids.
var ErrCategoryNotFound = errors.New("category not found")

// ErrRestaurantNotFound is returned for unknown restaurant ids.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// ErrMenuItemNotFound is returned for unknown menu item ids.
var ErrMenuItemNotFound = errors.New("menu item not found")

// ErrOrderNotFound is returned for unknown order ids.
var ErrOrderNotFound = errors.New("order not found")

// SessionRepository stores one AppState per chat. Update applies fn under
// the store's lock so read-modify-write cycles cannot interleave; an error
// from fn aborts the mutation and leaves the stored state untouched.
type SessionRepository interface {
	Get(chatID int64) (domain.AppState, error)
	Update(chatID int64, fn func(domain.AppState) (domain.AppState, error)) (domain.AppState, error)
	Reset(chatID int64) error
	ChatIDs() ([]int64, error)
}

// CatalogRepository serves the read-only restaurant and menu reference data.
// The current implementation is seeded in memory; a real catalog API slots
// in behind the same interface.
type CatalogRepository interface {
	Categories() ([]domain.Category, error)
	CategoryByID(id string) (*domain.Category, error)
	Restaurants() ([]domain.Restaurant, error)
	RestaurantByID(id string) (*domain.Restaurant, error)
	MenuItems(restaurantID string) ([]domain.MenuItem, error)
	MenuItemByID(id string) (*domain.MenuItem, error)
	AllMenuItems() ([]domain.MenuItem, error)
}

// FeedRepository serves the mock notification, chat and call-history feeds.
// Stands in for a real messaging backend.
type FeedRepository interface {
	Notifications() ([]domain.Notification, error)
	Conversations() ([]domain.Conversation, error)
	ConversationByID(id string) (*domain.Conversation, error)
	CallHistory() ([]domain.CallEntry, error)
}
