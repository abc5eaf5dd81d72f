package testutil

import (
	"time"

	"deligo/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests.
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestCartLine creates a cart line with sensible defaults.
func NewTestCartLine(id, name, vendorID string, price int64, quantity int) domain.CartLine {
	return domain.CartLine{
		ID:         id,
		Name:       name,
		Price:      price,
		Quantity:   quantity,
		VendorID:   vendorID,
		VendorName: "Test Kitchen",
	}
}

// NewTestRestaurant creates a restaurant for tests.
func NewTestRestaurant(id, name string) domain.Restaurant {
	return domain.Restaurant{
		ID:              id,
		Name:            name,
		Rating:          4.5,
		DistanceKm:      2.0,
		DeliveryTimeMin: 30,
		OrderCount:      100,
	}
}

// NewTestMenuItem creates a menu item for tests.
func NewTestMenuItem(id, restaurantID, name string, price int64) domain.MenuItem {
	return domain.MenuItem{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         name,
		Price:        price,
		Category:     "Mains",
		Available:    true,
	}
}

// NewTestOrder creates an order in the given status.
func NewTestOrder(id string, status domain.OrderStatus, total int64) domain.Order {
	return domain.Order{
		ID:                id,
		Items:             []domain.CartLine{NewTestCartLine("line-1", "Pizza", "v1", total-domain.DefaultDeliveryFee, 1)},
		Total:             total,
		Status:            status,
		VendorName:        "Test Kitchen",
		DeliveryAddress:   "KG 7 Ave, Kigali",
		CreatedAt:         time.Now(),
		EstimatedDelivery: domain.EstimatedDeliveryWindow,
	}
}

// ValidCheckoutForm returns a form that passes validation.
func ValidCheckoutForm() domain.CheckoutForm {
	return domain.CheckoutForm{
		FullName:        "Aline Uwase",
		PhoneNumber:     "+250781234567",
		DeliveryAddress: "KG 7 Ave, Kigali",
		DeliveryMethod:  "delivery",
	}
}
