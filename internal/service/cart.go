package service

import (
	"deligo/internal/domain"
	"deligo/internal/repository"

	"go.uber.org/zap"
)

// CartService applies the cart reducer over session state.
type CartService struct {
	sessions    repository.SessionRepository
	deliveryFee int64
	logger      *zap.Logger
}

// NewCartService creates a new cart service with the flat delivery fee.
func NewCartService(sessions repository.SessionRepository, deliveryFee int64, logger *zap.Logger) *CartService {
	return &CartService{sessions: sessions, deliveryFee: deliveryFee, logger: logger}
}

// AddItem puts quantity of a menu item from a vendor into the chat's cart.
// A line already present by (name, vendor) has its quantity bumped instead.
func (s *CartService) AddItem(chatID int64, item domain.MenuItem, vendor domain.Restaurant, quantity int, notes string) (domain.AppState, error) {
	if quantity < 1 {
		quantity = 1
	}
	line := domain.CartLine{
		Name:                item.Name,
		Price:               item.Price,
		Quantity:            quantity,
		Image:               item.Image,
		VendorID:            vendor.ID,
		VendorName:          vendor.Name,
		Description:         item.Description,
		OriginalIngredients: item.Ingredients,
		SpecialNotes:        notes,
	}

	state, err := s.sessions.Update(chatID, func(state domain.AppState) (domain.AppState, error) {
		state.Cart = domain.AddToCart(state.Cart, line)
		return state, nil
	})
	if err == nil {
		s.logger.Info("Item added to cart",
			zap.Int64("chat_id", chatID),
			zap.String("item", item.Name),
			zap.String("vendor", vendor.Name),
			zap.Int("quantity", quantity),
		)
	}
	return state, err
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *CartService) UpdateQuantity(chatID int64, lineID string, quantity int) (domain.AppState, error) {
	return s.sessions.Update(chatID, func(state domain.AppState) (domain.AppState, error) {
		state.Cart = domain.UpdateQuantity(state.Cart, lineID, quantity)
		return state, nil
	})
}

// RemoveLine deletes a line from the cart.
func (s *CartService) RemoveLine(chatID int64, lineID string) (domain.AppState, error) {
	return s.sessions.Update(chatID, func(state domain.AppState) (domain.AppState, error) {
		state.Cart = domain.RemoveLine(state.Cart, lineID)
		return state, nil
	})
}

// Clear empties the cart.
func (s *CartService) Clear(chatID int64) (domain.AppState, error) {
	return s.sessions.Update(chatID, func(state domain.AppState) (domain.AppState, error) {
		state.Cart = nil
		return state, nil
	})
}

// Totals prices a cart at the configured delivery fee.
func (s *CartService) Totals(cart []domain.CartLine) domain.Totals {
	return domain.ComputeTotals(cart, s.deliveryFee)
}
