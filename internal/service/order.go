package service

import (
	"errors"

	"deligo/internal/domain"
	"deligo/internal/repository"

	"go.uber.org/zap"
)

// ErrNotCancellable rejects cancelling an order in a terminal status.
var ErrNotCancellable = errors.New("order can no longer be cancelled")

// OrderService turns carts into orders and manages order history.
type OrderService struct {
	sessions    repository.SessionRepository
	payments    *PaymentService
	deliveryFee int64
	logger      *zap.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(sessions repository.SessionRepository, payments *PaymentService, deliveryFee int64, logger *zap.Logger) *OrderService {
	return &OrderService{
		sessions:    sessions,
		payments:    payments,
		deliveryFee: deliveryFee,
		logger:      logger,
	}
}

// PlaceOrder validates the form, charges the stub gateway, snapshots the
// cart into a new order, appends it to history and clears the cart — all in
// one session update so nothing interleaves. Validation failures leave the
// session untouched.
func (s *OrderService) PlaceOrder(chatID int64, form domain.CheckoutForm, method domain.PaymentMethod) (domain.Order, error) {
	var placed domain.Order

	_, err := s.sessions.Update(chatID, func(state domain.AppState) (domain.AppState, error) {
		order, err := domain.NewOrder(state.Cart, form, method, s.deliveryFee)
		if err != nil {
			return state, err
		}

		receipt, err := s.payments.Authorize(method, order.Total, order.CustomerName)
		if err != nil {
			return state, err
		}
		order.TransactionRef = receipt.Reference

		orders := make([]domain.Order, 0, len(state.Orders)+1)
		orders = append(orders, state.Orders...)
		state.Orders = append(orders, order)
		state.Cart = nil

		placed = order
		return state, nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	s.logger.Info("Order placed",
		zap.Int64("chat_id", chatID),
		zap.String("order_id", placed.ID),
		zap.Int64("total", placed.Total),
		zap.String("payment_method", string(method)),
	)
	return placed, nil
}

// Orders returns the chat's order history, newest first.
func (s *OrderService) Orders(chatID int64) ([]domain.Order, error) {
	state, err := s.sessions.Get(chatID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Order, len(state.Orders))
	for i, o := range state.Orders {
		out[len(state.Orders)-1-i] = o
	}
	return out, nil
}

// OrderByID looks up one order in the chat's history.
func (s *OrderService) OrderByID(chatID int64, orderID string) (*domain.Order, error) {
	state, err := s.sessions.Get(chatID)
	if err != nil {
		return nil, err
	}
	for i := range state.Orders {
		if state.Orders[i].ID == orderID {
			o := state.Orders[i]
			return &o, nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

// Cancel moves an order to cancelled if its status still allows it.
func (s *OrderService) Cancel(chatID int64, orderID string) error {
	_, err := s.sessions.Update(chatID, func(state domain.AppState) (domain.AppState, error) {
		for i := range state.Orders {
			if state.Orders[i].ID != orderID {
				continue
			}
			if !state.Orders[i].Status.CanTransitionTo(domain.OrderStatusCancelled) {
				return state, ErrNotCancellable
			}
			orders := make([]domain.Order, len(state.Orders))
			copy(orders, state.Orders)
			orders[i].Status = domain.OrderStatusCancelled
			state.Orders = orders
			return state, nil
		}
		return state, repository.ErrOrderNotFound
	})
	if err == nil {
		s.logger.Info("Order cancelled",
			zap.Int64("chat_id", chatID),
			zap.String("order_id", orderID),
		)
	}
	return err
}

// LoyaltyPoints sums the points earned across the chat's order history.
// Every 100 RWF of a non-cancelled order earns one point.
func (s *OrderService) LoyaltyPoints(chatID int64) (int64, int, error) {
	state, err := s.sessions.Get(chatID)
	if err != nil {
		return 0, 0, err
	}

	var points int64
	counted := 0
	for _, o := range state.Orders {
		if o.Status == domain.OrderStatusCancelled {
			continue
		}
		points += o.Total / 100
		counted++
	}
	return points, counted, nil
}
