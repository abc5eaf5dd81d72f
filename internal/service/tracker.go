package service

import (
	"context"
	"time"

	"deligo/internal/domain"
	"deligo/internal/repository"

	"go.uber.org/zap"
)

// TrackerService simulates vendor-side order updates: every tick it moves
// each non-terminal order one step along the status lifecycle. A production
// port replaces this with real updates pushed by the vendor backend.
type TrackerService struct {
	sessions repository.SessionRepository
	interval time.Duration
	logger   *zap.Logger
}

// NewTrackerService creates a tracker that ticks at the given interval.
func NewTrackerService(sessions repository.SessionRepository, interval time.Duration, logger *zap.Logger) *TrackerService {
	return &TrackerService{sessions: sessions, interval: interval, logger: logger}
}

// Run advances orders on a ticker until the context is cancelled.
func (s *TrackerService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Order tracker stopped")
			return
		case <-ticker.C:
			if err := s.Tick(); err != nil {
				s.logger.Error("Order tracker tick failed", zap.Error(err))
			}
		}
	}
}

// Tick advances every active order in every session by one status step.
func (s *TrackerService) Tick() error {
	chatIDs, err := s.sessions.ChatIDs()
	if err != nil {
		return err
	}

	for _, chatID := range chatIDs {
		chatID := chatID
		_, err := s.sessions.Update(chatID, func(state domain.AppState) (domain.AppState, error) {
			advanced := false
			orders := make([]domain.Order, len(state.Orders))
			copy(orders, state.Orders)

			for i := range orders {
				next, ok := orders[i].Status.Next()
				if !ok {
					continue
				}
				s.logger.Info("Order status advanced",
					zap.Int64("chat_id", chatID),
					zap.String("order_id", orders[i].ID),
					zap.String("from", string(orders[i].Status)),
					zap.String("to", string(next)),
				)
				orders[i].Status = next
				advanced = true
			}

			if advanced {
				state.Orders = orders
			}
			return state, nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
