package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// MockAddress is what the stubbed geolocation provider always resolves to.
const MockAddress = "KG 7 Ave, Kigali, Rwanda"

// LocationService stands in for a device geolocation + reverse-geocoding
// provider. It waits a fixed delay and returns a hardcoded address.
type LocationService struct {
	delay  time.Duration
	logger *zap.Logger
}

// NewLocationService creates the stub provider.
func NewLocationService(delay time.Duration, logger *zap.Logger) *LocationService {
	return &LocationService{delay: delay, logger: logger}
}

// Detect resolves the "current location" after the configured delay, or
// returns early when the context is cancelled.
func (s *LocationService) Detect(ctx context.Context) (string, error) {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
	}

	s.logger.Info("Mock location detected", zap.String("address", MockAddress))
	return MockAddress, nil
}
