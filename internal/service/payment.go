package service

import (
	"deligo/internal/domain"

	"go.uber.org/zap"
)

// PaymentReceipt is what the stubbed gateway hands back.
type PaymentReceipt struct {
	Status    string
	Reference string
}

// PaymentService stands in for a real payment gateway. It approves every
// charge and fabricates a display-only reference; a production integration
// must replace this with a gateway-issued reference.
type PaymentService struct {
	logger *zap.Logger
}

// NewPaymentService creates the stub gateway.
func NewPaymentService(logger *zap.Logger) *PaymentService {
	return &PaymentService{logger: logger}
}

// Authorize pretends to charge the customer and returns an approved receipt.
func (s *PaymentService) Authorize(method domain.PaymentMethod, amount int64, customer string) (PaymentReceipt, error) {
	ref := domain.NewTransactionRef(method)
	s.logger.Info("Mock payment authorized",
		zap.String("method", string(method)),
		zap.Int64("amount", amount),
		zap.String("customer", customer),
		zap.String("reference", ref),
	)
	return PaymentReceipt{Status: "approved", Reference: ref}, nil
}
