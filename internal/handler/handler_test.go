package handler

import (
	"testing"

	"deligo/internal/domain"
	"deligo/internal/repository/memory"
	"deligo/internal/service"
	"deligo/internal/testutil"

	"github.com/stretchr/testify/assert"
)

const testChatID int64 = 42

// newTestHandler wires a handler over in-memory stores. The bot itself is
// nil: rendering and input bookkeeping never touch it.
func newTestHandler(t *testing.T) (*Handler, *memory.SessionStore) {
	t.Helper()

	logger := testutil.NewTestLogger()
	store := memory.NewSessionStore()
	catalog := memory.NewCatalog()
	feed := memory.NewFeed()

	sessions := service.NewSessionService(store, logger)
	cart := service.NewCartService(store, domain.DefaultDeliveryFee, logger)
	payments := service.NewPaymentService(logger)
	orders := service.NewOrderService(store, payments, domain.DefaultDeliveryFee, logger)

	h := NewHandler(
		nil,
		sessions,
		cart,
		orders,
		service.NewCatalogService(catalog, logger),
		service.NewFeedService(feed),
		service.NewLocationService(0, logger),
		"RWF",
		4,
		logger,
	)
	return h, store
}

func TestGetInput_DefaultsToIdle(t *testing.T) {
	h, _ := newTestHandler(t)

	input := h.GetInput(testChatID)
	assert.Equal(t, domain.InputIdle, input.State)
}

func TestSetInput_RoundTrip(t *testing.T) {
	h, _ := newTestHandler(t)

	h.SetInput(testChatID, &domain.InputData{
		State: domain.InputCheckoutPhone,
		Form:  domain.CheckoutForm{FullName: "Aline Uwase"},
	})

	input := h.GetInput(testChatID)
	assert.Equal(t, domain.InputCheckoutPhone, input.State)
	assert.Equal(t, "Aline Uwase", input.Form.FullName)
}

func TestResetInput_ClearsFlow(t *testing.T) {
	h, _ := newTestHandler(t)

	h.SetInput(testChatID, &domain.InputData{State: domain.InputLoginName})
	h.ResetInput(testChatID)

	assert.Equal(t, domain.InputIdle, h.GetInput(testChatID).State)
}

func TestPrice_FormatsCurrency(t *testing.T) {
	h, _ := newTestHandler(t)

	assert.Equal(t, "4000 RWF", h.price(4000))
	assert.Equal(t, "0 RWF", h.price(0))
}
