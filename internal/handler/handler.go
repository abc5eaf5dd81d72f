package handler

import (
	"fmt"
	"sync"

	"deligo/internal/domain"
	"deligo/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Callback kinds. Every inline button carries one of these as its unique,
// with the payload in the callback data.
const (
	cbNav        = "nav"
	cbCategory   = "cat"
	cbVendorCat  = "vcat"
	cbRestaurant = "rest"
	cbItem       = "item"
	cbAddItem    = "additem"
	cbQuantity   = "qty"
	cbDropLine   = "delline"
	cbFavorite   = "fav"
	cbPay        = "pay"
	cbOrder      = "ord"
	cbCancelOrd  = "cancelord"
	cbLanguage   = "lang"
	cbSort       = "sort"
	cbFilter     = "filter"
	cbThread     = "thread"
	cbGuest      = "guest"
	cbLoginFlow  = "loginflow"
	cbDetectLoc  = "detectloc"
	cbSkipLoc    = "skiploc"
	cbOnboardOK  = "onboardok"
	cbCheckout   = "checkout"
	cbClearCart  = "clearcart"
	cbEditName   = "editname"
	cbLogout     = "logout"
	cbPage       = "page"
)

// Handler wires every bot interaction to the app-state machine: callbacks
// and text messages come in as intents, the session is updated through the
// services, and the active screen is re-rendered from the new state.
type Handler struct {
	bot      *tele.Bot
	sessions *service.SessionService
	cart     *service.CartService
	orders   *service.OrderService
	catalog  *service.CatalogService
	feed     *service.FeedService
	location *service.LocationService
	currency string
	pageSize int
	logger   *zap.Logger

	// Pending multi-step text flows (checkout form, login, search).
	inputs   map[int64]*domain.InputData
	inputMux sync.RWMutex
}

// NewHandler creates a new handler instance.
func NewHandler(
	bot *tele.Bot,
	sessions *service.SessionService,
	cart *service.CartService,
	orders *service.OrderService,
	catalog *service.CatalogService,
	feed *service.FeedService,
	location *service.LocationService,
	currency string,
	pageSize int,
	logger *zap.Logger,
) *Handler {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Handler{
		bot:      bot,
		sessions: sessions,
		cart:     cart,
		orders:   orders,
		catalog:  catalog,
		feed:     feed,
		location: location,
		currency: currency,
		pageSize: pageSize,
		logger:   logger,
		inputs:   make(map[int64]*domain.InputData),
	}
}

// RegisterHandlers registers all bot handlers.
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetInput returns the user's pending input flow.
func (h *Handler) GetInput(chatID int64) *domain.InputData {
	h.inputMux.RLock()
	defer h.inputMux.RUnlock()

	input, exists := h.inputs[chatID]
	if !exists {
		return &domain.InputData{State: domain.InputIdle}
	}
	return input
}

// SetInput sets the user's pending input flow.
func (h *Handler) SetInput(chatID int64, input *domain.InputData) {
	h.inputMux.Lock()
	defer h.inputMux.Unlock()
	h.inputs[chatID] = input
}

// ResetInput cancels any pending input flow.
func (h *Handler) ResetInput(chatID int64) {
	h.SetInput(chatID, &domain.InputData{State: domain.InputIdle})
}

// price renders an amount in the configured currency.
func (h *Handler) price(amount int64) string {
	return fmt.Sprintf("%d %s", amount, h.currency)
}
