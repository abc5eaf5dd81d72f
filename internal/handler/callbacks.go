package handler

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode"

	"deligo/internal/domain"
	"deligo/internal/i18n"
	"deligo/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified,
// just acknowledge the callback. Otherwise acknowledge and return the error
// so the caller can send a new message instead.
func (h *Handler) handleEditError(err error, c tele.Context, chatID int64) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	if strings.Contains(errStr, "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("chat_id", chatID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("chat_id", chatID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// respondScreen renders the given state and edits the message in place, or
// sends a new one when editing is not possible.
func (h *Handler) respondScreen(c tele.Context, chatID int64, state domain.AppState) error {
	text, markup := h.render(chatID, state)

	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, chatID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// showScreen re-reads the session and renders its active screen.
func (h *Handler) showScreen(c tele.Context, chatID int64) error {
	state, err := h.sessions.State(chatID)
	if err != nil {
		h.logger.Error("Failed to load session", zap.Error(err), zap.Int64("chat_id", chatID))
		return c.Send(i18n.T(domain.LanguageEnglish, i18n.KeyErrorGeneric))
	}
	return h.respondScreen(c, chatID, state)
}

// toast flashes a short callback notification without changing the screen.
func (h *Handler) toast(c tele.Context, chatID int64, key i18n.Key, alert bool) error {
	state, err := h.sessions.State(chatID)
	lang := domain.LanguageEnglish
	if err == nil {
		lang = state.Language
	}
	return c.Respond(&tele.CallbackResponse{Text: i18n.T(lang, key), ShowAlert: alert})
}

// handleCallback routes ALL callback queries by their unique.
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	chatID := c.Sender().ID
	data := cleanCallbackData(callback.Data)
	args := strings.Split(data, "|")

	h.logger.Info("Processing callback",
		zap.String("unique", callback.Unique),
		zap.String("data", data),
		zap.Int64("chat_id", chatID),
	)

	switch callback.Unique {
	case cbNav:
		return h.handleNav(c, chatID, domain.ScreenID(args[0]))
	case cbOnboardOK:
		return h.handleOnboardingDone(c, chatID)
	case cbDetectLoc:
		return h.handleDetectLocation(c, chatID)
	case cbSkipLoc:
		return h.handleSkipLocation(c, chatID)
	case cbGuest:
		return h.handleGuestLogin(c, chatID)
	case cbLoginFlow:
		return h.handleLoginFlow(c, chatID)
	case cbCategory:
		return h.handleCategory(c, chatID, args[0])
	case cbRestaurant:
		return h.handleRestaurant(c, chatID, args[0])
	case cbVendorCat:
		return h.handleVendorCategory(c, chatID, args)
	case cbItem:
		return h.handleItem(c, chatID, args[0])
	case cbAddItem:
		return h.handleAddItem(c, chatID, args[0])
	case cbQuantity:
		return h.handleQuantity(c, chatID, args)
	case cbDropLine:
		return h.handleDropLine(c, chatID, args[0])
	case cbClearCart:
		return h.handleClearCart(c, chatID)
	case cbFavorite:
		return h.handleFavorite(c, chatID, args[0])
	case cbCheckout:
		return h.handleCheckout(c, chatID)
	case cbPay:
		return h.handlePay(c, chatID, domain.PaymentMethod(args[0]))
	case cbOrder:
		return h.handleTrackOrder(c, chatID, args[0])
	case cbCancelOrd:
		return h.handleCancelOrder(c, chatID, args[0])
	case cbLanguage:
		return h.handleLanguage(c, chatID, domain.Language(args[0]))
	case cbSort:
		return h.handleBrowse(c, chatID, domain.FilterAll, domain.RestaurantSort(args[0]), 1)
	case cbFilter:
		return h.handleBrowse(c, chatID, domain.RestaurantFilter(args[0]), domain.SortByRating, 1)
	case cbPage:
		return h.handlePage(c, chatID, args)
	case cbThread:
		return h.handleThread(c, chatID, args[0])
	case cbEditName:
		return h.handleEditName(c, chatID)
	case cbLogout:
		return h.handleLogout(c, chatID)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("unique", callback.Unique),
		zap.String("data", data),
	)
	return c.Respond()
}

func (h *Handler) handleNav(c tele.Context, chatID int64, target domain.ScreenID) error {
	if target == domain.ScreenSearch {
		h.SetInput(chatID, &domain.InputData{State: domain.InputSearchQuery})
	}

	state, err := h.sessions.Navigate(chatID, target, nil)
	if err != nil {
		h.logger.Error("Navigation failed", zap.Error(err), zap.Int64("chat_id", chatID))
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	return h.respondScreen(c, chatID, state)
}

func (h *Handler) handleOnboardingDone(c tele.Context, chatID int64) error {
	if _, err := h.sessions.CompleteOnboarding(chatID); err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	return h.handleNav(c, chatID, domain.ScreenLocationPermission)
}

// handleDetectLocation runs the stub geolocation lookup, stores the result
// and moves on to sign-in.
func (h *Handler) handleDetectLocation(c tele.Context, chatID int64) error {
	state, err := h.sessions.State(chatID)
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	c.Respond(&tele.CallbackResponse{Text: i18n.T(state.Language, i18n.KeyLocationDetecting)})

	address, err := h.location.Detect(context.Background())
	if err != nil {
		h.logger.Error("Location detection failed", zap.Error(err), zap.Int64("chat_id", chatID))
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	if _, err := h.sessions.GrantLocation(chatID, address); err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	return h.handleNav(c, chatID, h.afterLocation(state))
}

func (h *Handler) handleSkipLocation(c tele.Context, chatID int64) error {
	state, err := h.sessions.State(chatID)
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	return h.handleNav(c, chatID, h.afterLocation(state))
}

// afterLocation sends new sessions to sign-in and returning ones home.
func (h *Handler) afterLocation(state domain.AppState) domain.ScreenID {
	if state.User == nil {
		return domain.ScreenLogin
	}
	return domain.ScreenHome
}

func (h *Handler) handleGuestLogin(c tele.Context, chatID int64) error {
	if _, err := h.sessions.LoginGuest(chatID); err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	return h.handleNav(c, chatID, domain.ScreenHome)
}

// handleLoginFlow starts the name/phone sign-in conversation.
func (h *Handler) handleLoginFlow(c tele.Context, chatID int64) error {
	state, err := h.sessions.State(chatID)
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	h.SetInput(chatID, &domain.InputData{State: domain.InputLoginName})
	c.Respond()
	return c.Send(i18n.T(state.Language, i18n.KeyLoginNamePrompt))
}

func (h *Handler) handleCategory(c tele.Context, chatID int64, categoryID string) error {
	category, err := h.catalog.Category(categoryID)
	if err != nil {
		h.logger.Warn("Unknown category", zap.String("category_id", categoryID))
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	state, err := h.sessions.Navigate(chatID, domain.ScreenCategory, &domain.NavPayload{Category: category})
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	return h.respondScreen(c, chatID, state)
}

func (h *Handler) handleRestaurant(c tele.Context, chatID int64, restaurantID string) error {
	vendor, err := h.catalog.Restaurant(restaurantID)
	if err != nil {
		h.logger.Warn("Unknown restaurant", zap.String("restaurant_id", restaurantID))
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	state, err := h.sessions.Navigate(chatID, domain.ScreenVendorProfile, &domain.NavPayload{Vendor: vendor})
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	return h.respondScreen(c, chatID, state)
}

// handleVendorCategory opens one menu section of a vendor. The section name
// doubles as the category id since menu sections are plain labels.
func (h *Handler) handleVendorCategory(c tele.Context, chatID int64, args []string) error {
	if len(args) < 2 {
		return c.Respond()
	}
	vendor, err := h.catalog.Restaurant(args[0])
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	section := &domain.Category{ID: args[1], NameEN: args[1]}

	state, err := h.sessions.Navigate(chatID, domain.ScreenMenuCategory, &domain.NavPayload{
		Vendor:   vendor,
		Category: section,
	})
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	return h.respondScreen(c, chatID, state)
}

func (h *Handler) handleItem(c tele.Context, chatID int64, itemID string) error {
	item, err := h.catalog.Item(itemID)
	if err != nil {
		h.logger.Warn("Unknown menu item", zap.String("item_id", itemID))
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	payload := &domain.NavPayload{Product: item}
	if vendor, err := h.catalog.Restaurant(item.RestaurantID); err == nil {
		payload.Vendor = vendor
	}

	state, err := h.sessions.Navigate(chatID, domain.ScreenProductDetail, payload)
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	return h.respondScreen(c, chatID, state)
}

func (h *Handler) handleAddItem(c tele.Context, chatID int64, itemID string) error {
	item, err := h.catalog.Item(itemID)
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	vendor, err := h.catalog.Restaurant(item.RestaurantID)
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}

	state, err := h.cart.AddItem(chatID, *item, *vendor, 1, "")
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	c.Respond(&tele.CallbackResponse{Text: i18n.Tf(state.Language, i18n.KeyCartAdded, item.Name)})
	return h.respondScreen(c, chatID, state)
}

func (h *Handler) handleQuantity(c tele.Context, chatID int64, args []string) error {
	if len(args) < 2 {
		return c.Respond()
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return c.Respond()
	}

	state, err := h.cart.UpdateQuantity(chatID, args[0], quantity)
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	return h.respondScreen(c, chatID, state)
}

func (h *Handler) handleDropLine(c tele.Context, chatID int64, lineID string) error {
	state, err := h.cart.RemoveLine(chatID, lineID)
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	return h.respondScreen(c, chatID, state)
}

func (h *Handler) handleClearCart(c tele.Context, chatID int64) error {
	state, err := h.cart.Clear(chatID)
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	return h.respondScreen(c, chatID, state)
}

func (h *Handler) handleFavorite(c tele.Context, chatID int64, itemID string) error {
	state, err := h.sessions.ToggleSaved(chatID, itemID)
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	return h.respondScreen(c, chatID, state)
}

// handleCheckout starts the checkout conversation. An empty cart is refused
// up front so the user never fills a form for nothing.
func (h *Handler) handleCheckout(c tele.Context, chatID int64) error {
	state, err := h.sessions.State(chatID)
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	if len(state.Cart) == 0 {
		return h.toast(c, chatID, i18n.KeyCheckoutEmptyCart, true)
	}

	form := domain.CheckoutForm{DeliveryMethod: "delivery"}
	if state.User != nil && !state.User.IsGuest {
		form.FullName = state.User.Name
		form.PhoneNumber = state.User.Phone
	}
	h.SetInput(chatID, &domain.InputData{State: domain.InputCheckoutName, Form: form})

	next, err := h.sessions.Navigate(chatID, domain.ScreenCheckout, nil)
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	return h.respondScreen(c, chatID, next)
}

// handlePay closes the checkout: the collected form plus the chosen method
// become an order, and the confirmation screen takes over.
func (h *Handler) handlePay(c tele.Context, chatID int64, method domain.PaymentMethod) error {
	form := h.GetInput(chatID).Form

	order, err := h.orders.PlaceOrder(chatID, form, method)
	if err != nil {
		var verrs domain.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			h.logger.Warn("Checkout form rejected", zap.Error(err), zap.Int64("chat_id", chatID))
			h.SetInput(chatID, &domain.InputData{State: domain.InputCheckoutName, Form: form})
			return h.toast(c, chatID, i18n.KeyErrorGeneric, true)
		case errors.Is(err, domain.ErrEmptyCart):
			return h.toast(c, chatID, i18n.KeyCheckoutEmptyCart, true)
		}
		h.logger.Error("Failed to place order", zap.Error(err), zap.Int64("chat_id", chatID))
		return h.toast(c, chatID, i18n.KeyErrorGeneric, true)
	}
	h.ResetInput(chatID)

	state, err := h.sessions.Navigate(chatID, domain.ScreenOrderConfirmation, &domain.NavPayload{Order: &order})
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	return h.respondScreen(c, chatID, state)
}

func (h *Handler) handleTrackOrder(c tele.Context, chatID int64, orderID string) error {
	order, err := h.orders.OrderByID(chatID, orderID)
	if err != nil {
		h.logger.Warn("Unknown order", zap.String("order_id", orderID), zap.Int64("chat_id", chatID))
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	state, err := h.sessions.Navigate(chatID, domain.ScreenOrderTracking, &domain.NavPayload{Order: order})
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	return h.respondScreen(c, chatID, state)
}

func (h *Handler) handleCancelOrder(c tele.Context, chatID int64, orderID string) error {
	if err := h.orders.Cancel(chatID, orderID); err != nil {
		if errors.Is(err, service.ErrNotCancellable) {
			return h.toast(c, chatID, i18n.KeyErrorGeneric, true)
		}
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}

	state, err := h.sessions.State(chatID)
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	c.Respond(&tele.CallbackResponse{Text: i18n.Tf(state.Language, i18n.KeyOrderCancelled, shortID(orderID))})
	return h.respondScreen(c, chatID, state)
}

func (h *Handler) handleLanguage(c tele.Context, chatID int64, lang domain.Language) error {
	state, err := h.sessions.SetLanguage(chatID, lang)
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	c.Respond(&tele.CallbackResponse{Text: i18n.T(lang, i18n.KeyLanguageSet)})
	return h.respondScreen(c, chatID, state)
}

// handleBrowse re-renders home with an explicit filter, sort and page.
func (h *Handler) handleBrowse(c tele.Context, chatID int64, filter domain.RestaurantFilter, sort domain.RestaurantSort, page int) error {
	state, err := h.sessions.Navigate(chatID, domain.ScreenHome, nil)
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}

	text, markup := h.renderHome(state, filter, sort, page)
	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, chatID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handlePage flips pages of the home restaurant list, keeping the active
// filter and sort.
func (h *Handler) handlePage(c tele.Context, chatID int64, args []string) error {
	if len(args) < 3 {
		return c.Respond()
	}
	page, err := strconv.Atoi(args[0])
	if err != nil {
		return c.Respond()
	}
	return h.handleBrowse(c, chatID, domain.RestaurantFilter(args[1]), domain.RestaurantSort(args[2]), page)
}

// handleThread opens one chat thread; the thread id rides in the nav query.
func (h *Handler) handleThread(c tele.Context, chatID int64, threadID string) error {
	state, err := h.sessions.Navigate(chatID, domain.ScreenChatDetail, &domain.NavPayload{Query: &threadID})
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	return h.respondScreen(c, chatID, state)
}

func (h *Handler) handleEditName(c tele.Context, chatID int64) error {
	h.SetInput(chatID, &domain.InputData{State: domain.InputProfileName})
	state, err := h.sessions.Navigate(chatID, domain.ScreenEditProfile, nil)
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	return h.respondScreen(c, chatID, state)
}

func (h *Handler) handleLogout(c tele.Context, chatID int64) error {
	h.ResetInput(chatID)
	state, err := h.sessions.Logout(chatID)
	if err != nil {
		return h.toast(c, chatID, i18n.KeyErrorGeneric, false)
	}
	return h.respondScreen(c, chatID, state)
}
