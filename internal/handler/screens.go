package handler

import (
	"fmt"
	"strconv"
	"strings"

	"deligo/internal/domain"
	"deligo/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// render builds the text and inline keyboard for the session's active
// screen. Every interaction ends up back here: mutate state, re-render.
func (h *Handler) render(chatID int64, state domain.AppState) (string, *tele.ReplyMarkup) {
	switch state.Screen {
	case domain.ScreenSplash:
		return h.renderSplash(state)
	case domain.ScreenOnboarding:
		return h.renderOnboarding(state)
	case domain.ScreenLocationPermission:
		return h.renderLocationPermission(state)
	case domain.ScreenLogin:
		return h.renderLogin(state)
	case domain.ScreenHome:
		return h.renderHome(state, domain.FilterAll, domain.SortByRating, 1)
	case domain.ScreenSearch:
		return h.renderSearch(state)
	case domain.ScreenCategory:
		return h.renderCategory(state)
	case domain.ScreenVendorProfile:
		return h.renderVendorProfile(state)
	case domain.ScreenMenuCategory:
		return h.renderMenuCategory(state)
	case domain.ScreenProductDetail:
		return h.renderProductDetail(state)
	case domain.ScreenCart:
		return h.renderCart(state)
	case domain.ScreenCheckout:
		return h.renderCheckout(state)
	case domain.ScreenOrderConfirmation:
		return h.renderOrderConfirmation(state)
	case domain.ScreenOrderTracking:
		return h.renderOrderTracking(chatID, state)
	case domain.ScreenOrders:
		return h.renderOrders(chatID, state)
	case domain.ScreenProfile:
		return h.renderProfile(state)
	case domain.ScreenEditProfile:
		return h.renderEditProfile(state)
	case domain.ScreenSaved:
		return h.renderSaved(state)
	case domain.ScreenNotifications:
		return h.renderNotifications(state)
	case domain.ScreenChat:
		return h.renderChat(state)
	case domain.ScreenChatDetail:
		return h.renderChatDetail(state)
	case domain.ScreenCallHistory:
		return h.renderCallHistory(state)
	case domain.ScreenLoyalty:
		return h.renderLoyalty(chatID, state)
	case domain.ScreenReferral:
		return h.renderReferral(state)
	case domain.ScreenSettings:
		return h.renderSettings(state)
	case domain.ScreenLanguageSettings:
		return h.renderLanguageSettings(state)
	case domain.ScreenHelp:
		return h.renderHelp(state)
	}

	h.logger.Warn("Rendering unknown screen, falling back to home",
		zap.Int64("chat_id", chatID),
		zap.String("screen", string(state.Screen)),
	)
	return h.renderHome(state, domain.FilterAll, domain.SortByRating, 1)
}

// shortID trims an order id down to a human-friendly reference.
func shortID(id string) string {
	compact := strings.ReplaceAll(id, "-", "")
	if len(compact) > 8 {
		compact = compact[:8]
	}
	return "#" + strings.ToUpper(compact)
}

func navBtn(m *tele.ReplyMarkup, lang domain.Language, key i18n.Key, target domain.ScreenID) tele.Btn {
	return m.Data(i18n.T(lang, key), cbNav, string(target))
}

func homeRow(m *tele.ReplyMarkup, lang domain.Language) tele.Row {
	return m.Row(navBtn(m, lang, i18n.KeyBtnHome, domain.ScreenHome))
}

func (h *Handler) renderSplash(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	next := domain.ScreenOnboarding
	if state.OnboardingDone {
		next = domain.ScreenLogin
	}

	m := &tele.ReplyMarkup{}
	m.Inline(m.Row(navBtn(m, lang, i18n.KeyBtnGetStarted, next)))
	return i18n.T(lang, i18n.KeyWelcome), m
}

func (h *Handler) renderOnboarding(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(m.Data(i18n.T(lang, i18n.KeyBtnGetStarted), cbOnboardOK)),
		m.Row(m.Data(i18n.T(lang, i18n.KeyBtnLanguage), cbNav, string(domain.ScreenLanguageSettings))),
	)
	return i18n.T(lang, i18n.KeyOnboarding), m
}

func (h *Handler) renderLocationPermission(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(m.Data(i18n.T(lang, i18n.KeyBtnAllowLocation), cbDetectLoc)),
		m.Row(m.Data(i18n.T(lang, i18n.KeyBtnSkip), cbSkipLoc)),
	)
	return i18n.T(lang, i18n.KeyLocationPrompt), m
}

func (h *Handler) renderLogin(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(m.Data(i18n.T(lang, i18n.KeyBtnLogin), cbLoginFlow)),
		m.Row(m.Data(i18n.T(lang, i18n.KeyBtnGuest), cbGuest)),
	)
	return i18n.T(lang, i18n.KeyLoginPrompt), m
}

// renderHome is the main browse surface: categories plus one page of the
// restaurant list under the requested filter and sort.
func (h *Handler) renderHome(state domain.AppState, filter domain.RestaurantFilter, sort domain.RestaurantSort, page int) (string, *tele.ReplyMarkup) {
	lang := state.Language

	var b strings.Builder
	b.WriteString(i18n.T(lang, i18n.KeyHomeTitle))
	if state.Location != "" {
		b.WriteString("\n" + i18n.Tf(lang, i18n.KeyLocationDetected, state.Location))
	}

	m := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	categories, err := h.catalog.Categories()
	if err != nil {
		h.logger.Error("Failed to load categories", zap.Error(err))
	}
	row := tele.Row{}
	for _, cat := range categories {
		row = append(row, m.Data(cat.Icon+" "+cat.Name(lang), cbCategory, cat.ID))
		if len(row) == 2 {
			rows = append(rows, row)
			row = tele.Row{}
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	restaurants, err := h.catalog.Restaurants(filter, sort)
	if err != nil {
		h.logger.Error("Failed to load restaurants", zap.Error(err))
	}

	totalPages := (len(restaurants) + h.pageSize - 1) / h.pageSize
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	start := (page - 1) * h.pageSize
	end := start + h.pageSize
	if end > len(restaurants) {
		end = len(restaurants)
	}

	b.WriteString("\n\n" + i18n.T(lang, i18n.KeyRestaurantsTitle) + ":")
	for _, r := range restaurants[start:end] {
		b.WriteString(fmt.Sprintf("\n• %s — ⭐ %.1f · %.1f km · %d min", r.Name, r.Rating, r.DistanceKm, r.DeliveryTimeMin))
		rows = append(rows, m.Row(m.Data("🍴 "+r.Name, cbRestaurant, r.ID)))
	}

	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, m.Data("⬅️", cbPage, strconv.Itoa(page-1), string(filter), string(sort)))
		}
		if page < totalPages {
			navRow = append(navRow, m.Data("➡️", cbPage, strconv.Itoa(page+1), string(filter), string(sort)))
		}
		rows = append(rows, navRow)
	}

	rows = append(rows,
		m.Row(
			m.Data("⭐", cbSort, string(domain.SortByRating)),
			m.Data("📍", cbSort, string(domain.SortByDistance)),
			m.Data("⏱", cbSort, string(domain.SortByDeliveryTime)),
			m.Data("🔥", cbSort, string(domain.SortByOrders)),
			m.Data("🆓", cbFilter, string(domain.FilterFreeDelivery)),
		),
		m.Row(
			navBtn(m, lang, i18n.KeyBtnSearch, domain.ScreenSearch),
			navBtn(m, lang, i18n.KeyBtnCart, domain.ScreenCart),
		),
		m.Row(
			navBtn(m, lang, i18n.KeyBtnOrders, domain.ScreenOrders),
			navBtn(m, lang, i18n.KeyBtnSaved, domain.ScreenSaved),
		),
		m.Row(
			navBtn(m, lang, i18n.KeyBtnProfile, domain.ScreenProfile),
			navBtn(m, lang, i18n.KeyBtnSettings, domain.ScreenSettings),
		),
	)
	m.Inline(rows...)
	return b.String(), m
}

func (h *Handler) renderSearch(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}

	query := strings.TrimSpace(state.Nav.Query)
	if query == "" {
		m.Inline(homeRow(m, lang))
		return i18n.T(lang, i18n.KeySearchPrompt), m
	}

	results, err := h.catalog.Search(query)
	if err != nil {
		h.logger.Error("Search failed", zap.Error(err), zap.String("query", query))
	}
	if len(results.Restaurants) == 0 && len(results.Items) == 0 {
		m.Inline(homeRow(m, lang))
		return i18n.Tf(lang, i18n.KeySearchNoResults, query), m
	}

	rows := []tele.Row{}
	for _, r := range results.Restaurants {
		rows = append(rows, m.Row(m.Data("🍴 "+r.Name, cbRestaurant, r.ID)))
	}
	for _, it := range results.Items {
		rows = append(rows, m.Row(m.Data(fmt.Sprintf("%s — %s", it.Name, h.price(it.Price)), cbItem, it.ID)))
	}
	rows = append(rows, homeRow(m, lang))
	m.Inline(rows...)
	return i18n.Tf(lang, i18n.KeySearchResults, query), m
}

// renderCategory lists the restaurants of the selected browse category.
func (h *Handler) renderCategory(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}

	sel := state.Nav.Category
	if sel == nil || sel.Category == nil {
		m.Inline(homeRow(m, lang))
		return i18n.T(lang, i18n.KeyCategoriesTitle), m
	}

	restaurants, err := h.catalog.RestaurantsInCategory(sel.Category.ID)
	if err != nil {
		h.logger.Error("Failed to load category restaurants", zap.Error(err))
	}

	rows := []tele.Row{}
	for _, r := range restaurants {
		rows = append(rows, m.Row(m.Data(fmt.Sprintf("🍴 %s · ⭐ %.1f", r.Name, r.Rating), cbRestaurant, r.ID)))
	}
	rows = append(rows, homeRow(m, lang))
	m.Inline(rows...)
	return sel.Category.Icon + " " + sel.Category.Name(lang), m
}

func (h *Handler) renderVendorProfile(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}

	vendor := state.Nav.Vendor
	if vendor == nil {
		m.Inline(homeRow(m, lang))
		return i18n.T(lang, i18n.KeyRestaurantsTitle), m
	}

	var b strings.Builder
	b.WriteString("🍴 " + vendor.Name)
	badges := []string{}
	if vendor.Verified {
		badges = append(badges, "✔️")
	}
	if vendor.FreeDelivery {
		badges = append(badges, "🆓")
	}
	if vendor.Promoted {
		badges = append(badges, "🔥")
	}
	if len(badges) > 0 {
		b.WriteString(" " + strings.Join(badges, " "))
	}
	b.WriteString(fmt.Sprintf("\n⭐ %.1f · %.1f km · %d min · %d+ orders", vendor.Rating, vendor.DistanceKm, vendor.DeliveryTimeMin, vendor.OrderCount))
	if vendor.Description != "" {
		b.WriteString("\n\n" + vendor.Description)
	}
	b.WriteString("\n\n" + i18n.T(lang, i18n.KeyMenuTitle) + ":")

	sections, err := h.catalog.MenuCategories(vendor.ID)
	if err != nil {
		h.logger.Error("Failed to load menu sections", zap.Error(err), zap.String("restaurant_id", vendor.ID))
	}

	rows := []tele.Row{}
	for _, section := range sections {
		rows = append(rows, m.Row(m.Data("📖 "+section, cbVendorCat, vendor.ID, section)))
	}
	rows = append(rows, homeRow(m, lang))
	m.Inline(rows...)
	return b.String(), m
}

// renderMenuCategory shows one menu section of one vendor.
func (h *Handler) renderMenuCategory(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}

	sel := state.Nav.Category
	if sel == nil || sel.Category == nil || sel.Vendor == nil {
		m.Inline(homeRow(m, lang))
		return i18n.T(lang, i18n.KeyMenuTitle), m
	}

	items, err := h.catalog.MenuByCategory(sel.Vendor.ID, sel.Category.ID)
	if err != nil {
		h.logger.Error("Failed to load menu section", zap.Error(err))
	}

	rows := []tele.Row{}
	for _, it := range items {
		label := fmt.Sprintf("%s — %s", it.Name, h.price(it.Price))
		if !it.Available {
			label = "🚫 " + label
		} else if it.Popular {
			label = "🔥 " + label
		}
		rows = append(rows, m.Row(m.Data(label, cbItem, it.ID)))
	}
	rows = append(rows,
		m.Row(m.Data(i18n.T(lang, i18n.KeyBtnBack), cbRestaurant, sel.Vendor.ID)),
		homeRow(m, lang),
	)
	m.Inline(rows...)
	return fmt.Sprintf("🍴 %s · %s", sel.Vendor.Name, sel.Category.Name(lang)), m
}

func (h *Handler) renderProductDetail(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}

	item := state.Nav.Product
	if item == nil {
		m.Inline(homeRow(m, lang))
		return i18n.T(lang, i18n.KeyMenuTitle), m
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🍲 %s\n%s", item.Name, h.price(item.Price)))
	if item.Description != "" {
		b.WriteString("\n\n" + item.Description)
	}
	if len(item.Ingredients) > 0 {
		b.WriteString("\n\n• " + strings.Join(item.Ingredients, "\n• "))
	}

	favKey := i18n.KeyBtnSave
	if _, saved := state.SavedItemIDs[item.ID]; saved {
		favKey = i18n.KeyBtnUnsave
	}

	rows := []tele.Row{
		m.Row(m.Data(i18n.T(lang, i18n.KeyBtnAddToCart), cbAddItem, item.ID)),
		m.Row(m.Data(i18n.T(lang, favKey), cbFavorite, item.ID)),
	}
	if state.Nav.Vendor != nil {
		rows = append(rows, m.Row(m.Data(i18n.T(lang, i18n.KeyBtnBack), cbRestaurant, state.Nav.Vendor.ID)))
	}
	rows = append(rows, m.Row(
		navBtn(m, lang, i18n.KeyBtnCart, domain.ScreenCart),
		navBtn(m, lang, i18n.KeyBtnHome, domain.ScreenHome),
	))
	m.Inline(rows...)
	return b.String(), m
}

func (h *Handler) renderCart(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}

	if len(state.Cart) == 0 {
		m.Inline(homeRow(m, lang))
		return i18n.T(lang, i18n.KeyCartEmpty), m
	}

	var b strings.Builder
	b.WriteString(i18n.T(lang, i18n.KeyCartTitle) + "\n")

	rows := []tele.Row{}
	for i, line := range state.Cart {
		b.WriteString(fmt.Sprintf("\n%d. %s ×%d — %s (%s)", i+1, line.Name, line.Quantity, h.price(line.Price*int64(line.Quantity)), line.VendorName))
		rows = append(rows, m.Row(
			m.Data(fmt.Sprintf("%d ➖", i+1), cbQuantity, line.ID, strconv.Itoa(line.Quantity-1)),
			m.Data(fmt.Sprintf("%d ➕", i+1), cbQuantity, line.ID, strconv.Itoa(line.Quantity+1)),
			m.Data(fmt.Sprintf("%d 🗑", i+1), cbDropLine, line.ID),
		))
	}

	totals := h.cart.Totals(state.Cart)
	b.WriteString(fmt.Sprintf("\n\n%s: %s\n%s: %s\n%s: %s",
		i18n.T(lang, i18n.KeySubtotal), h.price(totals.Subtotal),
		i18n.T(lang, i18n.KeyDeliveryFee), h.price(totals.DeliveryFee),
		i18n.T(lang, i18n.KeyTotal), h.price(totals.Total),
	))

	rows = append(rows,
		m.Row(m.Data(i18n.T(lang, i18n.KeyBtnCheckout), cbCheckout)),
		m.Row(m.Data(i18n.T(lang, i18n.KeyBtnClearCart), cbClearCart)),
		homeRow(m, lang),
	)
	m.Inline(rows...)
	return b.String(), m
}

// renderCheckout shows the priced summary; the form itself is collected
// message by message through the input flow started by the checkout button.
func (h *Handler) renderCheckout(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}

	totals := h.cart.Totals(state.Cart)
	text := fmt.Sprintf("%s\n\n%s: %s\n\n%s",
		i18n.T(lang, i18n.KeyCheckoutTitle),
		i18n.T(lang, i18n.KeyTotal), h.price(totals.Total),
		i18n.T(lang, i18n.KeyCheckoutName),
	)
	m.Inline(m.Row(navBtn(m, lang, i18n.KeyBtnCart, domain.ScreenCart)))
	return text, m
}

// paymentMarkup offers the stub payment methods.
func (h *Handler) paymentMarkup() *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(
			m.Data("📱 MTN MoMo", cbPay, string(domain.PaymentMTNMoMo)),
			m.Data("📱 Airtel Money", cbPay, string(domain.PaymentAirtelMoney)),
		),
		m.Row(
			m.Data("💳 Card", cbPay, string(domain.PaymentCard)),
			m.Data("💵 Cash", cbPay, string(domain.PaymentCashOnDelivery)),
		),
	)
	return m
}

func (h *Handler) renderOrderConfirmation(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	order := domain.CoerceOrder(state.Nav.Order)

	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(m.Data(i18n.T(lang, i18n.KeyBtnTrackOrder), cbOrder, order.ID)),
		homeRow(m, lang),
	)
	return i18n.Tf(lang, i18n.KeyOrderPlaced, shortID(order.ID), order.EstimatedDelivery, order.TransactionRef), m
}

// renderOrderTracking re-reads the order from history so the background
// tracker's status advances show up on every refresh.
func (h *Handler) renderOrderTracking(chatID int64, state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}

	ref := domain.CoerceOrder(state.Nav.Order)
	order, err := h.orders.OrderByID(chatID, ref.ID)
	if err != nil {
		order = &ref
	}
	current := domain.CoerceOrder(order)

	var b strings.Builder
	b.WriteString(i18n.Tf(lang, i18n.KeyOrderTrackingTitle, shortID(current.ID)))
	b.WriteString(fmt.Sprintf("\n%s · %s\n", current.VendorName, current.EstimatedDelivery))

	if current.Status == domain.OrderStatusCancelled {
		b.WriteString("\n❌ " + i18n.T(lang, i18n.KeyStatusCancelled))
	} else {
		reached := true
		for _, st := range []domain.OrderStatus{
			domain.OrderStatusPlaced,
			domain.OrderStatusConfirmed,
			domain.OrderStatusPreparing,
			domain.OrderStatusReady,
			domain.OrderStatusDelivered,
		} {
			mark := "⏳"
			if reached {
				mark = "✅"
			}
			b.WriteString(fmt.Sprintf("\n%s %s", mark, i18n.T(lang, i18n.StatusKey(st))))
			if st == current.Status {
				reached = false
			}
		}
	}

	rows := []tele.Row{
		m.Row(m.Data("🔄", cbOrder, current.ID)),
	}
	if current.Status.CanTransitionTo(domain.OrderStatusCancelled) {
		rows = append(rows, m.Row(m.Data(i18n.T(lang, i18n.KeyBtnCancelOrder), cbCancelOrd, current.ID)))
	}
	rows = append(rows,
		m.Row(navBtn(m, lang, i18n.KeyBtnOrders, domain.ScreenOrders)),
		homeRow(m, lang),
	)
	m.Inline(rows...)
	return b.String(), m
}

func (h *Handler) renderOrders(chatID int64, state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}

	orders, err := h.orders.Orders(chatID)
	if err != nil {
		h.logger.Error("Failed to load orders", zap.Error(err), zap.Int64("chat_id", chatID))
	}
	if len(orders) == 0 {
		m.Inline(homeRow(m, lang))
		return i18n.T(lang, i18n.KeyOrdersEmpty), m
	}

	rows := []tele.Row{}
	for _, o := range orders {
		label := fmt.Sprintf("%s · %s · %s", shortID(o.ID), h.price(o.Total), i18n.T(lang, i18n.StatusKey(o.Status)))
		rows = append(rows, m.Row(m.Data(label, cbOrder, o.ID)))
	}
	rows = append(rows, homeRow(m, lang))
	m.Inline(rows...)
	return i18n.T(lang, i18n.KeyOrdersTitle), m
}

func (h *Handler) renderProfile(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}

	if state.User == nil {
		m.Inline(
			m.Row(navBtn(m, lang, i18n.KeyBtnLogin, domain.ScreenLogin)),
			homeRow(m, lang),
		)
		return i18n.T(lang, i18n.KeyLoginPrompt), m
	}

	var b strings.Builder
	b.WriteString(i18n.T(lang, i18n.KeyProfileTitle))
	b.WriteString("\n\n" + state.User.Name)
	if state.User.Phone != "" {
		b.WriteString("\n📱 " + state.User.Phone)
	}
	if state.Location != "" {
		b.WriteString("\n📍 " + state.Location)
	}

	m.Inline(
		m.Row(m.Data(i18n.T(lang, i18n.KeyBtnEditProfile), cbEditName)),
		m.Row(
			navBtn(m, lang, i18n.KeyBtnLoyalty, domain.ScreenLoyalty),
			navBtn(m, lang, i18n.KeyBtnReferral, domain.ScreenReferral),
		),
		m.Row(
			navBtn(m, lang, i18n.KeyBtnOrders, domain.ScreenOrders),
			navBtn(m, lang, i18n.KeyBtnSaved, domain.ScreenSaved),
		),
		m.Row(m.Data(i18n.T(lang, i18n.KeyBtnLogout), cbLogout)),
		homeRow(m, lang),
	)
	return b.String(), m
}

func (h *Handler) renderEditProfile(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}
	m.Inline(m.Row(navBtn(m, lang, i18n.KeyBtnProfile, domain.ScreenProfile)))
	return i18n.T(lang, i18n.KeyEditNamePrompt), m
}

func (h *Handler) renderSaved(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}

	items, err := h.catalog.SavedItems(state.SavedItemIDs)
	if err != nil {
		h.logger.Error("Failed to load saved items", zap.Error(err))
	}
	if len(items) == 0 {
		m.Inline(homeRow(m, lang))
		return i18n.T(lang, i18n.KeySavedEmpty), m
	}

	rows := []tele.Row{}
	for _, it := range items {
		rows = append(rows, m.Row(m.Data(fmt.Sprintf("%s — %s", it.Name, h.price(it.Price)), cbItem, it.ID)))
	}
	rows = append(rows, homeRow(m, lang))
	m.Inline(rows...)
	return i18n.T(lang, i18n.KeySavedTitle), m
}

func (h *Handler) renderNotifications(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}
	m.Inline(homeRow(m, lang))

	feed, err := h.feed.Notifications()
	if err != nil {
		h.logger.Error("Failed to load notifications", zap.Error(err))
		return i18n.T(lang, i18n.KeyErrorGeneric), m
	}

	var b strings.Builder
	b.WriteString(i18n.T(lang, i18n.KeyNotificationsTitle) + "\n")
	for _, n := range feed {
		mark := "🔔"
		if n.Read {
			mark = "✔️"
		}
		b.WriteString(fmt.Sprintf("\n%s %s\n%s\n", mark, n.Title(lang), n.Body(lang)))
	}
	return b.String(), m
}

func (h *Handler) renderChat(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}

	threads, err := h.feed.Conversations()
	if err != nil {
		h.logger.Error("Failed to load conversations", zap.Error(err))
	}

	rows := []tele.Row{}
	for _, t := range threads {
		label := t.PartnerName
		if t.Unread > 0 {
			label = fmt.Sprintf("%s (%d)", t.PartnerName, t.Unread)
		}
		rows = append(rows, m.Row(m.Data("💬 "+label, cbThread, t.ID)))
	}
	rows = append(rows, homeRow(m, lang))
	m.Inline(rows...)
	return i18n.T(lang, i18n.KeyChatTitle), m
}

// renderChatDetail reads the thread id from the query slot of the nav
// payload, where the thread button put it.
func (h *Handler) renderChatDetail(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(navBtn(m, lang, i18n.KeyBtnChat, domain.ScreenChat)),
		homeRow(m, lang),
	)

	thread, err := h.feed.Conversation(state.Nav.Query)
	if err != nil {
		return i18n.T(lang, i18n.KeyChatTitle), m
	}

	var b strings.Builder
	b.WriteString("💬 " + thread.PartnerName + "\n")
	for _, msg := range thread.Messages {
		who := thread.PartnerName
		if msg.FromUser {
			who = "You"
			if lang == domain.LanguageKinyarwanda {
				who = "Wowe"
			}
		}
		b.WriteString(fmt.Sprintf("\n%s: %s", who, msg.Text))
	}
	return b.String(), m
}

func (h *Handler) renderCallHistory(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}
	m.Inline(homeRow(m, lang))

	calls, err := h.feed.CallHistory()
	if err != nil {
		h.logger.Error("Failed to load call history", zap.Error(err))
		return i18n.T(lang, i18n.KeyErrorGeneric), m
	}

	var b strings.Builder
	b.WriteString(i18n.T(lang, i18n.KeyCallHistoryTitle) + "\n")
	for _, call := range calls {
		mark := "📲"
		if call.Missed {
			mark = "❌"
		} else if !call.Incoming {
			mark = "📤"
		}
		b.WriteString(fmt.Sprintf("\n%s %s · %s", mark, call.PartnerName, call.At.Format("Jan 2 15:04")))
	}
	return b.String(), m
}

func (h *Handler) renderLoyalty(chatID int64, state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(navBtn(m, lang, i18n.KeyBtnProfile, domain.ScreenProfile)),
		homeRow(m, lang),
	)

	points, count, err := h.orders.LoyaltyPoints(chatID)
	if err != nil {
		h.logger.Error("Failed to compute loyalty points", zap.Error(err), zap.Int64("chat_id", chatID))
		return i18n.T(lang, i18n.KeyErrorGeneric), m
	}
	return i18n.T(lang, i18n.KeyLoyaltyTitle) + "\n\n" + i18n.Tf(lang, i18n.KeyLoyaltyPoints, points, count), m
}

func (h *Handler) renderReferral(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}

	if state.User == nil {
		m.Inline(
			m.Row(navBtn(m, lang, i18n.KeyBtnLogin, domain.ScreenLogin)),
			homeRow(m, lang),
		)
		return i18n.T(lang, i18n.KeyLoginPrompt), m
	}

	m.Inline(
		m.Row(navBtn(m, lang, i18n.KeyBtnProfile, domain.ScreenProfile)),
		homeRow(m, lang),
	)
	return i18n.Tf(lang, i18n.KeyReferralTitle, state.User.ReferralCode()), m
}

func (h *Handler) renderSettings(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(navBtn(m, lang, i18n.KeyBtnLanguage, domain.ScreenLanguageSettings)),
		m.Row(
			navBtn(m, lang, i18n.KeyBtnNotifications, domain.ScreenNotifications),
			navBtn(m, lang, i18n.KeyBtnChat, domain.ScreenChat),
		),
		m.Row(
			navBtn(m, lang, i18n.KeyBtnCallHistory, domain.ScreenCallHistory),
			navBtn(m, lang, i18n.KeyBtnHelp, domain.ScreenHelp),
		),
		homeRow(m, lang),
	)
	return i18n.T(lang, i18n.KeySettingsTitle), m
}

func (h *Handler) renderLanguageSettings(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(
			m.Data("🇬🇧 English", cbLanguage, string(domain.LanguageEnglish)),
			m.Data("🇷🇼 Kinyarwanda", cbLanguage, string(domain.LanguageKinyarwanda)),
		),
		homeRow(m, lang),
	)
	return i18n.T(lang, i18n.KeyLanguageTitle), m
}

func (h *Handler) renderHelp(state domain.AppState) (string, *tele.ReplyMarkup) {
	lang := state.Language
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(navBtn(m, lang, i18n.KeyBtnSettings, domain.ScreenSettings)),
		homeRow(m, lang),
	)
	return i18n.T(lang, i18n.KeyHelpText), m
}
