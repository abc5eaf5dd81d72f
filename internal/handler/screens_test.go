package handler

import (
	"testing"

	"deligo/internal/domain"
	"deligo/internal/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

func TestRender_Splash(t *testing.T) {
	h, _ := newTestHandler(t)

	state := domain.NewAppState()
	text, markup := h.render(testChatID, state)

	assert.Equal(t, i18n.T(domain.LanguageEnglish, i18n.KeyWelcome), text)
	require.NotNil(t, markup)
	require.NotEmpty(t, markup.InlineKeyboard)
}

func TestRender_SplashKinyarwanda(t *testing.T) {
	h, _ := newTestHandler(t)

	state := domain.NewAppState()
	state.Language = domain.LanguageKinyarwanda
	text, _ := h.render(testChatID, state)

	assert.Equal(t, i18n.T(domain.LanguageKinyarwanda, i18n.KeyWelcome), text)
}

func TestRender_UnknownScreenFallsBackToHome(t *testing.T) {
	h, _ := newTestHandler(t)

	state := domain.NewAppState()
	state.Screen = domain.ScreenID("does-not-exist")
	text, _ := h.render(testChatID, state)

	assert.Contains(t, text, i18n.T(domain.LanguageEnglish, i18n.KeyHomeTitle))
}

func TestRenderHome_ListsCatalog(t *testing.T) {
	h, _ := newTestHandler(t)

	state := domain.NewAppState()
	state.Screen = domain.ScreenHome
	state.Location = "KG 7 Ave, Kigali, Rwanda"
	text, markup := h.render(testChatID, state)

	assert.Contains(t, text, "KG 7 Ave")

	restaurants, err := h.catalog.Restaurants(domain.FilterAll, domain.SortByRating)
	require.NoError(t, err)
	require.Greater(t, len(restaurants), h.pageSize)
	for i, r := range restaurants {
		if i < h.pageSize {
			assert.Contains(t, text, r.Name)
		} else {
			assert.NotContains(t, text, r.Name)
		}
	}
	require.NotNil(t, markup)
	assert.NotEmpty(t, markup.InlineKeyboard)
}

func TestRenderHome_SecondPage(t *testing.T) {
	h, _ := newTestHandler(t)

	state := domain.NewAppState()
	state.Screen = domain.ScreenHome

	restaurants, err := h.catalog.Restaurants(domain.FilterAll, domain.SortByRating)
	require.NoError(t, err)
	require.Greater(t, len(restaurants), h.pageSize)

	text, markup := h.renderHome(state, domain.FilterAll, domain.SortByRating, 2)
	assert.NotContains(t, text, restaurants[0].Name)
	assert.Contains(t, text, restaurants[h.pageSize].Name)
	assert.Contains(t, flattenLabels(markup), "⬅️")
}

func TestRenderCart_Empty(t *testing.T) {
	h, _ := newTestHandler(t)

	state := domain.NewAppState()
	state.Screen = domain.ScreenCart
	text, _ := h.render(testChatID, state)

	assert.Equal(t, i18n.T(domain.LanguageEnglish, i18n.KeyCartEmpty), text)
}

func TestRenderCart_WithLinesShowsTotals(t *testing.T) {
	h, _ := newTestHandler(t)

	item, err := h.catalog.Item("item-isombe")
	require.NoError(t, err)
	vendor, err := h.catalog.Restaurant(item.RestaurantID)
	require.NoError(t, err)

	state, err := h.cart.AddItem(testChatID, *item, *vendor, 2, "")
	require.NoError(t, err)
	state.Screen = domain.ScreenCart

	text, markup := h.render(testChatID, state)

	assert.Contains(t, text, item.Name)
	totals := h.cart.Totals(state.Cart)
	assert.Contains(t, text, h.price(totals.Subtotal))
	assert.Contains(t, text, h.price(totals.Total))
	require.NotNil(t, markup)
	// one row of quantity controls per line plus the action rows
	assert.GreaterOrEqual(t, len(markup.InlineKeyboard), len(state.Cart)+3)
}

func TestRenderProductDetail_FavoriteLabelFollowsSavedSet(t *testing.T) {
	h, _ := newTestHandler(t)

	item, err := h.catalog.Item("item-isombe")
	require.NoError(t, err)

	state := domain.NewAppState()
	state.Screen = domain.ScreenProductDetail
	state.Nav.Product = item

	text, markup := h.render(testChatID, state)
	assert.Contains(t, text, item.Name)
	assert.Contains(t, flattenLabels(markup), i18n.T(domain.LanguageEnglish, i18n.KeyBtnSave))

	state.SavedItemIDs = domain.ToggleSaved(state.SavedItemIDs, item.ID)
	_, markup = h.render(testChatID, state)
	assert.Contains(t, flattenLabels(markup), i18n.T(domain.LanguageEnglish, i18n.KeyBtnUnsave))
}

func TestRenderSearch_PromptAndResults(t *testing.T) {
	h, _ := newTestHandler(t)

	state := domain.NewAppState()
	state.Screen = domain.ScreenSearch
	text, _ := h.render(testChatID, state)
	assert.Equal(t, i18n.T(domain.LanguageEnglish, i18n.KeySearchPrompt), text)

	state.Nav.Query = "pizza"
	text, markup := h.render(testChatID, state)
	assert.Contains(t, text, "pizza")
	require.NotNil(t, markup)
	assert.Greater(t, len(markup.InlineKeyboard), 1)
}

func TestRenderSearch_NoResults(t *testing.T) {
	h, _ := newTestHandler(t)

	state := domain.NewAppState()
	state.Screen = domain.ScreenSearch
	state.Nav.Query = "zzzzzz"
	text, _ := h.render(testChatID, state)

	assert.Contains(t, text, "zzzzzz")
	assert.Contains(t, text, "Nothing found")
}

func TestRenderOrderTracking_ShowsTimeline(t *testing.T) {
	h, _ := newTestHandler(t)

	item, err := h.catalog.Item("item-isombe")
	require.NoError(t, err)
	vendor, err := h.catalog.Restaurant(item.RestaurantID)
	require.NoError(t, err)
	_, err = h.cart.AddItem(testChatID, *item, *vendor, 1, "")
	require.NoError(t, err)

	form := domain.CheckoutForm{
		FullName:        "Aline Uwase",
		PhoneNumber:     "+250781234567",
		DeliveryAddress: "KG 7 Ave, Kigali",
	}
	order, err := h.orders.PlaceOrder(testChatID, form, domain.PaymentMTNMoMo)
	require.NoError(t, err)

	state := domain.NewAppState()
	state.Screen = domain.ScreenOrderTracking
	state.Nav.Order = &order

	text, markup := h.render(testChatID, state)
	assert.Contains(t, text, shortID(order.ID))
	assert.Contains(t, text, "✅ "+i18n.T(domain.LanguageEnglish, i18n.KeyStatusPlaced))
	assert.Contains(t, text, "⏳ "+i18n.T(domain.LanguageEnglish, i18n.KeyStatusDelivered))
	assert.Contains(t, flattenLabels(markup), i18n.T(domain.LanguageEnglish, i18n.KeyBtnCancelOrder))
}

func TestRenderOrders_EmptyAndFilled(t *testing.T) {
	h, _ := newTestHandler(t)

	state := domain.NewAppState()
	state.Screen = domain.ScreenOrders
	text, _ := h.render(testChatID, state)
	assert.Equal(t, i18n.T(domain.LanguageEnglish, i18n.KeyOrdersEmpty), text)

	item, err := h.catalog.Item("item-isombe")
	require.NoError(t, err)
	vendor, err := h.catalog.Restaurant(item.RestaurantID)
	require.NoError(t, err)
	_, err = h.cart.AddItem(testChatID, *item, *vendor, 1, "")
	require.NoError(t, err)
	order, err := h.orders.PlaceOrder(testChatID, domain.CheckoutForm{
		FullName:        "Aline Uwase",
		PhoneNumber:     "+250781234567",
		DeliveryAddress: "KG 7 Ave, Kigali",
	}, domain.PaymentCashOnDelivery)
	require.NoError(t, err)

	_, markup := h.render(testChatID, state)
	assert.Contains(t, flattenLabels(markup), shortID(order.ID))
}

func TestRenderLoyalty_CountsPoints(t *testing.T) {
	h, _ := newTestHandler(t)

	state := domain.NewAppState()
	state.Screen = domain.ScreenLoyalty
	text, _ := h.render(testChatID, state)

	assert.Contains(t, text, i18n.T(domain.LanguageEnglish, i18n.KeyLoyaltyTitle))
}

func TestRenderReferral_RequiresUser(t *testing.T) {
	h, _ := newTestHandler(t)

	state := domain.NewAppState()
	state.Screen = domain.ScreenReferral
	text, _ := h.render(testChatID, state)
	assert.Equal(t, i18n.T(domain.LanguageEnglish, i18n.KeyLoginPrompt), text)

	state.User = domain.NewUser("Aline Uwase", "+250781234567")
	text, _ = h.render(testChatID, state)
	assert.Contains(t, text, state.User.ReferralCode())
}

func TestRenderChatDetail_ReadsThreadFromNav(t *testing.T) {
	h, _ := newTestHandler(t)

	thread, err := h.feed.Conversation("conv-courier")
	require.NoError(t, err)

	state := domain.NewAppState()
	state.Screen = domain.ScreenChatDetail
	state.Nav.Query = thread.ID

	text, _ := h.render(testChatID, state)
	assert.Contains(t, text, thread.PartnerName)
}

func TestRenderLanguageSettings_OffersBothLanguages(t *testing.T) {
	h, _ := newTestHandler(t)

	state := domain.NewAppState()
	state.Screen = domain.ScreenLanguageSettings

	_, markup := h.render(testChatID, state)
	labels := flattenLabels(markup)
	assert.Contains(t, labels, "🇬🇧 English")
	assert.Contains(t, labels, "🇷🇼 Kinyarwanda")
}

// flattenLabels collects every inline button label for containment checks.
func flattenLabels(m *tele.ReplyMarkup) []string {
	if m == nil {
		return nil
	}
	var out []string
	for _, row := range m.InlineKeyboard {
		for _, btn := range row {
			out = append(out, btn.Text)
		}
	}
	return out
}
