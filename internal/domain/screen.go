package domain

// ScreenID names one full-viewport state the client can be in.
type ScreenID string

const (
	ScreenSplash             ScreenID = "splash"
	ScreenOnboarding         ScreenID = "onboarding"
	ScreenLocationPermission ScreenID = "location-permission"
	ScreenLogin              ScreenID = "login"
	ScreenHome               ScreenID = "home"
	ScreenSearch             ScreenID = "search"
	ScreenCategory           ScreenID = "category"
	ScreenVendorProfile      ScreenID = "vendor-profile"
	ScreenMenuCategory       ScreenID = "menu-category"
	ScreenProductDetail      ScreenID = "product-detail"
	ScreenCart               ScreenID = "cart"
	ScreenCheckout           ScreenID = "checkout"
	ScreenOrderConfirmation  ScreenID = "order-confirmation"
	ScreenOrderTracking      ScreenID = "order-tracking"
	ScreenOrders             ScreenID = "orders"
	ScreenProfile            ScreenID = "profile"
	ScreenEditProfile        ScreenID = "edit-profile"
	ScreenSaved              ScreenID = "saved"
	ScreenNotifications      ScreenID = "notifications"
	ScreenChat               ScreenID = "chat"
	ScreenChatDetail         ScreenID = "chat-detail"
	ScreenCallHistory        ScreenID = "call-history"
	ScreenLoyalty            ScreenID = "loyalty"
	ScreenReferral           ScreenID = "referral"
	ScreenSettings           ScreenID = "settings"
	ScreenLanguageSettings   ScreenID = "language-settings"
	ScreenHelp               ScreenID = "help"
)

var validScreens = map[ScreenID]struct{}{
	ScreenSplash:             {},
	ScreenOnboarding:         {},
	ScreenLocationPermission: {},
	ScreenLogin:              {},
	ScreenHome:               {},
	ScreenSearch:             {},
	ScreenCategory:           {},
	ScreenVendorProfile:      {},
	ScreenMenuCategory:       {},
	ScreenProductDetail:      {},
	ScreenCart:               {},
	ScreenCheckout:           {},
	ScreenOrderConfirmation:  {},
	ScreenOrderTracking:      {},
	ScreenOrders:             {},
	ScreenProfile:            {},
	ScreenEditProfile:        {},
	ScreenSaved:              {},
	ScreenNotifications:      {},
	ScreenChat:               {},
	ScreenChatDetail:         {},
	ScreenCallHistory:        {},
	ScreenLoyalty:            {},
	ScreenReferral:           {},
	ScreenSettings:           {},
	ScreenLanguageSettings:   {},
	ScreenHelp:               {},
}

// Valid reports whether s is a known screen identifier.
func (s ScreenID) Valid() bool {
	_, ok := validScreens[s]
	return ok
}
