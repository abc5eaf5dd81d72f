package domain

// Language selects which copy table user-facing text is rendered from.
type Language string

const (
	LanguageEnglish     Language = "en"
	LanguageKinyarwanda Language = "rw"
)

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageKinyarwanda
}

// NavState holds the transient payload of the most recent navigation calls.
// Fields are only overwritten, never cleared, so a destination screen must
// not rely on a field it did not ask for (stale data from an earlier
// navigation may still be present).
type NavState struct {
	Vendor   *Restaurant
	Product  *MenuItem
	Order    *Order
	Query    string
	Category *CategorySelection
}

// CategorySelection is what nav.Category holds. Vendor is nil when the user
// browses a category from home, and set when browsing a menu category within
// a specific vendor.
type CategorySelection struct {
	Category *Category
	Vendor   *Restaurant
}

// AppState is the whole client state for one session. It is passed and
// returned by value; transition functions copy any slice or map they change.
type AppState struct {
	Screen          ScreenID
	Language        Language
	User            *User
	Cart            []CartLine
	Orders          []Order
	SavedItemIDs    map[string]struct{}
	Nav             NavState
	SidebarOpen     bool
	OnboardingDone  bool
	LocationGranted bool
	Location        string
}

// NewAppState returns the initial state of a fresh session.
func NewAppState() AppState {
	return AppState{
		Screen:       ScreenSplash,
		Language:     LanguageEnglish,
		SavedItemIDs: map[string]struct{}{},
	}
}

// Logout drops the user and cascades a reset of cart, order history, saved
// items and the location grant. The language choice survives because it is
// a device preference, not an account one.
func Logout(s AppState) AppState {
	next := NewAppState()
	next.Language = s.Language
	next.OnboardingDone = s.OnboardingDone
	return next
}
