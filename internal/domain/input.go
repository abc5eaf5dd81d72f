package domain

// InputState says what the next free-text message from the user means.
type InputState string

const (
	InputIdle            InputState = "idle"
	InputSearchQuery     InputState = "search_query"
	InputLoginName       InputState = "login_name"
	InputLoginPhone      InputState = "login_phone"
	InputCheckoutName    InputState = "checkout_name"
	InputCheckoutPhone   InputState = "checkout_phone"
	InputCheckoutAddress InputState = "checkout_address"
	InputProfileName     InputState = "profile_name"
)

// InputData holds the in-flight data of a multi-step text flow, like the
// checkout form being filled one field per message.
type InputData struct {
	State InputState
	Form  CheckoutForm
}
