package domain

// NavPayload carries the optional data attached to a navigation call.
// Nil fields mean "not provided" and leave the corresponding NavState
// field untouched.
type NavPayload struct {
	Vendor   *Restaurant
	Product  *MenuItem
	Order    *Order
	Query    *string
	Category *Category
}

// Navigate maps a requested screen plus optional payload onto a new state.
//
// Present payload fields are merged into Nav; absent ones are left alone,
// so data set by an earlier navigation stays around until overwritten.
// When Category and Vendor arrive together they are packaged as one
// CategorySelection under Nav.Category (a menu category within that vendor)
// instead of being stored as two independent fields.
//
// An unknown target degrades to home rather than failing.
func Navigate(s AppState, target ScreenID, p *NavPayload) AppState {
	next := s

	if p != nil {
		switch {
		case p.Category != nil && p.Vendor != nil:
			next.Nav.Category = &CategorySelection{Category: p.Category, Vendor: p.Vendor}
		case p.Category != nil:
			next.Nav.Category = &CategorySelection{Category: p.Category}
		case p.Vendor != nil:
			next.Nav.Vendor = p.Vendor
		}
		if p.Product != nil {
			next.Nav.Product = p.Product
		}
		if p.Order != nil {
			next.Nav.Order = p.Order
		}
		if p.Query != nil {
			next.Nav.Query = *p.Query
		}
	}

	if target.Valid() {
		next.Screen = target
	} else {
		next.Screen = ScreenHome
	}
	return next
}
