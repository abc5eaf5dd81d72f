package domain

import "github.com/google/uuid"

// DefaultDeliveryFee is the flat delivery fee in Rwandan francs. Flat by
// contract: the fee is not distance-based even where UI copy suggests so.
const DefaultDeliveryFee int64 = 2000

// CartLine is one row in the cart. Merge identity is (Name, VendorID),
// not ID: adding an item already present by name and vendor increments
// the existing line instead of inserting a duplicate.
type CartLine struct {
	ID                  string
	Name                string
	Price               int64
	Quantity            int
	Image               string
	VendorID            string
	VendorName          string
	Description         string
	Customizations      []string
	CustomIngredients   []string
	OriginalIngredients []string
	SpecialNotes        string
}

// Totals is the priced summary of a cart.
type Totals struct {
	Subtotal    int64
	DeliveryFee int64
	Total       int64
}

// AddToCart returns a new cart with line merged in. A line matching on
// (Name, VendorID) has its quantity incremented; otherwise the line is
// appended under a freshly generated id. The input slice is never mutated.
func AddToCart(cart []CartLine, line CartLine) []CartLine {
	for i := range cart {
		if cart[i].Name == line.Name && cart[i].VendorID == line.VendorID {
			next := make([]CartLine, len(cart))
			copy(next, cart)
			next[i].Quantity += line.Quantity
			return next
		}
	}

	line.ID = uuid.NewString()
	next := make([]CartLine, 0, len(cart)+1)
	next = append(next, cart...)
	return append(next, line)
}

// UpdateQuantity returns a new cart with the line's quantity replaced.
// A quantity of zero or less removes the line; negative quantities never
// persist. Unknown ids are a no-op.
func UpdateQuantity(cart []CartLine, lineID string, quantity int) []CartLine {
	if quantity <= 0 {
		return RemoveLine(cart, lineID)
	}

	next := make([]CartLine, len(cart))
	copy(next, cart)
	for i := range next {
		if next[i].ID == lineID {
			next[i].Quantity = quantity
		}
	}
	return next
}

// RemoveLine returns a new cart without the identified line.
func RemoveLine(cart []CartLine, lineID string) []CartLine {
	next := make([]CartLine, 0, len(cart))
	for _, l := range cart {
		if l.ID != lineID {
			next = append(next, l)
		}
	}
	return next
}

// ComputeTotals sums the cart at the given flat delivery fee.
func ComputeTotals(cart []CartLine, deliveryFee int64) Totals {
	var subtotal int64
	for _, l := range cart {
		subtotal += l.Price * int64(l.Quantity)
	}
	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Total:       subtotal + deliveryFee,
	}
}

// snapshotLines deep-copies cart lines so an order's items stay untouched
// by later cart mutations.
func snapshotLines(cart []CartLine) []CartLine {
	items := make([]CartLine, len(cart))
	copy(items, cart)
	for i := range items {
		items[i].Customizations = copyStrings(items[i].Customizations)
		items[i].CustomIngredients = copyStrings(items[i].CustomIngredients)
		items[i].OriginalIngredients = copyStrings(items[i].OriginalIngredients)
	}
	return items
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
