package domain

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle stage of an order.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// statusOrder is the forward progression; cancelled sits outside it and is
// reachable from any non-terminal status.
var statusOrder = []OrderStatus{
	OrderStatusPlaced,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusDelivered,
}

// Terminal reports whether no further transition is allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Next returns the following stage of the normal progression, or false when
// the status is terminal or unknown.
func (s OrderStatus) Next() (OrderStatus, bool) {
	for i, st := range statusOrder {
		if st == s && i+1 < len(statusOrder) {
			return statusOrder[i+1], true
		}
	}
	return s, false
}

// CanTransitionTo reports whether moving from s to next is a legal step.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	n, ok := s.Next()
	return ok && n == next
}

// PaymentMethod selects how an order is paid for. All methods are stubs;
// no real gateway is involved.
type PaymentMethod string

const (
	PaymentMTNMoMo        PaymentMethod = "MOMO"
	PaymentAirtelMoney    PaymentMethod = "AIRTEL"
	PaymentCard           PaymentMethod = "CARD"
	PaymentCashOnDelivery PaymentMethod = "CASH"
)

// Order is an immutable snapshot of a cart at checkout completion. Only
// Status changes afterwards; orders are accumulated, never deleted.
type Order struct {
	ID                string
	Items             []CartLine
	Total             int64
	Status            OrderStatus
	VendorName        string
	DeliveryAddress   string
	CreatedAt         time.Time
	EstimatedDelivery string
	DeliveryMethod    string
	CustomerName      string
	CustomerPhone     string
	PaymentMethod     PaymentMethod
	TransactionRef    string
}

// CheckoutForm is what the user fills in before placing an order.
type CheckoutForm struct {
	FullName        string
	PhoneNumber     string
	DeliveryAddress string
	DeliveryMethod  string
	SpecialNotes    string
}

// ValidationErrors maps a form field to its error message.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

// Rwanda mobile numbers: optional country code, then 7 and eight digits.
var phonePattern = regexp.MustCompile(`^(\+?250)?7\d{8}$`)

// ValidPhoneNumber reports whether phone is a plausible Rwandan mobile
// number. Spaces are ignored.
func ValidPhoneNumber(phone string) bool {
	return phonePattern.MatchString(strings.ReplaceAll(strings.TrimSpace(phone), " ", ""))
}

// Validate checks the form and returns nil when everything is filled in
// correctly.
func (f CheckoutForm) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if strings.TrimSpace(f.FullName) == "" {
		errs["fullName"] = "full name is required"
	}
	if !ValidPhoneNumber(f.PhoneNumber) {
		errs["phoneNumber"] = "enter a valid Rwandan phone number"
	}
	if strings.TrimSpace(f.DeliveryAddress) == "" {
		errs["deliveryAddress"] = "delivery address is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ErrEmptyCart rejects checkout of a cart with no lines. A zero-item order
// would still carry the delivery fee, so it is refused outright.
var ErrEmptyCart = errors.New("cannot place an order with an empty cart")

// EstimatedDeliveryWindow is the fixed quote shown on every order. Mock
// value, not derived from real logistics.
const EstimatedDeliveryWindow = "25-35 min"

// NewOrder validates the checkout form and constructs an order from a deep
// snapshot of the cart. It never touches session state: appending the order
// to history and clearing the cart is the caller's job.
//
// On validation failure the returned error is a ValidationErrors value and
// no order is built.
func NewOrder(cart []CartLine, form CheckoutForm, method PaymentMethod, deliveryFee int64) (Order, error) {
	if errs := form.Validate(); errs != nil {
		return Order{}, errs
	}
	if len(cart) == 0 {
		return Order{}, ErrEmptyCart
	}

	vendorName := cart[0].VendorName
	totals := ComputeTotals(cart, deliveryFee)

	return Order{
		ID:                uuid.NewString(),
		Items:             snapshotLines(cart),
		Total:             totals.Total,
		Status:            OrderStatusPlaced,
		VendorName:        vendorName,
		DeliveryAddress:   strings.TrimSpace(form.DeliveryAddress),
		CreatedAt:         time.Now(),
		EstimatedDelivery: EstimatedDeliveryWindow,
		DeliveryMethod:    form.DeliveryMethod,
		CustomerName:      strings.TrimSpace(form.FullName),
		CustomerPhone:     strings.TrimSpace(form.PhoneNumber),
		PaymentMethod:     method,
		TransactionRef:    NewTransactionRef(method),
	}, nil
}

// CoerceOrder fills safe defaults into a possibly malformed order reaching
// a display surface: never crash, always degrade. A nil order comes back as
// an empty record rather than a panic.
func CoerceOrder(o *Order) Order {
	if o == nil {
		o = &Order{}
	}
	out := *o
	if out.Items == nil {
		out.Items = []CartLine{}
	}
	if out.Status == "" {
		out.Status = OrderStatusPlaced
	}
	if out.VendorName == "" {
		out.VendorName = "Restaurant"
	}
	if out.EstimatedDelivery == "" {
		out.EstimatedDelivery = EstimatedDeliveryWindow
	}
	return out
}

// NewTransactionRef fabricates a display-only payment reference in the form
// METHOD-timestamp-base36. It is not an idempotency key and must never be
// treated as one by a real payment integration.
func NewTransactionRef(method PaymentMethod) string {
	suffix := strconv.FormatInt(rand.Int63n(36*36*36*36*36*36), 36)
	return fmt.Sprintf("%s-%d-%s", method, time.Now().UnixMilli(), strings.ToUpper(suffix))
}
