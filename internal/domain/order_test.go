package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() CheckoutForm {
	return CheckoutForm{
		FullName:        "Aline Uwase",
		PhoneNumber:     "+250781234567",
		DeliveryAddress: "KG 7 Ave, Kigali",
		DeliveryMethod:  "delivery",
	}
}

func TestCheckoutForm_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CheckoutForm)
		wantField string
	}{
		{name: "valid form", mutate: func(f *CheckoutForm) {}},
		{
			name:      "empty name",
			mutate:    func(f *CheckoutForm) { f.FullName = "  " },
			wantField: "fullName",
		},
		{
			name:      "short phone",
			mutate:    func(f *CheckoutForm) { f.PhoneNumber = "123" },
			wantField: "phoneNumber",
		},
		{
			name:      "non-mobile prefix",
			mutate:    func(f *CheckoutForm) { f.PhoneNumber = "250612345678" },
			wantField: "phoneNumber",
		},
		{
			name:      "empty address",
			mutate:    func(f *CheckoutForm) { f.DeliveryAddress = "" },
			wantField: "deliveryAddress",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			errs := form.Validate()
			if tt.wantField == "" {
				assert.Nil(t, errs)
				return
			}
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestCheckoutForm_PhoneFormats(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{phone: "0781234567", valid: false},
		{phone: "781234567", valid: true},
		{phone: "250781234567", valid: true},
		{phone: "+250781234567", valid: true},
		{phone: "+250 781 234 567", valid: true},
		{phone: "123", valid: false},
		{phone: "78123456", valid: false},
		{phone: "7812345678", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			form := validForm()
			form.PhoneNumber = tt.phone

			errs := form.Validate()
			if tt.valid {
				assert.Nil(t, errs)
			} else {
				require.NotNil(t, errs)
				assert.Contains(t, errs, "phoneNumber")
			}
		})
	}
}

func TestNewOrder_InvalidFormBuildsNothing(t *testing.T) {
	cart := []CartLine{{ID: "a", Name: "Pizza", VendorID: "v1", Price: 10000, Quantity: 1}}
	form := validForm()
	form.PhoneNumber = "123"

	order, err := NewOrder(cart, form, PaymentMTNMoMo, DefaultDeliveryFee)
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "phoneNumber")
	assert.Empty(t, order.ID)
}

func TestNewOrder_EmptyCartRejected(t *testing.T) {
	order, err := NewOrder(nil, validForm(), PaymentCashOnDelivery, DefaultDeliveryFee)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, order.ID)
}

func TestNewOrder_Success(t *testing.T) {
	cart := []CartLine{
		{ID: "a", Name: "Pizza", VendorID: "v1", VendorName: "Kigali Pizza House", Price: 10000, Quantity: 2},
		{ID: "b", Name: "Fanta Citron", VendorID: "v1", VendorName: "Kigali Pizza House", Price: 1000, Quantity: 1},
	}

	order, err := NewOrder(cart, validForm(), PaymentMTNMoMo, DefaultDeliveryFee)
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, OrderStatusPlaced, order.Status)
	assert.Equal(t, int64(23000), order.Total)
	assert.Equal(t, "Kigali Pizza House", order.VendorName)
	assert.Equal(t, "Aline Uwase", order.CustomerName)
	assert.Equal(t, EstimatedDeliveryWindow, order.EstimatedDelivery)
	assert.Equal(t, cart, order.Items)
	assert.WithinDuration(t, time.Now(), order.CreatedAt, time.Second)
	assert.True(t, strings.HasPrefix(order.TransactionRef, "MOMO-"))
}

func TestNewOrder_SnapshotDoesNotAliasCart(t *testing.T) {
	cart := []CartLine{
		{ID: "a", Name: "Pizza", VendorID: "v1", Price: 10000, Quantity: 2, Customizations: []string{"extra cheese"}},
	}

	order, err := NewOrder(cart, validForm(), PaymentCard, DefaultDeliveryFee)
	require.NoError(t, err)

	// Mutate the cart after the fact; the order snapshot must not move.
	cart[0].Quantity = 99
	cart[0].Customizations[0] = "no cheese"

	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "extra cheese", order.Items[0].Customizations[0])
}

func TestOrderStatus_Transitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{from: OrderStatusPlaced, to: OrderStatusConfirmed, allowed: true},
		{from: OrderStatusConfirmed, to: OrderStatusPreparing, allowed: true},
		{from: OrderStatusPreparing, to: OrderStatusReady, allowed: true},
		{from: OrderStatusReady, to: OrderStatusDelivered, allowed: true},
		{from: OrderStatusPlaced, to: OrderStatusPreparing, allowed: false},
		{from: OrderStatusPlaced, to: OrderStatusCancelled, allowed: true},
		{from: OrderStatusReady, to: OrderStatusCancelled, allowed: true},
		{from: OrderStatusDelivered, to: OrderStatusCancelled, allowed: false},
		{from: OrderStatusCancelled, to: OrderStatusConfirmed, allowed: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_Next(t *testing.T) {
	next, ok := OrderStatusPlaced.Next()
	assert.True(t, ok)
	assert.Equal(t, OrderStatusConfirmed, next)

	_, ok = OrderStatusDelivered.Next()
	assert.False(t, ok)

	_, ok = OrderStatusCancelled.Next()
	assert.False(t, ok)
}

func TestNewTransactionRef_Format(t *testing.T) {
	ref := NewTransactionRef(PaymentAirtelMoney)
	parts := strings.SplitN(ref, "-", 3)
	require.Len(t, parts, 3)
	assert.Equal(t, "AIRTEL", parts[0])
	assert.NotEmpty(t, parts[1])
	assert.NotEmpty(t, parts[2])
}
