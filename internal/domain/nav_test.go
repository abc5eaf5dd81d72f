package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigate_SetsScreen(t *testing.T) {
	s := NewAppState()

	got := Navigate(s, ScreenCart, nil)
	assert.Equal(t, ScreenCart, got.Screen)
	assert.Equal(t, ScreenSplash, s.Screen, "input state must be untouched")
}

func TestNavigate_UnknownScreenFallsBackToHome(t *testing.T) {
	s := NewAppState()

	got := Navigate(s, ScreenID("does-not-exist"), nil)
	assert.Equal(t, ScreenHome, got.Screen)
}

func TestNavigate_MergesPayloadFields(t *testing.T) {
	vendor := &Restaurant{ID: "v1", Name: "Mama Africa Kitchen"}
	product := &MenuItem{ID: "m1", Name: "Isombe"}
	order := &Order{ID: "o1"}
	query := "pizza"

	s := NewAppState()
	s = Navigate(s, ScreenVendorProfile, &NavPayload{Vendor: vendor})
	s = Navigate(s, ScreenProductDetail, &NavPayload{Product: product})
	s = Navigate(s, ScreenOrderTracking, &NavPayload{Order: order})
	s = Navigate(s, ScreenSearch, &NavPayload{Query: &query})

	// Nothing clears anything: all earlier payloads are still visible.
	assert.Equal(t, vendor, s.Nav.Vendor)
	assert.Equal(t, product, s.Nav.Product)
	assert.Equal(t, order, s.Nav.Order)
	assert.Equal(t, "pizza", s.Nav.Query)
	assert.Equal(t, ScreenSearch, s.Screen)
}

func TestNavigate_StalePayloadPersists(t *testing.T) {
	vendor := &Restaurant{ID: "v1"}
	product := &MenuItem{ID: "m1"}

	s := Navigate(NewAppState(), ScreenVendorProfile, &NavPayload{Vendor: vendor})
	s = Navigate(s, ScreenProductDetail, &NavPayload{Product: product})

	assert.Equal(t, vendor, s.Nav.Vendor)
	assert.Equal(t, product, s.Nav.Product)
}

func TestNavigate_CategoryRules(t *testing.T) {
	category := &Category{ID: "c1", NameEN: "Pizza"}
	vendor := &Restaurant{ID: "v1"}

	t.Run("category alone browses from home", func(t *testing.T) {
		s := Navigate(NewAppState(), ScreenCategory, &NavPayload{Category: category})
		require.NotNil(t, s.Nav.Category)
		assert.Equal(t, category, s.Nav.Category.Category)
		assert.Nil(t, s.Nav.Category.Vendor)
		assert.Nil(t, s.Nav.Vendor)
	})

	t.Run("category with vendor is packaged as one selection", func(t *testing.T) {
		s := Navigate(NewAppState(), ScreenMenuCategory, &NavPayload{Category: category, Vendor: vendor})
		require.NotNil(t, s.Nav.Category)
		assert.Equal(t, category, s.Nav.Category.Category)
		assert.Equal(t, vendor, s.Nav.Category.Vendor)
		assert.Nil(t, s.Nav.Vendor, "vendor travels inside the selection, not as its own field")
	})
}

func TestNavigate_NilPayloadLeavesNavAlone(t *testing.T) {
	vendor := &Restaurant{ID: "v1"}

	s := Navigate(NewAppState(), ScreenVendorProfile, &NavPayload{Vendor: vendor})
	s = Navigate(s, ScreenHome, nil)

	assert.Equal(t, vendor, s.Nav.Vendor)
	assert.Equal(t, ScreenHome, s.Screen)
}
