package order_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRawOrder() order.RawOrderRecord {
	return order.RawOrderRecord{
		ID:             "ord-1001",
		Version:        7,
		OrderState:     "Shipped",
		CreatedAt:      time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		LastModifiedAt: time.Date(2026, 3, 15, 18, 5, 0, 0, time.UTC),
		TotalPrice:     order.RawMoney{CentAmount: 8000, CurrencyCode: "EUR"},
		TaxedPrice: &order.RawTaxedPrice{
			TotalNet: order.RawMoney{CentAmount: 7000, CurrencyCode: "EUR"},
			TaxPortions: []order.RawTaxPortion{
				{Name: "Standard VAT", Rate: 0.19, Amount: order.RawMoney{CentAmount: 1330}},
				{Name: "Reduced VAT", Rate: 0.07, Amount: order.RawMoney{CentAmount: 490}},
			},
		},
		ShippingInfo: &order.RawShippingInfo{
			ShippingMethodName: "DHL",
			Price:              order.RawMoney{CentAmount: 1000, CurrencyCode: "EUR"},
		},
		LineItems: []order.RawLineItem{
			{
				ID:         "li-1",
				Name:       map[string]string{"en-US": "Espresso Machine", "de-DE": "Espressomaschine"},
				Quantity:   2,
				TotalPrice: order.RawMoney{CentAmount: 5000},
				Variant: order.RawVariant{
					SKU:    "ESP-01",
					Images: []order.RawImage{{URL: "https://img.example/esp.png"}},
				},
			},
			{
				ID:         "li-2",
				Name:       map[string]string{"de-DE": "Kaffeebohnen"},
				Quantity:   1,
				TotalPrice: order.RawMoney{CentAmount: 3000},
				Variant:    order.RawVariant{SKU: "BEAN-02"},
			},
		},
		PaymentInfo: &order.RawPaymentInfo{
			Payments: []order.RawPaymentRef{{ID: "pay-77"}},
		},
		ShippingAddress: &order.RawAddress{
			FirstName:    "Maya",
			LastName:     "Kern",
			StreetName:   "Lindenstrasse",
			StreetNumber: "12a",
			City:         "Bonn",
			Region:       "NRW",
			PostalCode:   "53111",
			Country:      "DE",
			Mobile:       "+49 170 1234567",
		},
		Custom: &order.RawCustom{
			Fields: order.RawCustomFields{IsApproved: true, DeliveryType: "ship"},
		},
	}
}

func TestBuildView_MoneyConversion(t *testing.T) {
	// Given
	raw := fullRawOrder()
	raw.TotalPrice.CentAmount = 12345

	// When
	view := order.BuildView(raw)

	// Then
	assert.InDelta(t, 123.45, view.GrandTotal.Float64(), kernel.MoneyTolerance)
}

func TestBuildView_FullRecord(t *testing.T) {
	// When
	view := order.BuildView(fullRawOrder())

	// Then
	assert.Equal(t, "ord-1001", view.ID)
	assert.Equal(t, 7, view.Version)
	assert.Equal(t, order.Shipped, view.Status)
	assert.True(t, view.IsApproved)
	assert.Equal(t, order.Customer{FirstName: "Maya", LastName: "Kern"}, view.Customer)
	assert.Equal(t, "ship", view.DeliveryType)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), view.CreatedAt)
	assert.Equal(t, time.Date(2026, 3, 15, 18, 5, 0, 0, time.UTC), view.UpdatedAt)

	assert.InDelta(t, 70.00, view.SubTotal.Float64(), kernel.MoneyTolerance)
	assert.InDelta(t, 10.00, view.ShippingCost.Float64(), kernel.MoneyTolerance)
	assert.InDelta(t, 80.00, view.GrandTotal.Float64(), kernel.MoneyTolerance)

	// Invariant: grand total equals subtotal plus shipping within tolerance.
	assert.True(t, view.GrandTotal.IsEqual(view.SubTotal.Add(view.ShippingCost)))

	require.Len(t, view.Lines, 2)
	assert.Equal(t, "Espresso Machine", view.Lines[0].Name)
	assert.Equal(t, "ESP-01", view.Lines[0].SKU)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.InDelta(t, 50.00, view.Lines[0].LineTotal.Float64(), kernel.MoneyTolerance)
	assert.InDelta(t, 25.00, view.Lines[0].UnitPrice.Float64(), kernel.MoneyTolerance)
	assert.Equal(t, "https://img.example/esp.png", view.Lines[0].ImageURL)
	assert.Equal(t, "", view.Lines[1].ImageURL)

	require.Len(t, view.Payments, 1)
	assert.Equal(t, "Credit Card", view.Payments[0].Method)
	assert.Equal(t, "pay-77", view.Payments[0].TransactionID)
	assert.InDelta(t, 80.00, view.Payments[0].Amount.Float64(), kernel.MoneyTolerance)

	assert.Equal(t, []order.Status{order.Delivered, order.Returned}, view.LegalNextStates)
}

func TestBuildView_Discount(t *testing.T) {
	t.Run("lines_sum_above_subtotal", func(t *testing.T) {
		// Given lines of 50 and 30 against a subtotal of 70
		view := order.BuildView(fullRawOrder())

		// Then the discount is 10
		assert.InDelta(t, 10.00, view.Discount.Float64(), kernel.MoneyTolerance)
	})

	t.Run("empty_lines_yield_negated_subtotal", func(t *testing.T) {
		// Given
		raw := fullRawOrder()
		raw.LineItems = nil

		// When
		view := order.BuildView(raw)

		// Then
		assert.InDelta(t, -70.00, view.Discount.Float64(), kernel.MoneyTolerance)
	})
}

func TestBuildView_TaxBreakdown(t *testing.T) {
	// When
	view := order.BuildView(fullRawOrder())

	// Then
	require.Len(t, view.TaxBreakdown, 2)
	assert.Equal(t, "Standard VAT", view.TaxBreakdown[0].Description)
	assert.InDelta(t, 19.0, view.TaxBreakdown[0].RatePercent, 0.0001)
	assert.InDelta(t, 13.30, view.TaxBreakdown[0].TaxAmount.Float64(), kernel.MoneyTolerance)
	assert.InDelta(t, 7.0, view.TaxBreakdown[1].RatePercent, 0.0001)

	// Every portion carries the same net base; the backend reports one net
	// total for all portions.
	for _, tax := range view.TaxBreakdown {
		assert.InDelta(t, 70.00, tax.TaxableBase.Float64(), kernel.MoneyTolerance)
	}
}

func TestBuildView_LineNameFallback(t *testing.T) {
	t.Run("prefers_primary_locale", func(t *testing.T) {
		view := order.BuildView(fullRawOrder())
		assert.Equal(t, "Espresso Machine", view.Lines[0].Name)
	})

	t.Run("falls_back_to_sorted_first_locale", func(t *testing.T) {
		// Given a record with no primary locale; fallback must be the
		// lexicographically smallest key, not map iteration order.
		raw := fullRawOrder()
		raw.LineItems = raw.LineItems[:1]
		raw.LineItems[0].Name = map[string]string{
			"fr-FR": "Machine à expresso",
			"de-DE": "Espressomaschine",
			"it-IT": "Macchina per espresso",
		}

		// When
		view := order.BuildView(raw)

		// Then
		assert.Equal(t, "Espressomaschine", view.Lines[0].Name)
	})

	t.Run("empty_name_map_yields_empty_name", func(t *testing.T) {
		raw := fullRawOrder()
		raw.LineItems = raw.LineItems[:1]
		raw.LineItems[0].Name = nil

		view := order.BuildView(raw)
		assert.Equal(t, "", view.Lines[0].Name)
	})
}

func TestBuildView_MissingOptionalSections(t *testing.T) {
	// Given a record with no shipping info, tax portions, payments, address
	// or custom fields
	raw := order.RawOrderRecord{
		ID:         "ord-min",
		Version:    1,
		OrderState: "Open",
		TotalPrice: order.RawMoney{CentAmount: 0},
	}

	// When
	view := order.BuildView(raw)

	// Then every section degrades, none panics
	assert.InDelta(t, 0.0, view.ShippingCost.Float64(), kernel.MoneyTolerance)
	assert.InDelta(t, 0.0, view.SubTotal.Float64(), kernel.MoneyTolerance)
	assert.InDelta(t, 0.0, view.GrandTotal.Float64(), kernel.MoneyTolerance)
	assert.Empty(t, view.TaxBreakdown)
	assert.NotNil(t, view.TaxBreakdown)
	assert.Empty(t, view.Payments)
	assert.NotNil(t, view.Payments)
	assert.Nil(t, view.ShippingAddress)
	assert.Equal(t, order.Customer{}, view.Customer)
	assert.False(t, view.IsApproved)
	assert.Equal(t, order.StandardShipment, view.DeliveryType)
	assert.Equal(t, []order.Status{order.Confirmed, order.Complete, order.Cancelled}, view.LegalNextStates)
}

func TestBuildView_AddressNormalization(t *testing.T) {
	t.Run("street_name_and_number_concatenated", func(t *testing.T) {
		view := order.BuildView(fullRawOrder())

		require.NotNil(t, view.ShippingAddress)
		assert.Equal(t, "Lindenstrasse 12a", view.ShippingAddress.StreetLine1)
		assert.Equal(t, "", view.ShippingAddress.Company)
		assert.Equal(t, "", view.ShippingAddress.StreetLine2)
		assert.Equal(t, "Bonn", view.ShippingAddress.City)
		assert.Equal(t, "NRW", view.ShippingAddress.Province)
		assert.Equal(t, "53111", view.ShippingAddress.PostalCode)
		assert.Equal(t, "DE", view.ShippingAddress.Country)
		assert.Equal(t, "+49 170 1234567", view.ShippingAddress.PhoneNumber)
	})

	t.Run("missing_optional_fields_are_empty_strings", func(t *testing.T) {
		raw := fullRawOrder()
		raw.ShippingAddress = &order.RawAddress{StreetName: "Hauptweg"}

		view := order.BuildView(raw)

		require.NotNil(t, view.ShippingAddress)
		assert.Equal(t, "Hauptweg", view.ShippingAddress.StreetLine1)
		assert.Equal(t, "", view.ShippingAddress.City)
		assert.Equal(t, "", view.ShippingAddress.Province)
	})
}

func TestBuildView_DeliveryTypeDefault(t *testing.T) {
	t.Run("missing_custom_fields", func(t *testing.T) {
		raw := fullRawOrder()
		raw.Custom = nil

		view := order.BuildView(raw)
		assert.Equal(t, order.StandardShipment, view.DeliveryType)
		assert.False(t, view.IsApproved)
	})

	t.Run("empty_delivery_type_field", func(t *testing.T) {
		raw := fullRawOrder()
		raw.Custom.Fields.DeliveryType = ""

		view := order.BuildView(raw)
		assert.Equal(t, order.StandardShipment, view.DeliveryType)
	})
}

func TestBuildView_UnknownStatusFailsClosed(t *testing.T) {
	// Given
	raw := fullRawOrder()
	raw.OrderState = "SomethingNew"

	// When
	view := order.BuildView(raw)

	// Then
	assert.Equal(t, order.Status("SomethingNew"), view.Status)
	assert.Empty(t, view.LegalNextStates)
}

func TestBuildView_IsDeterministic(t *testing.T) {
	raw := fullRawOrder()
	first := order.BuildView(raw)
	for range 20 {
		assert.Equal(t, first, order.BuildView(raw))
	}
}
