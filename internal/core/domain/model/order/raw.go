package order

import "time"

// RawOrderRecord is the backend-owned order document exactly as fetched.
// It is treated as opaque input: money amounts are in minor currency units,
// line names are keyed by locale, and every section beyond id, version and
// status may legitimately be absent for some order states (an order with no
// shipment yet has no shippingInfo, an unpaid order has no paymentInfo).
//
// The gateway adapter decodes backend JSON into this type; BuildView is the
// only consumer.
type RawOrderRecord struct {
	ID              string           `json:"id"`
	Version         int              `json:"version"`
	OrderState      string           `json:"orderState"`
	CreatedAt       time.Time        `json:"createdAt"`
	LastModifiedAt  time.Time        `json:"lastModifiedAt"`
	TotalPrice      RawMoney         `json:"totalPrice"`
	TaxedPrice      *RawTaxedPrice   `json:"taxedPrice,omitempty"`
	ShippingInfo    *RawShippingInfo `json:"shippingInfo,omitempty"`
	LineItems       []RawLineItem    `json:"lineItems"`
	PaymentInfo     *RawPaymentInfo  `json:"paymentInfo,omitempty"`
	ShippingAddress *RawAddress      `json:"shippingAddress,omitempty"`
	Custom          *RawCustom       `json:"custom,omitempty"`
}

// RawMoney is a backend money amount in minor units.
// The zero value means "absent", which projects to zero, not an error.
type RawMoney struct {
	CentAmount   int64  `json:"centAmount"`
	CurrencyCode string `json:"currencyCode"`
}

// RawTaxedPrice carries the net total and its tax portions. The backend
// reports a single net base for all portions.
type RawTaxedPrice struct {
	TotalNet    RawMoney        `json:"totalNet"`
	TaxPortions []RawTaxPortion `json:"taxPortions"`
}

// RawTaxPortion is one tax component with a fractional rate (0.19 = 19%).
type RawTaxPortion struct {
	Name   string   `json:"name"`
	Rate   float64  `json:"rate"`
	Amount RawMoney `json:"amount"`
}

// RawShippingInfo carries the shipping price for orders with a shipment.
type RawShippingInfo struct {
	ShippingMethodName string   `json:"shippingMethodName"`
	Price              RawMoney `json:"price"`
}

// RawLineItem is one ordered line. Name is keyed by locale; which locales
// are present is backend-defined.
type RawLineItem struct {
	ID         string            `json:"id"`
	Name       map[string]string `json:"name"`
	Quantity   int               `json:"quantity"`
	TotalPrice RawMoney          `json:"totalPrice"`
	Variant    RawVariant        `json:"variant"`
}

// RawVariant identifies the purchased product variant.
type RawVariant struct {
	SKU    string     `json:"sku"`
	Images []RawImage `json:"images,omitempty"`
}

// RawImage is a product image reference.
type RawImage struct {
	URL string `json:"url"`
}

// RawPaymentInfo carries the payment references attached to the order.
type RawPaymentInfo struct {
	Payments []RawPaymentRef `json:"payments"`
}

// RawPaymentRef is an opaque reference to a backend payment object.
type RawPaymentRef struct {
	ID string `json:"id"`
}

// RawAddress is the backend's shipping address document. Street name and
// number arrive as separate fields.
type RawAddress struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	StreetName   string `json:"streetName"`
	StreetNumber string `json:"streetNumber"`
	City         string `json:"city"`
	Region       string `json:"region"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Mobile       string `json:"mobile"`
}

// RawCustom carries the backend's custom type fields for the order.
type RawCustom struct {
	Fields RawCustomFields `json:"fields"`
}

// RawCustomFields holds the dashboard-relevant custom fields: the approval
// flag gating status edits and the optional delivery type tag.
type RawCustomFields struct {
	IsApproved   bool   `json:"isApproved"`
	DeliveryType string `json:"deliveryType"`
}
