package http

import (
	"time"

	"orderdesk/internal/core/domain/model/order"
)

// Error is the JSON error envelope returned on every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ApproveOrderRequest carries the version token the operator last saw. The
// backend compares it against the record's current version and answers with
// a conflict when it is stale.
type ApproveOrderRequest struct {
	Version int `json:"version"`
}

// ChangeOrderStateRequest carries the target status and the operator's
// version token.
type ChangeOrderStateRequest struct {
	Version int    `json:"version"`
	Target  string `json:"target"`
}

// OrderResponse is the wire form of an order view.
type OrderResponse struct {
	ID              string            `json:"id"`
	Version         int               `json:"version"`
	Status          string            `json:"status"`
	IsApproved      bool              `json:"isApproved"`
	Customer        CustomerResponse  `json:"customer"`
	Lines           []LineResponse    `json:"lines"`
	SubTotal        float64           `json:"subTotal"`
	ShippingCost    float64           `json:"shippingCost"`
	Discount        float64           `json:"discount"`
	GrandTotal      float64           `json:"grandTotal"`
	TaxBreakdown    []TaxLineResponse `json:"taxBreakdown"`
	Payments        []PaymentResponse `json:"payments"`
	ShippingAddress *AddressResponse  `json:"shippingAddress,omitempty"`
	DeliveryType    string            `json:"deliveryType"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
	LegalNextStates []string          `json:"legalNextStates"`
}

// LineResponse is one order line on the wire.
type LineResponse struct {
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
	ImageURL  string  `json:"imageUrl,omitempty"`
}

// TaxLineResponse is one tax breakdown entry on the wire.
type TaxLineResponse struct {
	Description string  `json:"description"`
	RatePercent float64 `json:"ratePercent"`
	TaxableBase float64 `json:"taxableBase"`
	TaxAmount   float64 `json:"taxAmount"`
}

// PaymentResponse is one recorded payment on the wire.
type PaymentResponse struct {
	Method        string  `json:"method"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transactionId"`
}

// CustomerResponse is the order recipient on the wire.
type CustomerResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// AddressResponse is the normalized shipping address on the wire.
type AddressResponse struct {
	Company     string `json:"company,omitempty"`
	StreetLine1 string `json:"streetLine1"`
	StreetLine2 string `json:"streetLine2,omitempty"`
	City        string `json:"city"`
	Province    string `json:"province,omitempty"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// fromView converts a domain view into its wire representation.
func fromView(view order.View) OrderResponse {
	lines := make([]LineResponse, len(view.Lines))
	for i, line := range view.Lines {
		lines[i] = LineResponse{
			Name:      line.Name,
			SKU:       line.SKU,
			UnitPrice: line.UnitPrice.Float64(),
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal.Float64(),
			ImageURL:  line.ImageURL,
		}
	}

	taxes := make([]TaxLineResponse, len(view.TaxBreakdown))
	for i, tax := range view.TaxBreakdown {
		taxes[i] = TaxLineResponse{
			Description: tax.Description,
			RatePercent: tax.RatePercent,
			TaxableBase: tax.TaxableBase.Float64(),
			TaxAmount:   tax.TaxAmount.Float64(),
		}
	}

	payments := make([]PaymentResponse, len(view.Payments))
	for i, payment := range view.Payments {
		payments[i] = PaymentResponse{
			Method:        payment.Method,
			Amount:        payment.Amount.Float64(),
			TransactionID: payment.TransactionID,
		}
	}

	nextStates := make([]string, len(view.LegalNextStates))
	for i, status := range view.LegalNextStates {
		nextStates[i] = status.String()
	}

	var address *AddressResponse
	if view.ShippingAddress != nil {
		address = &AddressResponse{
			Company:     view.ShippingAddress.Company,
			StreetLine1: view.ShippingAddress.StreetLine1,
			StreetLine2: view.ShippingAddress.StreetLine2,
			City:        view.ShippingAddress.City,
			Province:    view.ShippingAddress.Province,
			PostalCode:  view.ShippingAddress.PostalCode,
			Country:     view.ShippingAddress.Country,
			PhoneNumber: view.ShippingAddress.PhoneNumber,
		}
	}

	return OrderResponse{
		ID:              view.ID,
		Version:         view.Version,
		Status:          view.Status.String(),
		IsApproved:      view.IsApproved,
		Customer:        CustomerResponse{FirstName: view.Customer.FirstName, LastName: view.Customer.LastName},
		Lines:           lines,
		SubTotal:        view.SubTotal.Float64(),
		ShippingCost:    view.ShippingCost.Float64(),
		Discount:        view.Discount.Float64(),
		GrandTotal:      view.GrandTotal.Float64(),
		TaxBreakdown:    taxes,
		Payments:        payments,
		ShippingAddress: address,
		DeliveryType:    view.DeliveryType,
		CreatedAt:       view.CreatedAt,
		UpdatedAt:       view.UpdatedAt,
		LegalNextStates: nextStates,
	}
}
