package order

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
)

// StandardShipment is the delivery type assigned when the backend record
// carries no explicit delivery type.
const StandardShipment = "Standard Shipment"

// View is the canonical, derived representation of a backend order:
// money in major units, line names resolved, taxes aggregated, addresses
// normalized. A View is immutable once built and is reconstructed on every
// fetch; after a successful mutation the caller re-fetches rather than
// patching the view, so Version always reflects the backend's authority.
type View struct {
	// ID is the backend's opaque order identifier.
	ID string

	// Version is the optimistic-concurrency token. It mirrors the raw
	// record's version and must be echoed on every mutating request.
	Version int

	// Status is the backend's status tag. Unknown tags are carried verbatim
	// and yield no legal next states.
	Status Status

	// IsApproved gates whether the status may be changed at all.
	IsApproved bool

	// Customer is the recipient's name, extracted from the shipping address.
	Customer Customer

	// Lines are the ordered line items.
	Lines []Line

	// SubTotal is the net total before shipping.
	SubTotal kernel.Money

	// ShippingCost is the shipping price, zero when no shipment exists yet.
	ShippingCost kernel.Money

	// Discount is sum(line totals) minus the subtotal; positive means money
	// off. With no lines it equals the negated subtotal.
	Discount kernel.Money

	// GrandTotal is the order total. It equals SubTotal plus ShippingCost
	// within rounding tolerance.
	GrandTotal kernel.Money

	// TaxBreakdown has one entry per backend tax portion. Every entry
	// carries the same taxable base; the backend reports one net base for
	// all portions.
	TaxBreakdown []TaxLine

	// Payments are the payments recorded against the order.
	Payments []Payment

	// ShippingAddress is the normalized delivery address, nil when the
	// order has none.
	ShippingAddress *Address

	// DeliveryType classifies how the order reaches the customer.
	DeliveryType string

	CreatedAt time.Time
	UpdatedAt time.Time

	// LegalNextStates is the set of statuses reachable from Status in one
	// transition. It depends on Status only, never on IsApproved.
	LegalNextStates []Status
}

// Line is one normalized order line.
type Line struct {
	Name      string
	SKU       string
	UnitPrice kernel.Money
	Quantity  int
	LineTotal kernel.Money
	ImageURL  string
}

// TaxLine is one entry of the tax breakdown.
type TaxLine struct {
	Description string
	RatePercent float64
	TaxableBase kernel.Money
	TaxAmount   kernel.Money
}

// Payment is one payment recorded against the order.
type Payment struct {
	Method        string
	Amount        kernel.Money
	TransactionID string
}

// Customer is the order recipient.
type Customer struct {
	FirstName string
	LastName  string
}

// Address is the normalized shipping address. Missing optional fields are
// empty strings, never absent, so consumers need no nil-guards on fields.
type Address struct {
	Company     string
	StreetLine1 string
	StreetLine2 string
	City        string
	Province    string
	PostalCode  string
	Country     string
	PhoneNumber string
}
