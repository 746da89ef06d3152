package order

import (
	"sort"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
)

// PrimaryLocale is the locale preferred when resolving line item names.
const PrimaryLocale = "en-US"

// defaultPaymentMethod is projected for payment refs; the backend payment
// object does not expose the method.
const defaultPaymentMethod = "Credit Card"

// BuildView projects a raw backend order record into its canonical View.
//
// BuildView is total, side-effect-free and deterministic: every optional
// section of the raw record (taxed price, shipping info, payments, address,
// custom fields) degrades to an empty or zero value rather than failing,
// since these are legitimately absent for some order states.
//
// Money conversion, name resolution, tax aggregation, discount computation
// and address normalization follow the rules documented on the respective
// helpers below.
func BuildView(raw RawOrderRecord) View {
	lines := buildLines(raw.LineItems)
	subTotal := buildSubTotal(raw.TaxedPrice)
	grandTotal := kernel.MoneyFromMinorUnits(raw.TotalPrice.CentAmount)

	view := View{
		ID:              raw.ID,
		Version:         raw.Version,
		Status:          Status(raw.OrderState),
		IsApproved:      isApproved(raw.Custom),
		Customer:        buildCustomer(raw.ShippingAddress),
		Lines:           lines,
		SubTotal:        subTotal,
		ShippingCost:    buildShippingCost(raw.ShippingInfo),
		Discount:        buildDiscount(lines, subTotal),
		GrandTotal:      grandTotal,
		TaxBreakdown:    buildTaxBreakdown(raw.TaxedPrice),
		Payments:        buildPayments(raw.PaymentInfo, grandTotal),
		ShippingAddress: buildAddress(raw.ShippingAddress),
		DeliveryType:    deliveryType(raw.Custom),
		CreatedAt:       raw.CreatedAt,
		UpdatedAt:       raw.LastModifiedAt,
		LegalNextStates: Status(raw.OrderState).NextStates(),
	}

	return view
}

// buildLines normalizes the backend line items. The line total is the
// backend's per-line total price in major units; the unit price is derived
// from it and the quantity.
func buildLines(items []RawLineItem) []Line {
	lines := make([]Line, 0, len(items))
	for _, item := range items {
		lineTotal := kernel.MoneyFromMinorUnits(item.TotalPrice.CentAmount)

		quantity := item.Quantity
		unitPrice := lineTotal
		if quantity > 1 {
			unitPrice = kernel.Money(lineTotal.Float64() / float64(quantity)).Round()
		}

		lines = append(lines, Line{
			Name:      resolveName(item.Name),
			SKU:       item.Variant.SKU,
			UnitPrice: unitPrice,
			Quantity:  quantity,
			LineTotal: lineTotal,
			ImageURL:  imageURL(item.Variant),
		})
	}
	return lines
}

// resolveName picks the display name from a locale-keyed map: the primary
// locale when present, otherwise the value of the lexicographically
// smallest locale key. Sorting pins a canonical fallback order; backends
// supply the map unordered.
func resolveName(names map[string]string) string {
	if name, ok := names[PrimaryLocale]; ok && name != "" {
		return name
	}

	locales := make([]string, 0, len(names))
	for locale := range names {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	for _, locale := range locales {
		if names[locale] != "" {
			return names[locale]
		}
	}
	return ""
}

func imageURL(variant RawVariant) string {
	if len(variant.Images) == 0 {
		return ""
	}
	return variant.Images[0].URL
}

func buildSubTotal(taxed *RawTaxedPrice) kernel.Money {
	if taxed == nil {
		return 0
	}
	return kernel.MoneyFromMinorUnits(taxed.TotalNet.CentAmount)
}

func buildShippingCost(info *RawShippingInfo) kernel.Money {
	if info == nil {
		return 0
	}
	return kernel.MoneyFromMinorUnits(info.Price.CentAmount)
}

// buildDiscount computes sum(line totals) minus the subtotal. With no lines
// the result is the negated subtotal.
func buildDiscount(lines []Line, subTotal kernel.Money) kernel.Money {
	var lineSum kernel.Money
	for _, line := range lines {
		lineSum = lineSum.Add(line.LineTotal)
	}
	return lineSum.Sub(subTotal)
}

// buildTaxBreakdown emits one entry per tax portion. The taxable base is
// the same net total for every entry; the backend reports one net base for
// multiple portions, and that shape is preserved.
func buildTaxBreakdown(taxed *RawTaxedPrice) []TaxLine {
	if taxed == nil {
		return []TaxLine{}
	}

	base := kernel.MoneyFromMinorUnits(taxed.TotalNet.CentAmount)
	breakdown := make([]TaxLine, 0, len(taxed.TaxPortions))
	for _, portion := range taxed.TaxPortions {
		breakdown = append(breakdown, TaxLine{
			Description: portion.Name,
			RatePercent: portion.Rate * 100,
			TaxableBase: base,
			TaxAmount:   kernel.MoneyFromMinorUnits(portion.Amount.CentAmount),
		})
	}
	return breakdown
}

// buildPayments projects the backend payment refs. The ref carries no
// method or amount of its own; the method defaults and the amount is the
// order's grand total.
func buildPayments(info *RawPaymentInfo, grandTotal kernel.Money) []Payment {
	if info == nil {
		return []Payment{}
	}

	payments := make([]Payment, 0, len(info.Payments))
	for _, ref := range info.Payments {
		payments = append(payments, Payment{
			Method:        defaultPaymentMethod,
			Amount:        grandTotal,
			TransactionID: ref.ID,
		})
	}
	return payments
}

// buildAddress normalizes the shipping address: street name and number are
// concatenated into the first street line, and missing optional fields
// become empty strings. Returns nil only when the order carries no address
// at all.
func buildAddress(raw *RawAddress) *Address {
	if raw == nil {
		return nil
	}

	return &Address{
		Company:     "",
		StreetLine1: strings.TrimSpace(raw.StreetName + " " + raw.StreetNumber),
		StreetLine2: "",
		City:        raw.City,
		Province:    raw.Region,
		PostalCode:  raw.PostalCode,
		Country:     raw.Country,
		PhoneNumber: raw.Mobile,
	}
}

func buildCustomer(raw *RawAddress) Customer {
	if raw == nil {
		return Customer{}
	}
	return Customer{FirstName: raw.FirstName, LastName: raw.LastName}
}

func isApproved(custom *RawCustom) bool {
	return custom != nil && custom.Fields.IsApproved
}

func deliveryType(custom *RawCustom) string {
	if custom == nil || custom.Fields.DeliveryType == "" {
		return StandardShipment
	}
	return custom.Fields.DeliveryType
}
