package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase is the checkout header row: shipping address, payment details and
// invoice totals for one completed checkout. Card fields are stored as
// submitted; they must never be logged and are masked in API responses.
type Purchase struct {
	ID            uuid.UUID       // The unique ID for this purchase.
	CustomerID    uuid.UUID       // Links the purchase to the authenticated customer.
	Street        string          // Shipping street address.
	City          string          // Shipping city.
	Province      string          // Shipping province.
	Country       string          // Shipping country.
	PostalCode    string          // Shipping postal code.
	CreditCard    string          // Card number as submitted.
	CreditExpire  string          // Card expiry (MM/YY) as submitted.
	CreditCVV     string          // Card CVV as submitted.
	InvoiceAmount decimal.Decimal // Sum of item costs before tax.
	InvoiceTax    decimal.Decimal // Tax portion of the invoice.
	InvoiceTotal  decimal.Decimal // Amount plus tax.
	OrderedAt     time.Time       // Timestamp stamped when the checkout committed.
	Items         []*PurchaseItem // Line items created in the same transaction.
}

// PurchaseItem is one line of a purchase: a distinct product and how many
// times it appeared in the submitted cart.
type PurchaseItem struct {
	ID         int64     // Surrogate key for the line item row.
	PurchaseID uuid.UUID // Links the line to its Purchase header.
	ProductID  int64     // The catalog product this line refers to.
	Quantity   int       // Occurrence count of the product in the cart.
}

// MaskedCard returns the card number reduced to its last four digits,
// suitable for responses and logs.
func (p *Purchase) MaskedCard() string {
	const visible = 4
	if len(p.CreditCard) <= visible {
		return p.CreditCard
	}

	return "****" + p.CreditCard[len(p.CreditCard)-visible:]
}
