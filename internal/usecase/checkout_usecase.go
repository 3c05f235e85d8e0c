package usecase

import (
	"context"

	"vintagecomics/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutInput defines the data submitted at checkout. Cart is the raw
// comma-joined cart string as held by the client. The invoice fields are
// optional; when absent they are computed from catalog costs.
type CheckoutInput struct {
	Street       string
	City         string
	Province     string
	Country      string
	PostalCode   string
	CreditCard   string
	CreditExpire string
	CreditCVV    string
	Cart         string

	InvoiceAmount *decimal.Decimal
	InvoiceTax    *decimal.Decimal
	InvoiceTotal  *decimal.Decimal
}

// CheckoutOutput returns the committed purchase with its line items.
type CheckoutOutput struct {
	Purchase *entity.Purchase
}

// CheckoutUsecase defines the purchase workflow for an authenticated customer.
type CheckoutUsecase interface {
	// Purchase validates the checkout input, persists the purchase header and
	// its line items in one transaction, and returns the committed purchase.
	Purchase(ctx context.Context, customerID uuid.UUID, input *CheckoutInput) (*CheckoutOutput, error)
}
