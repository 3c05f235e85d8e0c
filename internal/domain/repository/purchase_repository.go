package repository

import (
	"context"

	"vintagecomics/internal/domain/entity"
)

// PurchaseRepository defines the operations for persisting a checkout.
// The header and its line items are written in two sequential calls; callers
// run both inside one TransactionManager.Execute so a failed item batch
// rolls back the header.
type PurchaseRepository interface {
	// Create persists the purchase header and fills in its generated id
	// and timestamps.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// CreateItems persists the line items referencing an already-created
	// purchase header.
	CreateItems(ctx context.Context, items []*entity.PurchaseItem) error
}
