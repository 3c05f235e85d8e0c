package usecase

import (
	"context"

	"vintagecomics/internal/domain/entity"
)

// CatalogUsecase defines read access to the product catalog.
type CatalogUsecase interface {
	// ListProducts returns every product in the catalog, ordered by id.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns a single product by its numeric identifier.
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
}
