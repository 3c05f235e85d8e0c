package repository

import (
	"context"
	"errors"

	"vintagecomics/internal/domain/entity"
)

// ErrProductNotFound is returned when a product id does not exist in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines read access to the catalog. The catalog is
// read-only from this system's perspective.
type ProductRepository interface {
	// FindAll retrieves every product, ordered by id.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single product by its numeric identifier.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindByIDs retrieves the products matching the given identifiers.
	// Missing identifiers are simply absent from the result; callers decide
	// whether that is an error.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error)
}
