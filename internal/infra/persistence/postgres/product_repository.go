package postgres

import (
	"context"

	"vintagecomics/internal/domain/entity"
	"vintagecomics/internal/domain/repository"
	"vintagecomics/internal/errors"
	"vintagecomics/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new instance of a product repository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		Cost:          m.Cost,
		ImageFilename: m.ImageFilename,
	}
}

func (r *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var records []model.ProductModel
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(records))
	for i := range records {
		products = append(products, toProductDomain(&records[i]))
	}

	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var found model.ProductModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&found), nil
}

func (r *productRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var records []model.ProductModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	products := make([]*entity.Product, 0, len(records))
	for i := range records {
		products = append(products, toProductDomain(&records[i]))
	}

	return products, nil
}
