package postgres

import (
	"context"

	"vintagecomics/internal/domain/entity"
	domainerrors "vintagecomics/internal/domain/errors"
	"vintagecomics/internal/domain/repository"
	"vintagecomics/internal/errors"
	"vintagecomics/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new instance of a purchase repository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{db: db}
}

func fromPurchaseDomain(p *entity.Purchase) *model.PurchaseModel {
	return &model.PurchaseModel{
		ID:            p.ID,
		CustomerID:    p.CustomerID,
		Street:        p.Street,
		City:          p.City,
		Province:      p.Province,
		Country:       p.Country,
		PostalCode:    p.PostalCode,
		CreditCard:    p.CreditCard,
		CreditExpire:  p.CreditExpire,
		CreditCVV:     p.CreditCVV,
		InvoiceAmount: p.InvoiceAmount,
		InvoiceTax:    p.InvoiceTax,
		InvoiceTotal:  p.InvoiceTotal,
		OrderedAt:     p.OrderedAt,
	}
}

func fromPurchaseItemDomain(item *entity.PurchaseItem) *model.PurchaseItemModel {
	return &model.PurchaseItemModel{
		PurchaseID: item.PurchaseID,
		ProductID:  item.ProductID,
		Quantity:   item.Quantity,
	}
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	record := fromPurchaseDomain(purchase)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingFields
		}

		return errors.Wrap(err, "failed to create purchase")
	}

	purchase.ID = record.ID

	return nil
}

func (r *purchaseRepository) CreateItems(ctx context.Context, items []*entity.PurchaseItem) error {
	if len(items) == 0 {
		return nil
	}

	records := make([]*model.PurchaseItemModel, 0, len(items))
	for _, item := range items {
		records = append(records, fromPurchaseItemDomain(item))
	}

	if err := r.db.WithContext(ctx).Create(&records).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to create purchase items")
	}

	for i, record := range records {
		items[i].ID = record.ID
	}

	return nil
}
