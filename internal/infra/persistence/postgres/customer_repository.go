// Package postgres provides the GORM-backed implementations of the domain
// repository interfaces.
package postgres

import (
	"context"

	"vintagecomics/internal/domain/entity"
	domainerrors "vintagecomics/internal/domain/errors"
	"vintagecomics/internal/domain/repository"
	"vintagecomics/internal/errors"
	"vintagecomics/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new instance of a customer repository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// toCustomerDomain converts a persistence model to a domain entity.
func toCustomerDomain(m *model.CustomerModel) *entity.Customer {
	return &entity.Customer{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		CreatedAt:    m.CreatedAt,
	}
}

// fromCustomerDomain converts a domain entity to a persistence model.
func fromCustomerDomain(c *entity.Customer) *model.CustomerModel {
	return &model.CustomerModel{
		ID:           c.ID,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		CreatedAt:    c.CreatedAt,
	}
}

func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var found model.CustomerModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return toCustomerDomain(&found), nil
}

func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var found model.CustomerModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by email")
	}

	return toCustomerDomain(&found), nil
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	record := fromCustomerDomain(customer)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// The unique index on customers.email is the final arbiter for
			// concurrent signups with the same address.
			return domainerrors.ErrEmailAlreadyInUse
		}

		return errors.Wrap(err, "failed to create customer")
	}

	// Surface the database-generated id and timestamp on the entity.
	customer.ID = record.ID
	customer.CreatedAt = record.CreatedAt

	return nil
}
