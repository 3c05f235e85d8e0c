package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vintagecomics/internal/domain/entity"
	domainerrors "vintagecomics/internal/domain/errors"
	"vintagecomics/internal/domain/repository"
	mockRepo "vintagecomics/internal/mocks/repository"
	"vintagecomics/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Logger:      logger,
	})

	return catalogServiceFixtures{
		service:     svc,
		productRepo: productRepo,
	}
}

func TestCatalogService_ListProducts_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	products := []*entity.Product{
		{ID: 1, Name: "Action Comics #252", Cost: decimal.RequireFromString("129.99")},
		{ID: 2, Name: "Detective Comics #359", Cost: decimal.RequireFromString("89.50")},
	}

	fx.productRepo.EXPECT().FindAll(ctx).Return(products, nil)

	got, err := fx.service.ListProducts(ctx)

	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestCatalogService_ListProducts_RepoError(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().FindAll(ctx).Return(nil, errors.New("connection refused"))

	got, err := fx.service.ListProducts(ctx)

	assert.Nil(t, got)
	assert.Error(t, err)
}

func TestCatalogService_GetProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := &entity.Product{ID: 7, Name: "The Incredible Hulk #181", Cost: decimal.RequireFromString("450.00")}

	fx.productRepo.EXPECT().FindByID(ctx, int64(7)).Return(product, nil)

	got, err := fx.service.GetProduct(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestCatalogService_GetProduct_InvalidID(t *testing.T) {
	fx := createTestCatalogService(t)

	for _, id := range []int64{0, -1} {
		got, err := fx.service.GetProduct(context.Background(), id)

		assert.Nil(t, got)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidProductID))
	}
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrProductNotFound)

	got, err := fx.service.GetProduct(ctx, 42)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
