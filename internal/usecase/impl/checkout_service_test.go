package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vintagecomics/internal/domain/entity"
	domainerrors "vintagecomics/internal/domain/errors"
	"vintagecomics/internal/domain/repository"
	"vintagecomics/internal/domain/service"
	mockRepo "vintagecomics/internal/mocks/repository"
	mockSvc "vintagecomics/internal/mocks/service"
	"vintagecomics/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutServiceFixtures struct {
	service   usecase.CheckoutUsecase
	txManager *mockRepo.MockTransactionManager
	publisher *mockSvc.MockEventPublisher
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCheckoutService(CheckoutServiceParams{
		TxManager: txManager,
		Publisher: publisher,
		Logger:    logger,
	})

	return checkoutServiceFixtures{
		service:   svc,
		txManager: txManager,
		publisher: publisher,
	}
}

func validCheckoutInput() *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		Street:       "1007 Mountain Drive",
		City:         "Gotham",
		Province:     "NJ",
		Country:      "USA",
		PostalCode:   "07001",
		CreditCard:   "4111111111111111",
		CreditExpire: "12/29",
		CreditCVV:    "123",
		Cart:         "3,5,3,3",
	}
}

func TestCheckoutService_Purchase_MissingFields(t *testing.T) {
	fx := createTestCheckoutService(t)

	input := validCheckoutInput()
	input.City = ""
	input.CreditCVV = "  "

	output, err := fx.service.Purchase(context.Background(), uuid.New(), input)

	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrMissingFields.ErrorCode(), appErr.ErrorCode())

	var lister domainerrors.DetailLister
	require.True(t, errors.As(err, &lister))
	assert.Equal(t, []string{"city", "credit_cvv"}, lister.DetailItems())
}

func TestCheckoutService_Purchase_MalformedCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	input := validCheckoutInput()
	input.Cart = "3,abc,5"

	output, err := fx.service.Purchase(context.Background(), uuid.New(), input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrMalformedCart))
}

func TestCheckoutService_Purchase_UnknownProduct(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	input := validCheckoutInput()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			// Product 5 is not in the catalog.
			mockProductRepo.EXPECT().
				FindByIDs(ctx, []int64{3, 5}).
				Return([]*entity.Product{{ID: 3, Cost: decimal.RequireFromString("10.00")}}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrProductNotFound)

	output, err := fx.service.Purchase(ctx, uuid.New(), input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCheckoutService_Purchase_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	customerID := uuid.New()
	purchaseID := uuid.New()
	input := validCheckoutInput()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().PurchaseRepo().Return(mockPurchaseRepo)

			mockProductRepo.EXPECT().
				FindByIDs(ctx, []int64{3, 5}).
				Return([]*entity.Product{
					{ID: 3, Cost: decimal.RequireFromString("10.00")},
					{ID: 5, Cost: decimal.RequireFromString("5.50")},
				}, nil)

			mockPurchaseRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Purchase")).
				Run(func(ctx context.Context, purchase *entity.Purchase) {
					purchase.ID = purchaseID
				}).
				Return(nil)

			mockPurchaseRepo.EXPECT().
				CreateItems(ctx, mock.AnythingOfType("[]*entity.PurchaseItem")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(ctx context.Context, event *service.OrderEvent) {
			assert.Equal(t, purchaseID.String(), event.PurchaseID)
			assert.Equal(t, customerID.String(), event.CustomerID)
			assert.Equal(t, 2, event.ItemCount)
			assert.Equal(t, "35.50", event.Total)
		}).
		Return(nil)

	output, err := fx.service.Purchase(ctx, customerID, input)

	require.NoError(t, err)
	require.NotNil(t, output)

	purchase := output.Purchase
	assert.Equal(t, purchaseID, purchase.ID)
	assert.Equal(t, customerID, purchase.CustomerID)

	// 3 copies of product 3 at 10.00 plus one product 5 at 5.50.
	assert.True(t, purchase.InvoiceAmount.Equal(decimal.RequireFromString("35.50")))
	assert.True(t, purchase.InvoiceTax.Equal(decimal.Zero))
	assert.True(t, purchase.InvoiceTotal.Equal(decimal.RequireFromString("35.50")))

	require.Len(t, purchase.Items, 2)
	assert.Equal(t, int64(3), purchase.Items[0].ProductID)
	assert.Equal(t, 3, purchase.Items[0].Quantity)
	assert.Equal(t, int64(5), purchase.Items[1].ProductID)
	assert.Equal(t, 1, purchase.Items[1].Quantity)
	assert.Equal(t, purchaseID, purchase.Items[0].PurchaseID)
}

func TestCheckoutService_Purchase_ClientInvoiceOverride(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	input := validCheckoutInput()
	amount := decimal.RequireFromString("100.00")
	tax := decimal.RequireFromString("13.00")
	input.InvoiceAmount = &amount
	input.InvoiceTax = &tax

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().PurchaseRepo().Return(mockPurchaseRepo)

			mockProductRepo.EXPECT().
				FindByIDs(ctx, []int64{3, 5}).
				Return([]*entity.Product{
					{ID: 3, Cost: decimal.RequireFromString("10.00")},
					{ID: 5, Cost: decimal.RequireFromString("5.50")},
				}, nil)

			mockPurchaseRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Purchase")).
				Return(nil)

			mockPurchaseRepo.EXPECT().
				CreateItems(ctx, mock.AnythingOfType("[]*entity.PurchaseItem")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	output, err := fx.service.Purchase(ctx, uuid.New(), input)

	require.NoError(t, err)
	assert.True(t, output.Purchase.InvoiceAmount.Equal(amount))
	assert.True(t, output.Purchase.InvoiceTax.Equal(tax))
	assert.True(t, output.Purchase.InvoiceTotal.Equal(decimal.RequireFromString("113.00")))
}

func TestCheckoutService_Purchase_PublishFailureTolerated(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	input := validCheckoutInput()
	input.Cart = "3"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().PurchaseRepo().Return(mockPurchaseRepo)

			mockProductRepo.EXPECT().
				FindByIDs(ctx, []int64{3}).
				Return([]*entity.Product{{ID: 3, Cost: decimal.RequireFromString("10.00")}}, nil)

			mockPurchaseRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Purchase")).
				Return(nil)

			mockPurchaseRepo.EXPECT().
				CreateItems(ctx, mock.AnythingOfType("[]*entity.PurchaseItem")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(errors.New("broker unavailable"))

	output, err := fx.service.Purchase(ctx, uuid.New(), input)

	require.NoError(t, err)
	require.NotNil(t, output)
}

func TestCheckoutService_Purchase_TransactionFailure(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	input := validCheckoutInput()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("deadlock detected"))

	output, err := fx.service.Purchase(ctx, uuid.New(), input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPurchaseFailed))
}
