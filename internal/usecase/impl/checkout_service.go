package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "vintagecomics/internal/delivery/context"
	"vintagecomics/internal/domain/entity"
	domainerrors "vintagecomics/internal/domain/errors"
	"vintagecomics/internal/domain/repository"
	"vintagecomics/internal/domain/service"
	"vintagecomics/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Purchase validates the checkout input and persists the purchase header plus
// its line items in one transaction. The raw cart string is only trusted after
// ParseCart and a catalog existence check.
func (srv *checkoutService) Purchase(ctx context.Context, customerID uuid.UUID, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	if missing := missingCheckoutFields(input); len(missing) > 0 {
		return nil, domainerrors.ErrMissingFields.WithDetailItems(missing)
	}

	cart, err := entity.ParseCart(input.Cart)
	if err != nil {
		return nil, domainerrors.ErrMalformedCart
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart
	}

	quantities := cart.Quantities()
	productIDs := cart.ProductIDs()

	purchase := &entity.Purchase{
		CustomerID:   customerID,
		Street:       strings.TrimSpace(input.Street),
		City:         strings.TrimSpace(input.City),
		Province:     strings.TrimSpace(input.Province),
		Country:      strings.TrimSpace(input.Country),
		PostalCode:   strings.TrimSpace(input.PostalCode),
		CreditCard:   strings.TrimSpace(input.CreditCard),
		CreditExpire: strings.TrimSpace(input.CreditExpire),
		CreditCVV:    strings.TrimSpace(input.CreditCVV),
		OrderedAt:    time.Now().UTC(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		products, err := repoFactory.ProductRepo().FindByIDs(ctx, productIDs)
		if err != nil {
			return errors.Wrap(err, "failed to load cart products")
		}
		if len(products) != len(productIDs) {
			return domainerrors.ErrProductNotFound
		}

		applyInvoice(purchase, input, products, quantities)

		purchaseRepo := repoFactory.PurchaseRepo()
		if err := purchaseRepo.Create(ctx, purchase); err != nil {
			return errors.Wrap(err, "failed to create purchase")
		}

		items := make([]*entity.PurchaseItem, 0, len(productIDs))
		for _, productID := range productIDs {
			items = append(items, &entity.PurchaseItem{
				PurchaseID: purchase.ID,
				ProductID:  productID,
				Quantity:   quantities[productID],
			})
		}
		if err := purchaseRepo.CreateItems(ctx, items); err != nil {
			return errors.Wrap(err, "failed to create purchase items")
		}
		purchase.Items = items

		return nil
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to execute checkout transaction",
			slog.Any("customerID", customerID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPurchaseFailed
	}

	srv.log(ctx).Info("Purchase committed",
		slog.Any("purchaseID", purchase.ID),
		slog.Any("customerID", customerID),
		slog.Int("itemCount", len(purchase.Items)),
	)

	srv.publishOrderEvent(ctx, purchase)

	return &usecase.CheckoutOutput{Purchase: purchase}, nil
}

// publishOrderEvent emits the order-confirmation event after commit.
// Publishing is best effort: a failure is logged, never surfaced to the buyer.
func (srv *checkoutService) publishOrderEvent(ctx context.Context, purchase *entity.Purchase) {
	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		PurchaseID: purchase.ID.String(),
		CustomerID: purchase.CustomerID.String(),
		ItemCount:  len(purchase.Items),
		Total:      purchase.InvoiceTotal.StringFixed(2),
		OrderedAt:  purchase.OrderedAt.Format(time.RFC3339),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.Any("purchaseID", purchase.ID),
			slog.Any("error", err),
		)
	}
}

// missingCheckoutFields returns the names of required fields that are empty,
// in a stable order for the response's details list.
func missingCheckoutFields(input *usecase.CheckoutInput) []string {
	required := []struct {
		name  string
		value string
	}{
		{"street", input.Street},
		{"city", input.City},
		{"province", input.Province},
		{"country", input.Country},
		{"postal_code", input.PostalCode},
		{"credit_card", input.CreditCard},
		{"credit_expire", input.CreditExpire},
		{"credit_cvv", input.CreditCVV},
		{"cart", input.Cart},
	}

	var missing []string
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}

	return missing
}

// applyInvoice fills the invoice fields, preferring client-supplied values and
// falling back to catalog costs. Without a configured tax model the computed
// tax is zero and the total equals the amount.
func applyInvoice(purchase *entity.Purchase, input *usecase.CheckoutInput, products []*entity.Product, quantities map[int64]int) {
	amount := decimal.Zero
	for _, product := range products {
		qty := decimal.NewFromInt(int64(quantities[product.ID]))
		amount = amount.Add(product.Cost.Mul(qty))
	}

	purchase.InvoiceAmount = amount
	if input.InvoiceAmount != nil {
		purchase.InvoiceAmount = *input.InvoiceAmount
	}

	purchase.InvoiceTax = decimal.Zero
	if input.InvoiceTax != nil {
		purchase.InvoiceTax = *input.InvoiceTax
	}

	purchase.InvoiceTotal = purchase.InvoiceAmount.Add(purchase.InvoiceTax)
	if input.InvoiceTotal != nil {
		purchase.InvoiceTotal = *input.InvoiceTotal
	}
}
