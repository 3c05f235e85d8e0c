package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"vintagecomics/config"
	"vintagecomics/internal/delivery/api/middleware"
	"vintagecomics/internal/delivery/api/response"
	deliverycontext "vintagecomics/internal/delivery/context"
	"vintagecomics/internal/domain/entity"
	"vintagecomics/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	CatalogUC  usecase.CatalogUsecase
	CheckoutUC usecase.CheckoutUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// ProductHandler holds dependencies for catalog and checkout handlers
type ProductHandler struct {
	catalogUC      usecase.CatalogUsecase
	checkoutUC     usecase.CheckoutUsecase
	cartCookieName string
	logger         *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		catalogUC:      params.CatalogUC,
		checkoutUC:     params.CheckoutUC,
		cartCookieName: params.Config.Cart.CookieName,
		logger:         params.Logger,
	}
}

// PurchaseRequest represents the checkout body. Cart is the raw comma-joined
// product-id string held by the client. Invoice fields are optional.
type PurchaseRequest struct {
	Street       string `json:"street"`
	City         string `json:"city"`
	Province     string `json:"province"`
	Country      string `json:"country"`
	PostalCode   string `json:"postal_code"`
	CreditCard   string `json:"credit_card"`
	CreditExpire string `json:"credit_expire"`
	CreditCVV    string `json:"credit_cvv"`
	Cart         string `json:"cart"`

	InvoiceAmount *decimal.Decimal `json:"invoice_amount,omitempty"`
	InvoiceTax    *decimal.Decimal `json:"invoice_tax,omitempty"`
	InvoiceTotal  *decimal.Decimal `json:"invoice_total,omitempty"`
}

// ProductResponse is the catalog payload shape.
type ProductResponse struct {
	ProductID     int64           `json:"product_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Cost          decimal.Decimal `json:"cost"`
	ImageFilename string          `json:"image_filename"`
}

// PurchaseItemResponse is one committed line item.
type PurchaseItemResponse struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// PurchaseResponse is the committed checkout payload. The card number is
// masked to its last four digits.
type PurchaseResponse struct {
	PurchaseID    string                  `json:"purchase_id"`
	CustomerID    string                  `json:"customer_id"`
	Street        string                  `json:"street"`
	City          string                  `json:"city"`
	Province      string                  `json:"province"`
	Country       string                  `json:"country"`
	PostalCode    string                  `json:"postal_code"`
	CreditCard    string                  `json:"credit_card"`
	InvoiceAmount decimal.Decimal         `json:"invoice_amount"`
	InvoiceTax    decimal.Decimal         `json:"invoice_tax"`
	InvoiceTotal  decimal.Decimal         `json:"invoice_total"`
	OrderedAt     string                  `json:"ordered_at"`
	Items         []*PurchaseItemResponse `json:"items"`
}

func newProductResponse(product *entity.Product) *ProductResponse {
	return &ProductResponse{
		ProductID:     product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Cost:          product.Cost,
		ImageFilename: product.ImageFilename,
	}
}

func newPurchaseResponse(purchase *entity.Purchase) *PurchaseResponse {
	items := make([]*PurchaseItemResponse, 0, len(purchase.Items))
	for _, item := range purchase.Items {
		items = append(items, &PurchaseItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return &PurchaseResponse{
		PurchaseID:    purchase.ID.String(),
		CustomerID:    purchase.CustomerID.String(),
		Street:        purchase.Street,
		City:          purchase.City,
		Province:      purchase.Province,
		Country:       purchase.Country,
		PostalCode:    purchase.PostalCode,
		CreditCard:    purchase.MaskedCard(),
		InvoiceAmount: purchase.InvoiceAmount,
		InvoiceTax:    purchase.InvoiceTax,
		InvoiceTotal:  purchase.InvoiceTotal,
		OrderedAt:     purchase.OrderedAt.Format(time.RFC3339),
		Items:         items,
	}
}

// GetAllProducts returns the full catalog
func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	payload := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		payload = append(payload, newProductResponse(product))
	}

	return response.Success(c, http.StatusOK, "Products", payload)
}

// GetProduct returns a single product. A non-integer id is a 400, an unknown
// id a 404.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Product id must be a positive integer")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Product", newProductResponse(product))
}

// Purchase handles checkout for the authenticated customer
func (h *ProductHandler) Purchase(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "NO_ACTIVE_SESSION", "No active session")
	}

	var req PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}

	output, err := h.checkoutUC.Purchase(c.Request().Context(), session.CustomerID, &usecase.CheckoutInput{
		Street:        req.Street,
		City:          req.City,
		Province:      req.Province,
		Country:       req.Country,
		PostalCode:    req.PostalCode,
		CreditCard:    req.CreditCard,
		CreditExpire:  req.CreditExpire,
		CreditCVV:     req.CreditCVV,
		Cart:          req.Cart,
		InvoiceAmount: req.InvoiceAmount,
		InvoiceTax:    req.InvoiceTax,
		InvoiceTotal:  req.InvoiceTotal,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// The cart was consumed by the committed purchase.
	c.SetCookie(middleware.ClearCartCookie(h.cartCookieName))

	return response.Success(c, http.StatusCreated, "Purchase completed", newPurchaseResponse(output.Purchase))
}
