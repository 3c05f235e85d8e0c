package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vintagecomics/config"
	"vintagecomics/internal/delivery/api/middleware"
	"vintagecomics/internal/delivery/api/response"
	deliverycontext "vintagecomics/internal/delivery/context"
	"vintagecomics/internal/domain/entity"
	"vintagecomics/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// UserHandler holds dependencies for account and session handlers
type UserHandler struct {
	accountUC  usecase.AccountUsecase
	cookieName string
	sessionTTL time.Duration
	logger     *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		accountUC:  params.AccountUC,
		cookieName: params.Config.Session.CookieName,
		sessionTTL: params.Config.Session.TTL,
		logger:     params.Logger,
	}
}

// SignupRequest represents the request body for creating an account.
// Presence of the fields is checked by the usecase so that every missing
// field maps to the same MISSING_FIELDS error; the validator only vets the
// email format when one is supplied.
type SignupRequest struct {
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

// CustomerResponse is the identity payload returned by signup and getSession.
type CustomerResponse struct {
	CustomerID string `json:"customer_id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

func newCustomerResponse(customer *entity.Customer) *CustomerResponse {
	return &CustomerResponse{
		CustomerID: customer.ID.String(),
		Email:      customer.Email,
		FirstName:  customer.FirstName,
		LastName:   customer.LastName,
	}
}

func newSessionResponse(session *entity.Session) *CustomerResponse {
	return &CustomerResponse{
		CustomerID: session.CustomerID.String(),
		Email:      session.Email,
		FirstName:  session.FirstName,
		LastName:   session.LastName,
	}
}

// Signup handles account creation
func (h *UserHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Email address is not valid")
	}

	output, err := h.accountUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, "Account created", newCustomerResponse(output.Customer))
}

// Login handles credential verification and opens a session
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Email address is not valid")
	}

	output, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(middleware.NewSessionCookie(h.cookieName, output.Token, int(h.sessionTTL.Seconds())))

	return response.Success(c, http.StatusOK, "Logged in", newSessionResponse(output.Session))
}

// Logout ends the session and clears the cookie. Always 200, even with no
// active session.
func (h *UserHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie != nil {
		if err := h.accountUC.Logout(c.Request().Context(), cookie.Value); err != nil {
			// The cookie is cleared regardless; a stale row expires on its own.
			h.logger.Warn("Failed to delete session during logout", slog.Any("error", err))
		}
	}

	c.SetCookie(middleware.ClearSessionCookie(h.cookieName))

	return response.Success(c, http.StatusOK, "Logged out", nil)
}

// GetSession returns the identity behind the active session. The session
// middleware has already resolved the cookie.
func (h *UserHandler) GetSession(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "NO_ACTIVE_SESSION", "No active session")
	}

	return response.Success(c, http.StatusOK, "Active session", newSessionResponse(session))
}
