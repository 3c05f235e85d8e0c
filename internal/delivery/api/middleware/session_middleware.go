package middleware

import (
	"log/slog"

	"vintagecomics/config"
	deliverycontext "vintagecomics/internal/delivery/context"
	"vintagecomics/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionMiddleware authenticates requests by resolving the session cookie
// against the server-side session store.
type SessionMiddleware struct {
	accountUC  usecase.AccountUsecase
	cookieName string
	logger     *slog.Logger
}

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSessionMiddleware creates a new session authentication middleware
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		accountUC:  params.AccountUC,
		cookieName: params.Config.Session.CookieName,
		logger:     params.Logger,
	}
}

// Authenticate rejects requests without an active session and stores the
// resolved session in the echo context for handlers.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.CookieToken(c)
		output, err := m.accountUC.GetSession(c.Request().Context(), token)
		if err != nil {
			logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
			logger.Debug("Rejected request without an active session",
				slog.String("path", c.Request().URL.Path),
			)

			// GetSession maps every failure mode to an AppError; the
			// centralized error handler turns it into the envelope.
			return err
		}

		deliverycontext.SetSession(c, output.Session)

		return next(c)
	}
}

// CookieToken extracts the raw session token from the request cookie.
// Returns empty string when the cookie is absent.
func (m *SessionMiddleware) CookieToken(c echo.Context) string {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}

// CookieName exposes the configured session cookie name for handlers that
// set or clear the cookie.
func (m *SessionMiddleware) CookieName() string {
	return m.cookieName
}
