package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vintagecomics/config"
	apivalidator "vintagecomics/internal/delivery/api/validator"
	deliverycontext "vintagecomics/internal/delivery/context"
	"vintagecomics/internal/domain/entity"
	domainerrors "vintagecomics/internal/domain/errors"
	mockUC "vintagecomics/internal/mocks/usecase"
	"vintagecomics/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userHandlerFixtures struct {
	handler   *UserHandler
	accountUC *mockUC.MockAccountUsecase
	echo      *echo.Echo
}

func createTestUserHandler(t *testing.T) userHandlerFixtures {
	accountUC := mockUC.NewMockAccountUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Session: &config.SessionConfig{
			CookieName: "vc_session",
			TTL:        time.Hour,
		},
	}

	h := NewUserHandler(UserHandlerParams{
		AccountUC: accountUC,
		Config:    cfg,
		Logger:    logger,
	})

	e := echo.New()
	e.Validator = apivalidator.New()

	return userHandlerFixtures{
		handler:   h,
		accountUC: accountUC,
		echo:      e,
	}
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_Signup_Created(t *testing.T) {
	fx := createTestUserHandler(t)

	customer := &entity.Customer{
		ID:        uuid.New(),
		Email:     "bruce@example.com",
		FirstName: "Bruce",
		LastName:  "Wayne",
	}

	fx.accountUC.EXPECT().
		Signup(mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(&usecase.SignupOutput{Customer: customer}, nil)

	body := `{"email":"bruce@example.com","password":"Password123","first_name":"Bruce","last_name":"Wayne"}`
	c, rec := newJSONContext(fx.echo, http.MethodPost, "/users/signup", body)

	require.NoError(t, fx.handler.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), customer.ID.String())
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Signup_InvalidEmail(t *testing.T) {
	fx := createTestUserHandler(t)

	body := `{"email":"not-an-email","password":"Password123","first_name":"Bruce","last_name":"Wayne"}`
	c, rec := newJSONContext(fx.echo, http.MethodPost, "/users/signup", body)

	require.NoError(t, fx.handler.Signup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestUserHandler_Signup_EmailInUse(t *testing.T) {
	fx := createTestUserHandler(t)

	fx.accountUC.EXPECT().
		Signup(mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(nil, domainerrors.ErrEmailAlreadyInUse)

	body := `{"email":"bruce@example.com","password":"Password123","first_name":"Bruce","last_name":"Wayne"}`
	c, rec := newJSONContext(fx.echo, http.MethodPost, "/users/signup", body)

	require.NoError(t, fx.handler.Signup(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_IN_USE")
}

func TestUserHandler_Signup_WeakPasswordDetails(t *testing.T) {
	fx := createTestUserHandler(t)

	fx.accountUC.EXPECT().
		Signup(mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(nil, domainerrors.ErrWeakPassword.WithDetailItems([]string{
			"password must be at least 8 characters long",
		}))

	body := `{"email":"bruce@example.com","password":"weak","first_name":"Bruce","last_name":"Wayne"}`
	c, rec := newJSONContext(fx.echo, http.MethodPost, "/users/signup", body)

	require.NoError(t, fx.handler.Signup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "PASSWORD_STRENGTH")
	assert.Contains(t, rec.Body.String(), "at least 8 characters")
}

func TestUserHandler_Login_SetsSessionCookie(t *testing.T) {
	fx := createTestUserHandler(t)

	session := &entity.Session{
		CustomerID: uuid.New(),
		Email:      "bruce@example.com",
		FirstName:  "Bruce",
		LastName:   "Wayne",
		ExpiresAt:  time.Now().UTC().Add(time.Hour),
	}

	fx.accountUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.LoginOutput{Token: "raw-token", Session: session}, nil)

	body := `{"email":"bruce@example.com","password":"Password123"}`
	c, rec := newJSONContext(fx.echo, http.MethodPost, "/users/login", body)

	require.NoError(t, fx.handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "vc_session", cookies[0].Name)
	assert.Equal(t, "raw-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, int(time.Hour.Seconds()), cookies[0].MaxAge)
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	fx := createTestUserHandler(t)

	fx.accountUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	body := `{"email":"bruce@example.com","password":"wrong"}`
	c, rec := newJSONContext(fx.echo, http.MethodPost, "/users/login", body)

	require.NoError(t, fx.handler.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	assert.Empty(t, rec.Result().Cookies())
}

func TestUserHandler_Logout_WithSessionCookie(t *testing.T) {
	fx := createTestUserHandler(t)

	fx.accountUC.EXPECT().
		Logout(mock.Anything, "raw-token").
		Return(nil)

	c, rec := newJSONContext(fx.echo, http.MethodPost, "/users/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: "vc_session", Value: "raw-token"})

	require.NoError(t, fx.handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "vc_session", cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestUserHandler_Logout_WithoutCookie(t *testing.T) {
	fx := createTestUserHandler(t)

	c, rec := newJSONContext(fx.echo, http.MethodPost, "/users/logout", "")

	require.NoError(t, fx.handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logged out")
}

func TestUserHandler_GetSession_Active(t *testing.T) {
	fx := createTestUserHandler(t)

	session := &entity.Session{
		CustomerID: uuid.New(),
		Email:      "bruce@example.com",
		FirstName:  "Bruce",
		LastName:   "Wayne",
		ExpiresAt:  time.Now().UTC().Add(time.Hour),
	}

	c, rec := newJSONContext(fx.echo, http.MethodGet, "/users/getSession", "")
	deliverycontext.SetSession(c, session)

	require.NoError(t, fx.handler.GetSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), session.CustomerID.String())
	assert.Contains(t, rec.Body.String(), "bruce@example.com")
}

func TestUserHandler_GetSession_NoSession(t *testing.T) {
	fx := createTestUserHandler(t)

	c, rec := newJSONContext(fx.echo, http.MethodGet, "/users/getSession", "")

	require.NoError(t, fx.handler.GetSession(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_ACTIVE_SESSION")
}
