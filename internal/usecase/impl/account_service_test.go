package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vintagecomics/config"
	"vintagecomics/internal/domain/entity"
	domainerrors "vintagecomics/internal/domain/errors"
	"vintagecomics/internal/domain/repository"
	"vintagecomics/internal/domain/service"
	mockRepo "vintagecomics/internal/mocks/repository"
	mockSvc "vintagecomics/internal/mocks/service"
	"vintagecomics/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	txManager   *mockRepo.MockTransactionManager
	sessionRepo *mockRepo.MockSessionRepository
	hasher      *mockSvc.MockPasswordHasher
	policy      *mockSvc.MockPasswordPolicy
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	policy := mockSvc.NewMockPasswordPolicy(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Session: &config.SessionConfig{
			CookieName: "vc_session",
			TTL:        time.Hour,
		},
	}

	svc := NewAccountService(AccountServiceParams{
		TxManager:   txManager,
		SessionRepo: sessionRepo,
		Hasher:      hasher,
		Policy:      policy,
		Config:      cfg,
		Logger:      logger,
	})

	return accountServiceFixtures{
		service:     svc,
		txManager:   txManager,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		policy:      policy,
	}
}

func TestAccountService_Signup_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Email:     "bruce@example.com",
		Password:  "Password123",
		FirstName: "Bruce",
		LastName:  "Wayne",
	}

	fx.policy.EXPECT().Validate(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)

			mockFactory.EXPECT().CustomerRepo().Return(mockCustomerRepo)

			mockCustomerRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrCustomerNotFound)

			mockCustomerRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Customer")).
				Run(func(ctx context.Context, customer *entity.Customer) {
					customer.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.Customer.Email)
	assert.Equal(t, "hashed_password", output.Customer.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.Customer.ID)
}

func TestAccountService_Signup_MissingFields(t *testing.T) {
	fx := createTestAccountService(t)

	output, err := fx.service.Signup(context.Background(), &usecase.SignupInput{
		Email:    "bruce@example.com",
		Password: "Password123",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingFields))
}

func TestAccountService_Signup_WeakPassword(t *testing.T) {
	fx := createTestAccountService(t)

	input := &usecase.SignupInput{
		Email:     "bruce@example.com",
		Password:  "weak",
		FirstName: "Bruce",
		LastName:  "Wayne",
	}

	fx.policy.EXPECT().Validate(input.Password).Return([]service.PasswordViolation{
		{Rule: service.RuleMinLength, Message: "password must be at least 8 characters long"},
		{Rule: service.RuleUppercase, Message: "password must contain an uppercase letter"},
	})

	output, err := fx.service.Signup(context.Background(), input)

	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrWeakPassword.ErrorCode(), appErr.ErrorCode())

	var lister domainerrors.DetailLister
	require.True(t, errors.As(err, &lister))
	assert.Len(t, lister.DetailItems(), 2)
}

func TestAccountService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Email:     "bruce@example.com",
		Password:  "Password123",
		FirstName: "Bruce",
		LastName:  "Wayne",
	}

	fx.policy.EXPECT().Validate(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)

			mockFactory.EXPECT().CustomerRepo().Return(mockCustomerRepo)

			mockCustomerRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.Customer{ID: uuid.New(), Email: input.Email}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrEmailAlreadyInUse)

	output, err := fx.service.Signup(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyInUse))
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "bruce@example.com",
		Password: "Password123",
	}
	customer := &entity.Customer{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
		FirstName:    "Bruce",
		LastName:     "Wayne",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().CustomerRepo().Return(mockCustomerRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockCustomerRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(customer, nil)

			fx.hasher.EXPECT().Check(input.Password, customer.PasswordHash).Return(true)

			mockSessionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Session")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)

	// 256-bit token, hex encoded.
	assert.Len(t, output.Token, 64)
	assert.Equal(t, hashSessionToken(output.Token), output.Session.TokenHash)
	assert.Equal(t, customer.ID, output.Session.CustomerID)
	assert.Equal(t, customer.Email, output.Session.Email)
	assert.Equal(t, customer.FirstName, output.Session.FirstName)
	assert.Equal(t, customer.LastName, output.Session.LastName)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), output.Session.ExpiresAt, 5*time.Second)
}

func TestAccountService_Login_MissingFields(t *testing.T) {
	fx := createTestAccountService(t)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "bruce@example.com"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingFields))
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)

			mockFactory.EXPECT().CustomerRepo().Return(mockCustomerRepo)

			mockCustomerRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrCustomerNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrCustomerNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "bruce@example.com",
		Password: "wrong",
	}
	customer := &entity.Customer{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)

			mockFactory.EXPECT().CustomerRepo().Return(mockCustomerRepo)

			mockCustomerRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(customer, nil)

			fx.hasher.EXPECT().Check(input.Password, customer.PasswordHash).Return(false)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInvalidCredentials)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Logout_NoToken(t *testing.T) {
	fx := createTestAccountService(t)

	assert.NoError(t, fx.service.Logout(context.Background(), ""))
}

func TestAccountService_Logout_DeletesByHash(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	token := "raw-session-token"

	fx.sessionRepo.EXPECT().
		DeleteByTokenHash(ctx, hashSessionToken(token)).
		Return(nil)

	assert.NoError(t, fx.service.Logout(ctx, token))
}

func TestAccountService_GetSession_NoToken(t *testing.T) {
	fx := createTestAccountService(t)

	output, err := fx.service.GetSession(context.Background(), "")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrNoActiveSession))
}

func TestAccountService_GetSession_UnknownToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	token := "raw-session-token"

	fx.sessionRepo.EXPECT().
		FindByTokenHash(ctx, hashSessionToken(token)).
		Return(nil, repository.ErrSessionNotFound)

	output, err := fx.service.GetSession(ctx, token)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrNoActiveSession))
}

func TestAccountService_GetSession_Expired(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	token := "raw-session-token"
	hash := hashSessionToken(token)

	fx.sessionRepo.EXPECT().
		FindByTokenHash(ctx, hash).
		Return(&entity.Session{
			ID:         uuid.New(),
			CustomerID: uuid.New(),
			TokenHash:  hash,
			ExpiresAt:  time.Now().UTC().Add(-time.Minute),
		}, nil)

	fx.sessionRepo.EXPECT().
		DeleteByTokenHash(ctx, hash).
		Return(nil)

	output, err := fx.service.GetSession(ctx, token)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrNoActiveSession))
}

func TestAccountService_GetSession_Active(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	token := "raw-session-token"
	hash := hashSessionToken(token)
	session := &entity.Session{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		TokenHash:  hash,
		Email:      "bruce@example.com",
		FirstName:  "Bruce",
		LastName:   "Wayne",
		ExpiresAt:  time.Now().UTC().Add(30 * time.Minute),
	}

	fx.sessionRepo.EXPECT().
		FindByTokenHash(ctx, hash).
		Return(session, nil)

	output, err := fx.service.GetSession(ctx, token)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, session, output.Session)
}
