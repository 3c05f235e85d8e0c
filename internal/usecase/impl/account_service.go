// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"vintagecomics/config"
	deliverycontext "vintagecomics/internal/delivery/context"
	"vintagecomics/internal/domain/entity"
	domainerrors "vintagecomics/internal/domain/errors"
	"vintagecomics/internal/domain/repository"
	"vintagecomics/internal/domain/service"
	"vintagecomics/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const sessionTokenBytes = 32

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	policy      service.PasswordPolicy
	sessionTTL  time.Duration
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	Policy      service.PasswordPolicy
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	sessionTTL := time.Hour
	if params.Config != nil && params.Config.Session != nil && params.Config.Session.TTL > 0 {
		sessionTTL = params.Config.Session.TTL
	}

	return &accountService{
		txManager:   params.TxManager,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		policy:      params.Policy,
		sessionTTL:  sessionTTL,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup orchestrates the complete account creation process.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" ||
		strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, domainerrors.ErrMissingFields
	}

	if violations := srv.policy.Validate(input.Password); len(violations) > 0 {
		messages := make([]string, 0, len(violations))
		for _, v := range violations {
			messages = append(messages, v.Message)
		}
		srv.log(ctx).Warn("Password rejected by policy during signup",
			slog.String("email", email),
			slog.Int("violations", len(violations)),
		)

		return nil, domainerrors.ErrWeakPassword.WithDetailItems(messages)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	newCustomer := &entity.Customer{
		Email:        email,
		PasswordHash: hashedPassword,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		_, err := customerRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyInUse
		}
		if !errors.Is(err, repository.ErrCustomerNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		// Create relies on the unique index for the concurrent-signup race.
		return customerRepo.Create(ctx, newCustomer)
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to execute signup transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.log(ctx).Info("Customer signed up", slog.Any("customerID", newCustomer.ID))

	return &usecase.SignupOutput{Customer: newCustomer}, nil
}

// Login verifies credentials and opens a new session.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingFields
	}

	var token string
	var session *entity.Session
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customer, err := repoFactory.CustomerRepo().FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrCustomerNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find customer by email")
		}

		if !srv.hasher.Check(input.Password, customer.PasswordHash) {
			srv.log(ctx).Warn("Password mismatch during login", slog.Any("customerID", customer.ID))

			return domainerrors.ErrInvalidCredentials
		}

		token, err = newSessionToken()
		if err != nil {
			return errors.Wrap(err, "failed to generate session token")
		}

		session = &entity.Session{
			CustomerID: customer.ID,
			TokenHash:  hashSessionToken(token),
			Email:      customer.Email,
			FirstName:  customer.FirstName,
			LastName:   customer.LastName,
			ExpiresAt:  time.Now().UTC().Add(srv.sessionTTL),
		}

		return repoFactory.SessionRepo().Create(ctx, session)
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to execute login transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	srv.log(ctx).Info("Customer logged in", slog.Any("customerID", session.CustomerID))

	return &usecase.LoginOutput{Token: token, Session: session}, nil
}

// Logout ends the session identified by the raw cookie token.
func (srv *accountService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := srv.sessionRepo.DeleteByTokenHash(ctx, hashSessionToken(token)); err != nil {
		srv.log(ctx).Error("Failed to delete session during logout", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// GetSession resolves the raw cookie token to an active session.
func (srv *accountService) GetSession(ctx context.Context, token string) (*usecase.SessionOutput, error) {
	if token == "" {
		return nil, domainerrors.ErrNoActiveSession
	}

	hash := hashSessionToken(token)
	session, err := srv.sessionRepo.FindByTokenHash(ctx, hash)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, domainerrors.ErrNoActiveSession
	}
	if err != nil {
		srv.log(ctx).Error("Failed to look up session", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up session")
	}

	if session.Expired(time.Now().UTC()) {
		// Best effort cleanup; the unique hash never matches again either way.
		if err := srv.sessionRepo.DeleteByTokenHash(ctx, hash); err != nil {
			srv.log(ctx).Warn("Failed to delete expired session", slog.Any("error", err))
		}

		return nil, domainerrors.ErrNoActiveSession
	}

	return &usecase.SessionOutput{Session: session}, nil
}

// newSessionToken returns a fresh 256-bit token, hex-encoded for cookie safety.
func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.WithStack(err)
	}

	return hex.EncodeToString(buf), nil
}

// hashSessionToken derives the stored lookup key from the raw cookie token.
func hashSessionToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
