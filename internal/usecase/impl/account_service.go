package impl

import (
	"context"
	"log/slog"

	"congo/internal/domain/entity"
	domainerrors "congo/internal/domain/errors"
	"congo/internal/domain/repository"
	"congo/internal/domain/service"
	"congo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPasswordHash is a valid bcrypt hash of a random throwaway string.
// Login runs a comparison against it when the email is unknown so that the
// response time does not reveal whether the account exists.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	TokenSvc service.TokenService
	Logger   *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		tokenSvc: params.TokenSvc,
		logger:   params.Logger,
	}
}

// Signup registers a new account.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.logger.Info("Starting signup", slog.String("email", email))

	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.ErrPasswordMismatch.WrapMessage("signup rejected")
	}

	if err := srv.hasher.ValidatePassword(input.Password); err != nil {
		return nil, domainerrors.ErrPasswordTooShort.WrapMessage("signup rejected")
	}

	// Uniqueness is checked here for a friendly error; the unique index on
	// users.email still backstops a racing duplicate signup.
	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrEmailTaken.WrapMessage("signup rejected")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("signup failed")
	}

	newUser := &entity.User{
		Email:        email,
		PasswordHash: hashed,
	}
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.logger.Error("Failed to create user during signup", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.logger.Debug("Signup completed", slog.Any("userID", newUser.ID))

	return &usecase.SignupOutput{User: newUser}, nil
}

// Login verifies credentials and issues a session token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn a bcrypt comparison so unknown emails take as long
			// as wrong passwords.
			srv.hasher.Check(input.Password, dummyPasswordHash)

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Password mismatch during login", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenSvc.GenerateSessionToken(user.ID, user.Email)
	if err != nil {
		srv.logger.Error("Failed to generate session token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.logger.Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{User: user, SessionToken: token}, nil
}
