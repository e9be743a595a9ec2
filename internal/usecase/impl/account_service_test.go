package impl

import (
	"context"
	"testing"

	"congo/internal/domain/entity"
	domainerrors "congo/internal/domain/errors"
	"congo/internal/domain/repository"
	mockRepo "congo/internal/mocks/repository"
	mockSvc "congo/internal/mocks/service"
	"congo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service  usecase.AccountUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	tokenSvc *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		TokenSvc: tokenSvc,
		Logger:   newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		tokenSvc: tokenSvc,
	}
}

func TestAccountService_Signup_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Email:           "Shopper@Example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}

	fx.hasher.EXPECT().ValidatePassword("password123").Return(nil)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "shopper@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("password123").Return("hashed-password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "shopper@example.com", output.User.Email)
	assert.Equal(t, "hashed-password", output.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAccountService_Signup_PasswordMismatch(t *testing.T) {
	fx := createTestAccountService(t)

	input := &usecase.SignupInput{
		Email:           "shopper@example.com",
		Password:        "password123",
		ConfirmPassword: "password124",
	}

	output, err := fx.service.Signup(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PASSWORD_MISMATCH", appErr.ErrorCode())
}

func TestAccountService_Signup_PasswordTooShort(t *testing.T) {
	fx := createTestAccountService(t)

	input := &usecase.SignupInput{
		Email:           "shopper@example.com",
		Password:        "short77",
		ConfirmPassword: "short77",
	}

	fx.hasher.EXPECT().ValidatePassword("short77").Return(errors.New("password must be at least 8 characters"))

	output, err := fx.service.Signup(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PASSWORD_TOO_SHORT", appErr.ErrorCode())
}

func TestAccountService_Signup_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Email:           "TAKEN@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}

	fx.hasher.EXPECT().ValidatePassword("password123").Return(nil)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "taken@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	output, err := fx.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EMAIL_TAKEN", appErr.ErrorCode())
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "shopper@example.com",
		PasswordHash: "stored-hash",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "shopper@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("password123", "stored-hash").Return(true)
	fx.tokenSvc.EXPECT().GenerateSessionToken(userID, "shopper@example.com").Return("session-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "Shopper@Example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.SessionToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)
	// A comparison is still burned so timing does not reveal account existence.
	fx.hasher.EXPECT().Check("password123", dummyPasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "shopper@example.com",
		PasswordHash: "stored-hash",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "shopper@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong-password", "stored-hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "shopper@example.com",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.Nil(t, output)

	// Unknown email and wrong password must be indistinguishable.
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
	assert.Equal(t, "Invalid email or password", appErr.Message())
}
