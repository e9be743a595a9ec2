package impl

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

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

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service   usecase.CheckoutUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	cartRepo  *mockRepo.MockCartRepository
	orderRepo *mockRepo.MockOrderRepository
	estimator *mockSvc.MockDeliveryEstimator
	qrSvc     *mockSvc.MockQRCodeService
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	estimator := mockSvc.NewMockDeliveryEstimator(t)
	qrSvc := mockSvc.NewMockQRCodeService(t)

	service := NewCheckoutService(CheckoutServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		CartRepo:  cartRepo,
		Estimator: estimator,
		QRSvc:     qrSvc,
		Logger:    newDiscardLogger(),
	})

	return checkoutServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		estimator: estimator,
		qrSvc:     qrSvc,
	}
}

// expectTransaction routes the transactional callback through the mocked
// repository factory so the order repo expectations apply inside it.
func expectTransaction(t *testing.T, fx checkoutServiceFixtures, ctx context.Context, result error) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(fx.orderRepo).Maybe()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			if result != nil {
				return result
			}
			return fn(factory)
		})
}

func TestCheckoutService_PlaceOrder_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	user := &entity.User{ID: userID, Email: "shopper@example.com"}

	cart := entity.NewCart("session-1")
	cart.Add(testProduct(1, "Mug", "10.00"), 2)
	cart.Add(testProduct(2, "Coaster", "5.00"), 1)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.cartRepo.EXPECT().Find(ctx, "session-1").Return(cart, nil)

	expectTransaction(t, fx, ctx, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = orderID
		}).
		Return(nil)

	fx.cartRepo.EXPECT().Delete(ctx, "session-1").Return(nil)
	deliveryDate := time.Date(2026, time.September, 8, 0, 0, 0, 0, time.UTC)
	fx.estimator.EXPECT().Estimate(mock.AnythingOfType("time.Time")).Return(deliveryDate)
	fx.qrSvc.EXPECT().GenerateOrderQR(orderID).Return([]byte("png-bytes"), nil)

	output, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID:    userID,
		SessionID: "session-1",
		Address:   testAddress(),
	})

	require.NoError(t, err)
	assert.Equal(t, orderID, output.OrderID)
	assert.Equal(t, "28.25", output.TotalPrice.String())
	assert.Equal(t, "Tuesday, September 08, 2026", output.DeliveryDate)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("png-bytes")), output.QRCode)
}

func TestCheckoutService_PlaceOrder_SnapshotsLinesAndAddress(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "shopper@example.com"}

	cart := entity.NewCart("session-1")
	cart.Add(testProduct(1, "Mug", "10.00"), 2)
	cart.Add(testProduct(2, "Coaster", "5.00"), 1)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.cartRepo.EXPECT().Find(ctx, "session-1").Return(cart, nil)

	var created *entity.Order
	expectTransaction(t, fx, ctx, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = uuid.New()
			created = order
		}).
		Return(nil)

	fx.cartRepo.EXPECT().Delete(ctx, "session-1").Return(nil)
	fx.estimator.EXPECT().Estimate(mock.AnythingOfType("time.Time")).Return(time.Now())
	fx.qrSvc.EXPECT().GenerateOrderQR(mock.AnythingOfType("uuid.UUID")).Return([]byte{1}, nil)

	_, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID:    userID,
		SessionID: "session-1",
		Address:   testAddress(),
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, "12 Rue Neuve, Lyon, Rhone, 69002, France", created.Address)
	require.Len(t, created.Lines, 2)
	assert.Equal(t, int64(1), created.Lines[0].ProductID)
	assert.Equal(t, 2, created.Lines[0].Quantity)
	assert.Equal(t, int64(2), created.Lines[1].ProductID)
	assert.Equal(t, 1, created.Lines[1].Quantity)
}

func TestCheckoutService_PlaceOrder_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.cartRepo.EXPECT().Find(ctx, "session-1").Return(entity.NewCart("session-1"), nil)

	output, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID:    userID,
		SessionID: "session-1",
		Address:   testAddress(),
	})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CART_EMPTY", appErr.ErrorCode())
}

func TestCheckoutService_PlaceOrder_MissingAddressFields(t *testing.T) {
	fx := createTestCheckoutService(t)

	address := testAddress()
	address.City = ""
	address.Country = "   "

	output, err := fx.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
		UserID:    uuid.New(),
		SessionID: "session-1",
		Address:   address,
	})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "city")
	assert.Contains(t, appErr.Details(), "country")
}

func TestCheckoutService_PlaceOrder_TransactionFailure(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()

	cart := entity.NewCart("session-1")
	cart.Add(testProduct(1, "Mug", "10.00"), 1)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.cartRepo.EXPECT().Find(ctx, "session-1").Return(cart, nil)

	// The cart must survive a failed transaction so checkout can be retried.
	expectTransaction(t, fx, ctx, errors.New("insert failed"))

	output, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID:    userID,
		SessionID: "session-1",
		Address:   testAddress(),
	})

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestCheckoutService_PlaceOrder_SavedAddressSurvivesTransactionFailure(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	address := testAddress()

	cart := entity.NewCart("session-1")
	cart.Add(testProduct(1, "Mug", "10.00"), 1)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.cartRepo.EXPECT().Find(ctx, "session-1").Return(cart, nil)

	// The address write happens before, and independently of, the order
	// transaction: the user keeps the saved address even though the order
	// itself is rolled back. Nothing else is written and the cart stays.
	fx.userRepo.EXPECT().UpdateAddress(ctx, userID, address).Return(nil)
	expectTransaction(t, fx, ctx, errors.New("insert failed"))

	output, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID:      userID,
		SessionID:   "session-1",
		Address:     address,
		SaveAddress: true,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	fx.userRepo.AssertCalled(t, "UpdateAddress", ctx, userID, address)
	fx.cartRepo.AssertNotCalled(t, "Delete", ctx, "session-1")
}

func TestCheckoutService_PlaceOrder_SavesAddressWhenRequested(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	address := testAddress()

	cart := entity.NewCart("session-1")
	cart.Add(testProduct(1, "Mug", "10.00"), 1)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.cartRepo.EXPECT().Find(ctx, "session-1").Return(cart, nil)
	fx.userRepo.EXPECT().UpdateAddress(ctx, userID, address).Return(nil)

	expectTransaction(t, fx, ctx, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)

	fx.cartRepo.EXPECT().Delete(ctx, "session-1").Return(nil)
	fx.estimator.EXPECT().Estimate(mock.AnythingOfType("time.Time")).Return(time.Now())
	fx.qrSvc.EXPECT().GenerateOrderQR(mock.AnythingOfType("uuid.UUID")).Return([]byte{1}, nil)

	_, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID:      userID,
		SessionID:   "session-1",
		Address:     address,
		SaveAddress: true,
	})

	require.NoError(t, err)
}

func TestCheckoutService_PlaceOrder_ConfirmationSurvivesQRFailure(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()

	cart := entity.NewCart("session-1")
	cart.Add(testProduct(1, "Mug", "10.00"), 1)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.cartRepo.EXPECT().Find(ctx, "session-1").Return(cart, nil)

	expectTransaction(t, fx, ctx, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)

	fx.cartRepo.EXPECT().Delete(ctx, "session-1").Return(nil)
	fx.estimator.EXPECT().Estimate(mock.AnythingOfType("time.Time")).Return(time.Now())
	fx.qrSvc.EXPECT().GenerateOrderQR(mock.AnythingOfType("uuid.UUID")).Return(nil, errors.New("encode failed"))

	output, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID:    userID,
		SessionID: "session-1",
		Address:   testAddress(),
	})

	require.NoError(t, err)
	assert.Empty(t, output.QRCode)
}

func TestCheckoutService_GetCheckout_Prefill(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "shopper@example.com", Address: testAddress()}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	prefill, err := fx.service.GetCheckout(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, testAddress(), prefill.Address)
}

func TestCheckoutService_GetCheckout_UnknownUser(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	prefill, err := fx.service.GetCheckout(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, prefill)
}
