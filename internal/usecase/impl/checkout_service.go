package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"
	"time"

	"congo/internal/domain/entity"
	domainerrors "congo/internal/domain/errors"
	"congo/internal/domain/repository"
	"congo/internal/domain/service"
	"congo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deliveryDateLayout is the human-readable confirmation format,
// e.g. "Monday, January 02, 2006".
const deliveryDateLayout = "Monday, January 02, 2006"

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	cartRepo  repository.CartRepository
	estimator service.DeliveryEstimator
	qrSvc     service.QRCodeService
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	CartRepo  repository.CartRepository
	Estimator service.DeliveryEstimator
	QRSvc     service.QRCodeService
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService. It receives all dependencies as interfaces.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		cartRepo:  params.CartRepo,
		estimator: params.Estimator,
		qrSvc:     params.QRSvc,
		logger:    params.Logger,
	}
}

// GetCheckout returns the user's saved address for form prefill.
func (srv *checkoutService) GetCheckout(ctx context.Context, userID uuid.UUID) (*usecase.CheckoutPrefill, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("checkout prefill failed")
		}

		return nil, errors.Wrap(err, "failed to load user for checkout")
	}

	return &usecase.CheckoutPrefill{Address: user.Address}, nil
}

// PlaceOrder atomically materializes the session cart into a persisted order.
func (srv *checkoutService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	srv.logger.Info("Starting order placement", slog.Any("userID", input.UserID), slog.String("sessionID", input.SessionID))

	if missing := missingAddressFields(input.Address); len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing address fields: " + strings.Join(missing, ", "))
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("order placement rejected")
		}

		return nil, errors.Wrap(err, "failed to load user for order placement")
	}

	cart, err := srv.cartRepo.Find(ctx, input.SessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart for order placement")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty.WrapMessage("order placement rejected")
	}

	// The address save is intentionally outside the order transaction: a
	// saved address survives even if order placement fails afterwards.
	if input.SaveAddress {
		if err := srv.userRepo.UpdateAddress(ctx, user.ID, input.Address); err != nil {
			srv.logger.Error("Failed to save address", slog.Any("userID", user.ID), slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to save address")
		}
	}

	// The total is recomputed here from the cart snapshot; client-supplied
	// totals never reach this path.
	order := entity.OrderFromCart(user.ID, cart, input.Address)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OrderRepo().Create(ctx, order)
	})
	if err != nil {
		srv.logger.Error("Failed to execute order placement transaction", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order placement transaction")
	}

	if err := srv.cartRepo.Delete(ctx, input.SessionID); err != nil {
		// The order is already durable; a failed cart cleanup only risks a
		// stale cart, so log it rather than failing the confirmation.
		srv.logger.Warn("Failed to clear cart after order placement", slog.String("sessionID", input.SessionID), slog.Any("error", err))
	}

	output := &usecase.PlaceOrderOutput{
		OrderID:      order.ID,
		TotalPrice:   order.TotalPrice,
		DeliveryDate: srv.estimator.Estimate(time.Now()).Format(deliveryDateLayout),
	}

	if qr, err := srv.qrSvc.GenerateOrderQR(order.ID); err != nil {
		srv.logger.Warn("Failed to generate confirmation QR code", slog.Any("orderID", order.ID), slog.Any("error", err))
	} else {
		output.QRCode = base64.StdEncoding.EncodeToString(qr)
	}

	srv.logger.Debug("Order placed", slog.Any("orderID", order.ID), slog.String("total", order.TotalPrice.String()))

	return output, nil
}

// missingAddressFields returns the names of required address fields that are blank.
func missingAddressFields(address entity.Address) []string {
	var missing []string

	fields := []struct {
		name  string
		value string
	}{
		{"street", address.Street},
		{"city", address.City},
		{"state", address.State},
		{"postal_code", address.PostalCode},
		{"country", address.Country},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}

	return missing
}
