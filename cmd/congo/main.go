package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"congo/config"
	"congo/internal/delivery"
	"congo/internal/delivery/http"
	"congo/internal/delivery/http/middleware"
	"congo/internal/delivery/http/router/handler"
	"congo/internal/domain/repository"
	"congo/internal/domain/service"
	"congo/internal/infra/auth"
	"congo/internal/infra/cartstore"
	logs "congo/internal/infra/log"
	"congo/internal/infra/persistence/postgres"
	"congo/internal/infra/qrcode"
	"congo/internal/infra/shipping"
	"congo/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			postgres.Migrate,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
			newCartRepository,
		),
	)
}

// newCartRepository selects the cart store backend from configuration.
// The in-memory store suits a single instance; Redis shares carts across
// replicas. Both stores hold resources (a janitor goroutine or a client
// pool), so shutdown is hooked into the fx lifecycle like the database.
func newCartRepository(lc fx.Lifecycle, ctx context.Context, cfg *config.Config) (repository.CartRepository, error) {
	ttl := time.Duration(cfg.Cart.TTLHours) * time.Hour

	var (
		store repository.CartRepository
		err   error
	)

	switch cfg.Cart.Backend {
	case "redis":
		store, err = cartstore.NewRedisStore(ctx, cfg.Cart.Redis, ttl)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis cart store: %w", err)
		}
	default:
		store = cartstore.NewMemoryStore(ttl)
	}

	if closer, ok := store.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return closer.Close()
			},
		})
	}

	return store, nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			shipping.NewEstimator,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewAccountService,
			impl.NewCartService,
			impl.NewCheckoutService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewAccountHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
