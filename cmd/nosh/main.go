package main

import (
	"context"
	"log/slog"
	"os"

	"nosh/config"
	"nosh/internal/delivery"
	"nosh/internal/delivery/http"
	"nosh/internal/delivery/http/router/handler"
	"nosh/internal/domain/repository"
	"nosh/internal/domain/service"
	"nosh/internal/infra/backend"
	"nosh/internal/infra/geocode"
	"nosh/internal/infra/geoloc"
	logs "nosh/internal/infra/log"
	"nosh/internal/infra/qrcode"
	"nosh/internal/infra/storage"
	"nosh/internal/usecase"
	"nosh/internal/usecase/impl"

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
		injectGateway(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			wireUnauthorizedHook,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		backend.NewHeaderSnapshot,
		backend.NewClient,
		newStore,
	)
}

// newStore builds the device store and wraps it so writes to the
// header-relevant keys flow through to the snapshot. The snapshot is
// seeded from persisted state before anything can issue a request.
func newStore(
	ctx context.Context,
	params storage.StoreParams,
	snapshot *backend.HeaderSnapshot,
	logger *slog.Logger,
) (repository.KVStore, error) {
	raw, err := storage.NewStore(params)
	if err != nil {
		return nil, err
	}

	snapshot.Seed(ctx, raw, logger)

	return backend.NewWatchedStore(raw, snapshot), nil
}

func injectGateway() fx.Option {
	return fx.Options(
		fx.Provide(
			backend.NewAuthAPI,
			backend.NewZoneAPI,
			backend.NewCartAPI,
			backend.NewAddressAPI,
			backend.NewCatalogAPI,
			backend.NewOrderAPI,
			backend.NewWalletAPI,
			backend.NewCustomerAPI,
			backend.NewNotificationAPI,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			geocode.NewGeocoder,
			geoloc.NewLocator,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", cfg.Backend.BaseURL+"/track-order")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.TrackingBaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewLocationService,
			impl.NewBootstrapService,
			impl.NewCartService,
			impl.NewAddressService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewWalletService,
			impl.NewProfileService,
			impl.NewNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewBootstrapHandler,
			handler.NewSessionHandler,
			handler.NewLocationHandler,
			handler.NewCartHandler,
			handler.NewAddressHandler,
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
			handler.NewWalletHandler,
			handler.NewProfileHandler,
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

// wireUnauthorizedHook routes backend 401 responses into a forced
// logout, so an expired token tears the session down exactly once.
func wireUnauthorizedHook(client *backend.Client, session usecase.SessionUsecase) {
	client.SetUnauthorizedHook(func() {
		session.ForceLogout(context.Background())
	})
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
