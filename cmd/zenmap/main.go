package main

import (
	"context"
	"log/slog"
	"os"

	"zenmap/config"
	"zenmap/internal/delivery"
	"zenmap/internal/delivery/http"
	"zenmap/internal/delivery/http/middleware"
	"zenmap/internal/delivery/http/router/handler"
	"zenmap/internal/infra/auth"
	logs "zenmap/internal/infra/log"
	"zenmap/internal/infra/persistence/postgres"
	"zenmap/internal/infra/pubsub"
	"zenmap/internal/infra/qrcode"
	"zenmap/internal/usecase/impl"

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
			postgres.NewProfileRepository,
			postgres.NewLocationRepository,
			postgres.NewFriendRequestRepository,
			postgres.NewShareRuleRepository,
			postgres.NewSettingsRepository,
			postgres.NewPlaceRepository,
			postgres.NewBumpRepository,
			postgres.NewReactionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewLocationService,
			impl.NewFriendService,
			impl.NewSettingsService,
			impl.NewProximityService,
			impl.NewPlaceService,
			impl.NewReactionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewLocationHandler,
			handler.NewFriendHandler,
			handler.NewSettingsHandler,
			handler.NewProximityHandler,
			handler.NewPlaceHandler,
			handler.NewReactionHandler,
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
