package components

import (
	"deal-marketplace/internal/domain/payment"
	"deal-marketplace/internal/pkg/clock"
	"deal-marketplace/internal/pkg/config"
	"deal-marketplace/internal/usecase/commands"
	"deal-marketplace/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *payment.Verifier {
		return payment.NewVerifier(cfg.Payment.WebhookSecret, cfg.Payment.SignatureTolerance)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewDealUseCase,
		commands.NewCheckoutUseCase,
		commands.NewOrderUseCase,
		commands.NewFavoriteUseCase,
		commands.NewNotificationUseCase,
		commands.NewRestaurantUseCase,
		commands.NewPaymentUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDealQueries,
		queries.NewOrderQueries,
		queries.NewFavoriteQueries,
		queries.NewNotificationQueries,
		queries.NewRestaurantQueries,
	),
)
