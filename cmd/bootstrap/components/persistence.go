package components

import (
	"deal-marketplace/internal/infra/readstore"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	"deal-marketplace/internal/infra/uow"
	"deal-marketplace/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Read stores run on the pool outside transactions; command-side reads go
// through the unit of work instead.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Deal
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.DealReadStore {
				return readstore.NewDealReadStore(q, db)
			},
			fx.As(new(queries.DealReadStore)),
		),
		// Order
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.OrderReadStore {
				return readstore.NewOrderReadStore(q, db)
			},
			fx.As(new(queries.OrderReadStore)),
		),
		// Favorite
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.FavoriteReadStore {
				return readstore.NewFavoriteReadStore(q, db)
			},
			fx.As(new(queries.FavoriteReadStore)),
		),
		// Notification
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.NotificationReadStore {
				return readstore.NewNotificationReadStore(q, db)
			},
			fx.As(new(queries.NotificationReadStore)),
		),
		// Restaurant
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.RestaurantReadStore {
				return readstore.NewRestaurantReadStore(q, db)
			},
			fx.As(new(queries.RestaurantReadStore)),
		),
		// User
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.UserReadStore {
				return readstore.NewUserReadStore(q, db)
			},
			fx.As(new(queries.ProfileReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
