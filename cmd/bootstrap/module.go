package bootstrap

import (
	"deal-marketplace/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	JWTModule,
	AuthzModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
