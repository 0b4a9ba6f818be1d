package bootstrap

import (
	"deal-marketplace/internal/pkg/authz"

	"go.uber.org/fx"
)

var AuthzModule = fx.Module("authz",
	fx.Provide(
		authz.NewAuthorizer,
	),
)
