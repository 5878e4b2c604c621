package bootstrap

import (
	"parkingpro/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	ClockModule,
	LoggerModule,
	DBModule,
	CacheModule,
	JWTModule,
	components.PersistenceModule,
	components.DeliveryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
