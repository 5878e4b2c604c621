package components

import (
	"log/slog"

	"parkingpro/internal/infra/cache"
	"parkingpro/internal/infra/query"
	"parkingpro/internal/infra/readstore"
	"parkingpro/internal/infra/repository"
	"parkingpro/internal/pkg/config"
	"parkingpro/internal/usecase/queries"
	"parkingpro/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	NewTxDB,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Plan
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PlanReadQueries)),
		),
		readstore.NewPlanReadStore,
		NewPlanFinder,
		// Pricing and contact lookups
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LookupQueries)),
		),
		fx.Annotate(
			readstore.NewLookupReadStore,
			fx.As(new(shared.PricingReads)),
			fx.As(new(shared.ContactReads)),
		),
		// Subscription
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SubscriptionReadQueries)),
		),
		fx.Annotate(
			readstore.NewSubscriptionReadStore,
			fx.As(new(queries.SubscriptionViewRepo)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.SubscriptionWriteQueries)),
		),
		fx.Annotate(
			repository.NewSubscriptionRepository,
			fx.As(new(shared.SubscriptionRecorder)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}

func NewTxDB(pool *pgxpool.Pool) repository.TxDB {
	return pool
}

// NewPlanFinder puts the Redis read-through cache in front of the plan store when one is configured.
func NewPlanFinder(cfg config.Config, store *readstore.PlanReadStore, client *redis.Client, logger *slog.Logger) readstore.PlanFinder {
	if client == nil {
		return store
	}
	return cache.NewPlanCache(store, client, cfg.Redis.PlanTTL, logger)
}
