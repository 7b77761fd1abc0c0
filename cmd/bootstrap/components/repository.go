package components

import (
	"escape-booking/internal/infra/cache"
	"escape-booking/internal/infra/db"
	"escape-booking/internal/infra/readstore"
	"escape-booking/internal/infra/uow"
	"escape-booking/internal/pkg/config"
	"escape-booking/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("repository/readstore",
	fx.Provide(
		NewPropertyReadStore,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(shared.BookingReadStore)),
		),
	),
)

var repositoryModule = fx.Module("repository/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

// NewPropertyReadStore puts the Redis cache in front of PostgreSQL when a client is configured.
func NewPropertyReadStore(dbtx db.DBTX, client *redis.Client, cfg config.Config) shared.PropertyReadStore {
	store := readstore.NewPropertyReadStore(dbtx)
	if client == nil {
		return store
	}
	return cache.NewPropertyCache(client, store, cfg.Redis.PropertyTTL)
}
