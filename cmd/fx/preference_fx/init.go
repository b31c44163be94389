package preference_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"trippy/internal/api/controllers"
	"trippy/internal/config"
	"trippy/internal/infra"
	"trippy/internal/repositories"
	"trippy/internal/services"
)

var Module = fx.Provide(
	provideRepository,
	services.NewPreferenceService,
	controllers.NewPreferenceController,
)

// provideRepository connects only the backend named by PREFERENCE_STORE.
func provideRepository(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (repositories.PreferenceRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ExternalAPITimeout)
	defer cancel()

	switch cfg.PreferenceStore {
	case config.StorePostgres:
		db, err := infra.InitPostgresql(cfg.PostgresURL, logger)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{OnStop: func(context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		}})
		return repositories.NewPreferenceRepository(db), nil

	case config.StoreRedis:
		rdb, err := infra.InitRedis(ctx, cfg.RedisURL, logger)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{OnStop: func(context.Context) error {
			return rdb.Close()
		}})
		return repositories.NewRedisPreferenceRepository(rdb), nil

	case config.StoreMongo:
		client, err := infra.InitMongo(ctx, cfg.MongoURL, logger)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		}})
		return repositories.NewMongoPreferenceRepository(client.Database(cfg.MongoDatabase)), nil

	default:
		return nil, fmt.Errorf("unsupported preference store: %s", cfg.PreferenceStore)
	}
}
