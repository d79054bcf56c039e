package app

import (
	"context"

	"github.com/jhoicas/store-admin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/store-admin-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/store-admin-api/internal/infrastructure/sqlstore"
	"github.com/jhoicas/store-admin-api/pkg/config"
	"github.com/jhoicas/store-admin-api/pkg/logger"
)

// OpenDatabase abre el driver configurado y aplica migraciones si DB_MIGRATE=true.
func OpenDatabase(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (sqlstore.DB, sqlstore.Dialect, func(), error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, sqlstore.Dialect{}, nil, err
		}
		if cfg.Migrate {
			applied, err := sqlite.Migrate(ctx, db)
			if err != nil {
				_ = db.Close()
				return nil, sqlstore.Dialect{}, nil, err
			}
			log.Info().Strs("migrations", applied).Str("path", cfg.SQLitePath).Msg("sqlite lista")
		}
		return db, sqlite.Dialect, func() { _ = db.Close() }, nil
	default:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, sqlstore.Dialect{}, nil, err
		}
		db := postgres.NewDB(pool)
		if cfg.Migrate {
			applied, err := postgres.Migrate(ctx, db)
			if err != nil {
				pool.Close()
				return nil, sqlstore.Dialect{}, nil, err
			}
			log.Info().Strs("migrations", applied).Str("db", postgres.Describe(cfg)).Msg("postgres lista")
		}
		return db, postgres.Dialect, pool.Close, nil
	}
}
