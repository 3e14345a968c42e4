package app

import (
	"context"
	"fmt"

	"github.com/django-nerd/ulin/internal/config"
	"github.com/django-nerd/ulin/internal/repository/mongodb"
	"github.com/django-nerd/ulin/internal/repository/postgres"
	"github.com/django-nerd/ulin/internal/repository/sqlite"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

// initStore открывает хранилище документов. Пустой DATABASE_URL не ошибка:
// приложение стартует без хранилища.
func (a *App) initStore(ctx context.Context) error {
	switch a.cfg.Storage.Driver {
	case config.DriverMongo:
		return a.initMongo(ctx)
	case config.DriverPostgres:
		return a.initPostgres(ctx)
	case config.DriverSQLite:
		return a.initSQLite()
	default:
		return fmt.Errorf("unknown storage driver %q", a.cfg.Storage.Driver)
	}
}

func (a *App) initMongo(ctx context.Context) error {
	if !a.cfg.Mongo.Configured() {
		a.log.Warn("DATABASE_URL is empty, running without a document store")
		return nil
	}

	store, err := mongodb.New(ctx, a.cfg.Mongo.URI, a.cfg.Mongo.Database, a.cfg.Mongo.ConnectTimeout)
	if err != nil {
		return err
	}
	a.store = store

	pingCtx, cancel := context.WithTimeout(ctx, a.cfg.Mongo.ConnectTimeout)
	defer cancel()

	if err := store.Ping(pingCtx); err != nil {
		a.log.LogAttrs(ctx, logger.WarnLevel, "mongo not reachable yet",
			logger.String("database", a.cfg.Mongo.Database),
			logger.String("error", err.Error()),
		)
		return nil
	}

	a.log.LogAttrs(ctx, logger.InfoLevel, "mongo connected",
		logger.String("database", a.cfg.Mongo.Database),
	)
	return nil
}

func (a *App) initPostgres(ctx context.Context) error {
	dsn := a.cfg.Postgres.DSN()

	if err := postgres.Migrate(dsn); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	a.log.Info("migrations applied successfully")

	store, err := postgres.New(dsn, &dbpg.Options{
		MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
		MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
	})
	if err != nil {
		return err
	}

	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return fmt.Errorf("pinging database: %w", err)
	}
	a.store = store

	a.log.LogAttrs(ctx, logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)
	return nil
}

func (a *App) initSQLite() error {
	store, err := sqlite.New(a.cfg.SQLite.Path)
	if err != nil {
		return err
	}
	a.store = store

	a.log.Info("sqlite store opened", logger.String("path", a.cfg.SQLite.Path))
	return nil
}
