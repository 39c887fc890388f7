package app

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/VladPetriv/listings_api/config"
	"github.com/VladPetriv/listings_api/internal/api/rest"
	"github.com/VladPetriv/listings_api/internal/migrations"
	"github.com/VladPetriv/listings_api/internal/models"
	"github.com/VladPetriv/listings_api/internal/service"
	"github.com/VladPetriv/listings_api/internal/store"
	"github.com/VladPetriv/listings_api/pkg/database"
	"github.com/VladPetriv/listings_api/pkg/logger"
)

// App holds the wired application: stores, services and the HTTP server.
type App struct {
	logger *logger.Logger
	db     *database.SQL
	server *rest.Server
}

// New wires the application from cfg. It migrates the SQL database and refuses
// to start when the default image is missing.
func New(ctx context.Context, cfg *config.Config, logger *logger.Logger) (*App, error) {
	db, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	app := &App{
		logger: logger,
		db:     db,
	}

	services, err := app.buildServices(ctx, cfg)
	if err != nil {
		_ = app.closeDatabase()
		return nil, err
	}

	app.server = rest.NewServer(rest.Options{
		Address:      cfg.Server.Address,
		FrontURL:     cfg.Server.FrontURL,
		MaxBodySize:  cfg.Server.MaxBodySize,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Services:     *services,
		Logger:       logger,
	})

	return app, nil
}

func (a *App) buildServices(ctx context.Context, cfg *config.Config) (*service.Services, error) {
	imageStore, err := store.NewImage(cfg.Images.Dir, models.ImageNaming(cfg.Images.Naming))
	if err != nil {
		return nil, fmt.Errorf("create image store: %w", err)
	}

	var itemStore service.ItemStore
	if a.db == nil {
		itemStore = store.NewItemFile(cfg.Store.ItemsFile)
	} else {
		itemStore = store.NewItem(a.db, store.NewCategory(a.db))
	}

	services := service.Services{
		Item: service.NewItem(a.logger, service.Stores{
			Item:  itemStore,
			Image: imageStore,
		}),
		Image: service.NewImage(a.logger, imageStore, cfg.Images.Default),
	}

	err = services.Image.CheckDefaultImage(ctx)
	if err != nil {
		return nil, fmt.Errorf("check default image: %w", err)
	}

	return &services, nil
}

// Serve accepts HTTP connections from ln until the app is closed.
func (a *App) Serve(ln net.Listener) error {
	return a.server.Serve(ln)
}

// Close stops the HTTP server and releases the database.
func (a *App) Close() error {
	return errors.Join(a.server.Shutdown(), a.closeDatabase())
}

func (a *App) closeDatabase() error {
	if a.db == nil {
		return nil
	}

	return a.db.Close()
}

// Run is used to start the application. It blocks until ctx is done or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, logger *logger.Logger) error {
	app, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address).
			Str("backend", cfg.Store.Backend).
			Msg("starting http server")
		serverErrors <- app.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		_ = app.Close()
		return err
	case <-ctx.Done():
		logger.Info().Msg("shutting down http server")
	}

	err = app.Close()
	if err != nil {
		return fmt.Errorf("close app: %w", err)
	}

	logger.Info().Msg("http server stopped")
	return nil
}

// Migrate applies pending migrations to the configured SQL database.
func Migrate(ctx context.Context, cfg *config.Config, logger *logger.Logger) error {
	if cfg.Store.Backend == config.BackendJSON {
		logger.Info().Msg("json store has no schema, nothing to migrate")
		return nil
	}

	db, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	return db.Close()
}

// openDatabase connects to and migrates the SQL database of cfg. It returns
// nil for the JSON backend.
func openDatabase(ctx context.Context, cfg *config.Config, logger *logger.Logger) (*database.SQL, error) {
	var (
		db     *database.SQL
		dbName string
		err    error
	)

	switch cfg.Store.Backend {
	case config.BackendJSON:
		return nil, nil
	case config.BackendSQLite:
		dbName = cfg.SQLite.Path
		db, err = database.NewSQLite(cfg.SQLite.Path)
	case config.BackendPostgres:
		dbName = cfg.Postgres.Database
		db, err = database.NewPostgreSQL(database.PostgreSQLOptions{
			User:         cfg.Postgres.User,
			Password:     cfg.Postgres.Password,
			Database:     cfg.Postgres.Database,
			Host:         cfg.Postgres.Host,
			Port:         cfg.Postgres.Port,
			SSLMode:      cfg.Postgres.SSLMode,
			MaxOpenConns: cfg.Postgres.MaxOpenConns,
		})
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("create database: %w", err)
	}

	err = db.Ping(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	err = migrations.MigrateDB(logger, db, dbName)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}
