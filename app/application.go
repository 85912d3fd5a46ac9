// Package app wires configuration, storage, the provider client and the HTTP
// server into a runnable application.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"skycast.app/api"
	"skycast.app/config"
	"skycast.app/database"
	"skycast.app/providers"
	"skycast.app/repository"
	"skycast.app/service"
	"skycast.app/store"
)

// Application holds the composed dependencies of the service.
type Application struct {
	config *config.Config
	db     *gorm.DB
	server *api.Server
}

// NewApplication builds the full dependency graph from environment
// configuration.
func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	cacheStore, err := buildCacheStore(cfg, db)
	if err != nil {
		return nil, err
	}

	provider := providers.NewOpenMeteoClient(&cfg.Provider)
	directory := repository.NewCityRepository(db)
	ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute

	weatherService := service.NewWeatherService(provider, directory, cacheStore, ttl, cfg.Cache.Backend)
	server := api.NewServer(cfg, weatherService)

	slog.Info("application wired", "cache_backend", cfg.Cache.Backend, "ttl_minutes", cfg.Cache.TTLMinutes)

	return &Application{
		config: cfg,
		db:     db,
		server: server,
	}, nil
}

func buildCacheStore(cfg *config.Config, db *gorm.DB) (store.Store, error) {
	switch cfg.Cache.Backend {
	case "redis":
		return store.NewRedisStore(&cfg.Cache)
	case "memory":
		return store.NewMemoryStore(), nil
	default:
		return store.NewGormStore(db), nil
	}
}

// Config exposes the loaded configuration.
func (a *Application) Config() *config.Config {
	return a.config
}

// Start runs the HTTP server and blocks until it stops.
func (a *Application) Start() error {
	return a.server.Start()
}

// Shutdown releases held resources.
func (a *Application) Shutdown() error {
	return database.CloseDB(a.db)
}
