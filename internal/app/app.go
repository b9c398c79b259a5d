package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/db"
	"github.com/highvale/orchard-backend/internal/observability"
	"github.com/highvale/orchard-backend/internal/pkg/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Clients  Clients
	Services Services

	otelShutdown func(context.Context) error
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading configuration...")
	cfg := LoadConfig(log)

	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "orchard-backend",
		Environment: cfg.Environment,
		Version:     cfg.Version,
	})

	store, err := db.NewStoreService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init store: %w", err)
	}
	if err := store.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	theDB := store.DB()

	clientset, err := wireClients(log)
	if err != nil {
		log.Sync()
		return nil, err
	}

	reposet := wireRepos(theDB, log)

	serviceset, err := wireServices(theDB, log, cfg, reposet, clientset)
	if err != nil {
		log.Sync()
		return nil, err
	}

	if err := serviceset.Variety.SeedFromFile(context.Background(), cfg.VarietiesPath); err != nil {
		log.Warn("Could not seed variety knowledge base", "error", err)
	}
	if err := serviceset.Rotation.SeedFromFile(context.Background(), cfg.RotationsPath); err != nil {
		log.Warn("Could not seed rotation knowledge base", "error", err)
	}

	handlerset := wireHandlers(serviceset)
	middlewareset := wireMiddleware(log, serviceset)
	router := wireRouter(cfg, handlerset, middlewareset)

	return &App{
		Log:          log,
		DB:           theDB,
		Router:       router,
		Cfg:          cfg,
		Repos:        reposet,
		Clients:      clientset,
		Services:     serviceset,
		otelShutdown: otelShutdown,
	}, nil
}

func (a *App) Run(addr string) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(context.Background()); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	if a.Clients.TokenStore != nil {
		if err := a.Clients.TokenStore.Close(); err != nil {
			a.Log.Warn("redis close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
