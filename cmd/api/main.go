package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/acest-fitness/gym-service/internal/api/http"
	"github.com/acest-fitness/gym-service/internal/api/http/handlers"
	"github.com/acest-fitness/gym-service/internal/auth"
	"github.com/acest-fitness/gym-service/internal/config"
	"github.com/acest-fitness/gym-service/internal/events"
	"github.com/acest-fitness/gym-service/internal/observability"
	"github.com/acest-fitness/gym-service/internal/persistence"
	"github.com/acest-fitness/gym-service/internal/repository"
	"github.com/acest-fitness/gym-service/internal/service"
	"github.com/acest-fitness/gym-service/internal/tracker"
	"github.com/acest-fitness/gym-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if pg.Enabled() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	catalog := repository.DefaultCatalog()
	if cfg.Catalog.Source == config.CatalogSourcePostgres {
		catalog, err = repository.LoadCatalog(ctx, pg.PoolHandle())
		if err != nil {
			logger.Fatal("failed to load catalog", zap.Error(err))
		}
	}
	logger.Info("catalog ready", zap.String("source", cfg.Catalog.Source))

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var limiter auth.LoginLimiter = auth.NoopLimiter{}
	if redis.Enabled() {
		limiter = auth.NewRedisLoginLimiter(redis.Client, cfg.Auth.LoginMaxFailures, cfg.Auth.LoginWindow())
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger))

	verifier, err := auth.NewStaticVerifier(cfg.Auth.AdminUsername, cfg.Auth.AdminPassword, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to init credentials", zap.Error(err))
	}
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authService := service.NewAuthService(service.AuthDependencies{
		Verifier:     verifier,
		TokenManager: tokens,
		Limiter:      limiter,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})

	homeHandler, err := handlers.NewHomeHandler()
	if err != nil {
		logger.Fatal("failed to render home page", zap.Error(err))
	}

	metrics := observability.NewMetrics("gym")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httptransport.ErrorHandler(logger),
	})
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:    logger,
		Metrics:   metrics,
		Timeout:   cfg.App.RequestTimeout(),
		RateLimit: cfg.RateLimit,
	})
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}),
		Home:           homeHandler,
		Catalog:        handlers.NewCatalogHandler(catalog),
		Fitness:        handlers.NewFitnessHandler(),
		Auth:           handlers.NewAuthHandler(authService),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager()),
		Metrics:        metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	if cfg.RunTracker() {
		go runTracker(ctx, cfg.Tracker, logger.Named("tracker"))
	}

	waitForShutdown(logger)
	cancel()

	if err := app.Shutdown(); err != nil {
		logger.Warn("fiber shutdown", zap.Error(err))
	}
}

// runTracker serves the workout log on the terminal until stdin closes or ctx ends.
func runTracker(ctx context.Context, cfg config.TrackerConfig, logger *zap.Logger) {
	db, err := persistence.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		logger.Error("failed to open workout log", zap.String("path", cfg.DBPath), zap.Error(err))
		return
	}
	defer db.Close()

	store, err := tracker.NewStore(ctx, db)
	if err != nil {
		logger.Error("failed to prepare workout log", zap.Error(err))
		return
	}

	if err := tracker.NewConsole(store, os.Stdin, os.Stdout, logger).Run(ctx); err != nil {
		logger.Error("workout log stopped", zap.Error(err))
		return
	}
	logger.Info("workout log closed")
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
