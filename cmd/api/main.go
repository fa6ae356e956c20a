package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/victoreder/admin-hublabel-sub000/internal/api/http"
	"github.com/victoreder/admin-hublabel-sub000/internal/api/http/handlers"
	"github.com/victoreder/admin-hublabel-sub000/internal/auth"
	"github.com/victoreder/admin-hublabel-sub000/internal/automation"
	"github.com/victoreder/admin-hublabel-sub000/internal/config"
	"github.com/victoreder/admin-hublabel-sub000/internal/events"
	"github.com/victoreder/admin-hublabel-sub000/internal/mail"
	"github.com/victoreder/admin-hublabel-sub000/internal/observability"
	"github.com/victoreder/admin-hublabel-sub000/internal/persistence"
	"github.com/victoreder/admin-hublabel-sub000/internal/repository"
	"github.com/victoreder/admin-hublabel-sub000/internal/service"
	"github.com/victoreder/admin-hublabel-sub000/internal/storage"
	"github.com/victoreder/admin-hublabel-sub000/internal/worker"
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

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	installationRepo := repository.NewInstallationRepository(pool)
	clientRepo := repository.NewClientRepository(pool)
	versionRepo := repository.NewVersionRepository(pool)
	saleRepo := repository.NewSaleRepository(pool)
	operatorRepo := repository.NewOperatorRepository(pool)

	blobStore := storage.NewClient(cfg.Storage, logger)
	mailer := mail.NewClient(cfg.Mail)
	dispatcher := events.NewInMemoryDispatcher()

	installationService := service.NewInstallationService(service.InstallationDependencies{
		InstallationRepo: installationRepo,
		Store:            blobStore,
		Dispatcher:       dispatcher,
		Logger:           logger,
		SLAWindow:        cfg.SLA.Window(),
	})
	clientService := service.NewClientService(clientRepo)
	versionService := service.NewVersionService(versionRepo)
	saleService := service.NewSaleService(saleRepo)
	authService := service.NewAuthService(cfg.Auth, operatorRepo)
	notificationService := service.NewNotificationService(dispatcher, mailer, logger, cfg.Mail)
	lookupService := automation.NewLookupService(cfg.Automation, redis.Client, logger)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), operatorRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Installations:  handlers.NewInstallationsHandler(installationService, blobStore),
		Clients:        handlers.NewClientsHandler(clientService),
		Versions:       handlers.NewVersionsHandler(versionService),
		Sales:          handlers.NewSalesHandler(saleService),
		Mail:           handlers.NewMailHandler(mailer, logger),
		Automation:     handlers.NewAutomationHandler(lookupService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
