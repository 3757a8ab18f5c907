package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/shopease/helpdesk/internal/api/http"
	"github.com/shopease/helpdesk/internal/api/http/handlers"
	"github.com/shopease/helpdesk/internal/auth"
	"github.com/shopease/helpdesk/internal/config"
	"github.com/shopease/helpdesk/internal/events"
	"github.com/shopease/helpdesk/internal/observability"
	"github.com/shopease/helpdesk/internal/persistence"
	"github.com/shopease/helpdesk/internal/repository"
	"github.com/shopease/helpdesk/internal/service"
	"github.com/shopease/helpdesk/internal/worker"
)

// repositories bundles the Directory Store access used by the service.
type repositories struct {
	Customers     repository.CustomerRepository
	Agents        repository.AgentRepository
	Managers      repository.ManagerRepository
	Tickets       repository.TicketRepository
	Attachments   repository.AttachmentRepository
	AIResponses   repository.AIResponseRepository
	Notifications repository.NotificationRepository
}

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

	repos := buildRepositories(pg, logger)
	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg.Auth, repos.Customers)
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:     repos.Tickets,
		CustomerRepo:   repos.Customers,
		AgentRepo:      repos.Agents,
		AttachmentRepo: repos.Attachments,
		AIResponseRepo: repos.AIResponses,
		Dispatcher:     dispatcher,
	})
	customerService := service.NewCustomerService(repos.Customers)
	notificationService := service.NewNotificationService(repos.Notifications, redis, dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), repos.Customers)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Customers:      handlers.NewCustomersHandler(customerService),
		Notifications:  handlers.NewNotificationsHandler(repos.Notifications),
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

// buildRepositories selects the Postgres repositories when a pool is
// available and falls back to the in-memory store otherwise.
func buildRepositories(pg *persistence.Postgres, logger *zap.Logger) repositories {
	pool := pg.PoolHandle()
	if pool == nil {
		logger.Warn("running with in-memory store; data will not survive restarts")
		store := repository.NewMemoryStore()
		return repositories{
			Customers:     store.Customers(),
			Agents:        store.Agents(),
			Managers:      store.Managers(),
			Tickets:       store.Tickets(),
			Attachments:   store.Attachments(),
			AIResponses:   store.AIResponses(),
			Notifications: store.Notifications(),
		}
	}
	return repositories{
		Customers:     repository.NewCustomerRepository(pool),
		Agents:        repository.NewAgentRepository(pool),
		Managers:      repository.NewManagerRepository(pool),
		Tickets:       repository.NewTicketRepository(pool),
		Attachments:   repository.NewAttachmentRepository(pool),
		AIResponses:   repository.NewAIResponseRepository(pool),
		Notifications: repository.NewNotificationRepository(pool),
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
