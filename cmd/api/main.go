package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/chm-desk/helpdesk/internal/api/http"
	"github.com/chm-desk/helpdesk/internal/api/http/handlers"
	"github.com/chm-desk/helpdesk/internal/config"
	"github.com/chm-desk/helpdesk/internal/events"
	"github.com/chm-desk/helpdesk/internal/notify"
	"github.com/chm-desk/helpdesk/internal/observability"
	"github.com/chm-desk/helpdesk/internal/session"
	"github.com/chm-desk/helpdesk/internal/sla"
	"github.com/chm-desk/helpdesk/internal/store"
	"github.com/chm-desk/helpdesk/internal/worker"
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

	metrics := observability.NewMetrics()
	dispatcher := events.NewMemoryBus()
	toasts := notify.NewToaster(cfg.Toast.TTL(), logger)
	sessions := session.NewManager(cfg.Session, logger)

	ticketStore := store.New(store.Dependencies{
		Logger:     logger,
		Dispatcher: dispatcher,
		Identity:   sessions,
		Metrics:    metrics,
	})
	if cfg.Seed.LoadFixtures {
		ticketStore.Seed(store.Fixtures(time.Now()))
		logger.Info("fixtures loaded", zap.Int("tickets", len(ticketStore.List())))
	}

	relay := worker.NewToastRelay(dispatcher, toasts, logger)
	relay.RegisterHandlers()

	monitor := sla.NewMonitor(ticketStore, dispatcher, logger, cfg.SLA.MonitorInterval())
	go monitor.Run(ctx)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, toasts, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, ticketStore),
		Session:       handlers.NewSessionHandler(sessions),
		Tickets:       handlers.NewTicketsHandler(ticketStore),
		Analytics:     handlers.NewAnalyticsHandler(ticketStore),
		Notifications: handlers.NewNotificationsHandler(toasts),
		Middleware:    session.NewMiddleware(sessions.Tokens()),
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
