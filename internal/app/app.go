package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/django-nerd/ulin/internal/config"
	"github.com/django-nerd/ulin/internal/handler"
	"github.com/django-nerd/ulin/internal/middleware"
	"github.com/django-nerd/ulin/internal/notification"
	"github.com/django-nerd/ulin/internal/router"
	"github.com/django-nerd/ulin/internal/service"
	"github.com/django-nerd/ulin/internal/service/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/logger"
)

type documentStore interface {
	ports.DocumentStore
	Close() error
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	store      documentStore
	bookings   *service.BookingService
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"Ulin",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStore(context.Background()); err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	// без хранилища сервисы отвечают "database not configured"
	var store ports.DocumentStore
	if a.store != nil {
		store = a.store
	}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	listingService := service.NewListingService(store, a.log)
	bookingService := service.NewBookingService(store, n, a.log)
	a.bookings = bookingService
	statusService := service.NewStatusService(store, a.log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg)

	h := handler.NewHandler(listingService, bookingService, statusService, handler.Options{
		ExposeInternalErrors: a.cfg.Server.ExposeInternalErrors,
	})
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.CORS(middleware.ParseOrigins(a.cfg.CORS.AllowedOrigins), a.cfg.CORS.AllowCredentials),
		metrics.Middleware(),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var runErr error
	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case runErr = <-a.serve():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	return errors.Join(runErr, a.shutdown(shutdownCtx))
}

// serve запускает HTTP-сервер в фоне. Канал получает ошибку, если сервер
// остановился сам.
func (a *App) serve() <-chan error {
	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()
	return errCh
}

// shutdown: сначала перестаём принимать запросы, затем ждём уведомления о
// бронях и только потом закрываем хранилище.
func (a *App) shutdown(ctx context.Context) error {
	var errs []error

	if err := a.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
	}

	if err := a.bookings.Wait(ctx); err != nil {
		a.log.LogAttrs(ctx, logger.WarnLevel, "booking notifications cut off")
		errs = append(errs, fmt.Errorf("pending notifications: %w", err))
	}

	if a.store != nil {
		if err := a.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close store: %w", err))
		}
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return errors.Join(errs...)
}
