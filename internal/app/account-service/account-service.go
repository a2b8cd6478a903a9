// Package accountservice собирает основное HTTP-приложение сервиса аккаунтов:
// хранилище, миграции, кэш, брокер, бизнес-логику и маршруты.
package accountservice

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/account-service/internal/cache"
	"github.com/magabrotheeeer/account-service/internal/config"
	"github.com/magabrotheeeer/account-service/internal/lib/jwt"
	"github.com/magabrotheeeer/account-service/internal/lib/token"
	"github.com/magabrotheeeer/account-service/internal/migrations"
	"github.com/magabrotheeeer/account-service/internal/rabbitmq"
	cleanupservice "github.com/magabrotheeeer/account-service/internal/services/cleanup"
	eventsservice "github.com/magabrotheeeer/account-service/internal/services/events"
	userservice "github.com/magabrotheeeer/account-service/internal/services/user"
	"github.com/magabrotheeeer/account-service/internal/storage/repository"
)

type App struct {
	server  *http.Server
	cleanup *cleanupservice.Service
	db      *repository.Storage
	conn    *amqp.Connection
	ch      *amqp.Channel
	logger  *slog.Logger
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}
	if err = repository.CheckDatabaseReady(db); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.AddressRabbit, cfg.ConnectRetries, cfg.ConnectDelay)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.Queues)
	if err != nil {
		conn.Close()
		return nil, err
	}

	emailTokens := token.NewMaker(cfg.EmailTokens.SecretKey)
	sessions := jwt.NewJWTMaker(cfg.Session.JWTSecretKey, cfg.Session.TokenTTL)
	eventPublisher := eventsservice.NewPublisher(ch, emailTokens, cfg.BaseURL)

	userService := userservice.New(db, emailTokens, sessions, eventPublisher,
		cacheRedis, cfg.EmailTokens, logger)
	cleanupService := cleanupservice.New(db, cfg.Cleanup, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, userService, sessions)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:  srv,
		cleanup: cleanupService,
		db:      db,
		conn:    conn,
		ch:      ch,
		logger:  logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	go a.cleanup.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.ch.Close(); cerr != nil {
			a.logger.Error("failed to close channel", slog.Any("err", cerr))
		}
		if cerr := a.conn.Close(); cerr != nil {
			a.logger.Error("failed to close connection", slog.Any("err", cerr))
		}
		a.db.DB.Close()
		return err
	}
}
