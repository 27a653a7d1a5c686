package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "heating_leads/docs"
	"heating_leads/internal/config"
	"heating_leads/internal/handlers"
	"heating_leads/internal/logger"
	"heating_leads/internal/repository"
	"heating_leads/internal/repository/db"
	"heating_leads/internal/server"
	"heating_leads/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configDir)
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}
}

func serve(cfg *config.Config) error {
	log := logger.Get(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	conn, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("init sqlite: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	sessions, closeStore, err := openSessionStore(cfg, conn)
	if err != nil {
		return err
	}
	defer closeStore()
	log.Infow("session_store_ready", "store", cfg.Session.Store, "ttl", cfg.Session.TTL)

	if cfg.Auth.SigningKey == "" {
		log.Warnw("auth.signing_key is empty; journal endpoints will reject every token")
	}

	repos := repository.NewRepository(conn, sessions)
	services := service.NewService(repos, log, service.Options{
		SessionTTL: cfg.Session.TTL,
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
	})
	apiHandler := handlers.NewHandler(services, log, handlers.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateLimit:      cfg.RateLimit.RPS,
		Burst:          cfg.RateLimit.Burst,
		AllowSignUp:    cfg.Auth.AllowSignUp,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go services.Janitor.Run(ctx, cfg.Session.JanitorInterval)

	srv := &server.Server{}
	errc := make(chan error, 1)
	go func() {
		log.Infow("http_listening", "port", cfg.Port)
		errc <- srv.Run(cfg.Port, apiHandler.InitRoutes())
	}()

	return waitForShutdown(cancel, srv, errc, log)
}

// openSessionStore picks the configured session backend. The returned func
// releases resources the store owns.
func openSessionStore(cfg *config.Config, conn *sql.DB) (repository.SessionRepo, func(), error) {
	noop := func() {}
	switch cfg.Session.Store {
	case config.StoreSQLite:
		return repository.NewSessionSQLite(conn), noop, nil
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("connect redis at %s: %w", cfg.Redis.Addr, err)
		}
		return repository.NewSessionRedis(client, cfg.Session.TTL), func() { _ = client.Close() }, nil
	default:
		return repository.NewSessionMemory(), noop, nil
	}
}

// waitForShutdown blocks until a termination signal or a server failure,
// then stops background work and drains in-flight requests.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, errc <-chan error, log *logger.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		log.Infow("shutting down server...")
	case err := <-errc:
		cancel()
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return <-errc
}
