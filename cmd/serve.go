package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"technews/internal/config"
	"technews/internal/handlers"
	"technews/internal/logger"
	"technews/internal/repository"
	"technews/internal/repository/db"
	"technews/internal/server"
	"technews/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Apply migrations and serve HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(a.v, cmd.Flags(), map[string]string{"port": config.KeyPort}); err != nil {
				return err
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringP("port", "p", "3000", "listen port (also PORT or TECHNEWS_PORT)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.Get(cfg.LogLevel)
	if cfg.LogLevel != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	conn, err := db.InitDB(ctx, cfg.DBPath)
	if err != nil {
		log.Errorw("failed to init sqlite", "err", err, "path", cfg.DBPath)
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, service.NewSessionCodec(cfg.Secret, cfg.SessionTTL))
	h := handlers.NewHandler(services, handlers.Options{
		CookieName:   cfg.CookieName,
		SecureCookie: cfg.SecureCookie,
		SessionTTL:   cfg.SessionTTL,
		StaticDir:    cfg.StaticDir,
	}, log)

	srv := server.New(cfg.Port, h.InitRoutes())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run() }()
	log.Infow("server_started", "addr", srv.Addr(), "db", cfg.DBPath, "secure_cookie", cfg.SecureCookie)

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			log.Errorw("server_failed", "err", err)
		}
		return err
	case <-sigCtx.Done():
	}

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
		return err
	}
	return <-errCh
}
