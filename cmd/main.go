package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	httpctx "github.com/dtroode/bookshelf-server/internal/api/http/context"
	"github.com/dtroode/bookshelf-server/internal/api/http/handler"
	"github.com/dtroode/bookshelf-server/internal/api/http/middleware"
	"github.com/dtroode/bookshelf-server/internal/api/http/router"
	httpServer "github.com/dtroode/bookshelf-server/internal/api/http/server"
	"github.com/dtroode/bookshelf-server/internal/config"
	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
	"github.com/dtroode/bookshelf-server/internal/password"
	"github.com/dtroode/bookshelf-server/internal/repository/document"
	"github.com/dtroode/bookshelf-server/internal/service"
	"github.com/dtroode/bookshelf-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookshelf-server",
		Short: "Book catalog HTTP API",
		Long: `bookshelf-server serves a multi-user book catalog over HTTP.
Configuration is read from environment variables.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Print(appVersion())
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := logger.New(cfg.LogLevel)

	if cfg.UsesDevSecret() {
		logger.Warn("JWT_SECRET is not set, using the development secret; never run like this in production")
	}

	store, closeStore, err := openDocumentStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", "mode", cfg.Storage.Mode, "error", err)
	}
	defer closeStore()

	if _, err := store.Load(ctx); err != nil {
		logger.Fatal("failed to load catalog document", "mode", cfg.Storage.Mode, "error", err)
	}

	userRepo := document.NewUserRepository(store)
	bookRepo := document.NewBookRepository(store)
	tokenManager := token.NewJWT(cfg.JWT.Secret, token.WithTTL(cfg.JWT.TTL))
	hasher := password.NewBcrypt(cfg.Password.Cost)

	tokenService := service.NewTokenService(tokenManager, logger)
	authService := service.NewAuth(userRepo, hasher, tokenService, logger)
	bookService := service.NewBook(bookRepo, logger)
	ctxMgr := httpctx.NewManager()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	apiHandler := router.New(router.Dependencies{
		Auth:         handler.NewAuth(authService, ctxMgr, logger),
		Book:         handler.NewBook(bookService, ctxMgr, logger),
		Authenticate: middleware.NewAuthenticate(tokenService, ctxMgr, logger),
		Registry:     registry,
		Logger:       logger,
	})
	server := httpServer.NewHTTPServer(apiHandler, fmt.Sprintf(":%d", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = httpServer.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = httpServer.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "storage", cfg.Storage.Mode, "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			cancel()
		}
	}(server)

	logger.Info("build info", "version", buildVersion, "date", buildDate, "commit", buildCommit)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", server.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")

	return nil
}

func appVersion() string {
	tmpl := `Build version: %s
Build date: %s
Build commit: %s
`
	return fmt.Sprintf(tmpl, buildVersion, buildDate, buildCommit)
}
