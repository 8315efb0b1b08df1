package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/api-sage/virtual-teller/src/internal/adapter/http/controller"
	"github.com/api-sage/virtual-teller/src/internal/adapter/http/router"
	"github.com/api-sage/virtual-teller/src/internal/adapter/repository/memory"
	"github.com/api-sage/virtual-teller/src/internal/config"
	"github.com/api-sage/virtual-teller/src/internal/logger"
	"github.com/api-sage/virtual-teller/src/internal/usecase/services"
	"go.uber.org/zap"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("load environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if _, err := logger.Init(logger.Options{Level: cfg.LogLevel, Development: !cfg.IsProduction()}); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ledgerRepo := memory.NewLedgerRepository()
	ledgerService := services.NewLedgerService(ledgerRepo)

	handler := router.New(
		router.Options{AllowedOrigins: cfg.CORSAllowedOrigins, TrustProxyHeaders: cfg.TrustProxyHeaders},
		controller.NewHomeController(),
		controller.NewAccountController(ledgerService),
		controller.NewTransferController(ledgerService),
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ErrorLog:          zap.NewStdLog(logger.L()),
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", logger.Fields{"addr": cfg.Addr(), "environment": cfg.AppEnv})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("server failed", err, logger.Fields{"addr": cfg.Addr()})
			_ = logger.Sync()
			os.Exit(1)
		}
		return
	case sig := <-quit:
		logger.Info("shutting down server", logger.Fields{"signal": sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", err, nil)
		return
	}

	logger.Info("server exited", nil)
}
