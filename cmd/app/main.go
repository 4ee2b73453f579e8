package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"depot/cmd"
	httpadapter "depot/internal/adapters/in/http"
	"depot/internal/adapters/out/memory"
	"depot/internal/core/domain/model/depot"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := cmd.NewLogger(configs)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}

	if err = run(configs, logger); err != nil {
		logger.Error("Application stopped with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}

	_ = logger.Sync()
}

func run(configs cmd.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := depot.NewDepot()
	if configs.SeedDemoData {
		if err := cmd.SeedDemoData(d); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
		logger.Info("Demo data loaded")
	}

	store, err := memory.NewStore(d)
	if err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(configs, store, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs.HTTPPort, logger)
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *zap.Logger) error {
	apiDoc, err := httpadapter.LoadAPIDoc(ctx)
	if err != nil {
		return err
	}

	server := httpadapter.NewServer(app.CreateHTTPHandlers(), apiDoc, logger)
	e := httpadapter.NewEcho(server, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("port", port))
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
