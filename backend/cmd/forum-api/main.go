package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forumapi/forum-api/backend/internal/router"
	"github.com/forumapi/forum-api/backend/internal/setup"
	"github.com/forumapi/forum-api/shared/config"
	"github.com/forumapi/forum-api/shared/logger"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := setup.SetupDependencies(ctx, cfg)
	if err != nil {
		logger.Log.Error("failed to setup dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Public.Http.Port),
		Handler:      router.New(deps),
		ReadTimeout:  cfg.Public.Http.ReadTimeout,
		WriteTimeout: cfg.Public.Http.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Log.Info("server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Log.Error("http server error", "error", err)
		}
	case <-ctx.Done():
		logger.Log.Info("shutting down")
	}

	timeout := cfg.Public.Http.ShutdownTimeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("graceful shutdown failed", "error", err)
	}
}
