package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/clientdesk/client-management/internal/api"
	"github.com/clientdesk/client-management/internal/infrastructure/config"
	"github.com/clientdesk/client-management/internal/infrastructure/db/jsonfile"
	"github.com/clientdesk/client-management/pkg/logger"
)

// version can be overridden at build time via ldflags.
var version = "1.0.0"

// @title        Client Management API
// @version      1.0.0
// @description  CRUD service for client records persisted to a JSON file store.
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Service: "client-management-api",
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	repo, err := jsonfile.NewClientRepository(cfg.Store.ClientsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Store.ClientsFile).Msg("failed to open client store")
	}

	e := api.NewRouter(repo, version, cfg.RateLimit, log)

	// Start the server in a goroutine so the main goroutine can block on
	// shutdown signals.
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- e.Start(":" + cfg.Port)
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Str("store", cfg.Store.ClientsFile).Msg("server starting")

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-shutdown:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := e.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
			_ = e.Close()
		}
	}
}
