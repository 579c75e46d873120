package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finca-lechera/internal/adapters/seed"
	pg "finca-lechera/internal/adapters/storage/postgres"
	"finca-lechera/internal/platform/env"
	"finca-lechera/internal/platform/logger"
	"finca-lechera/internal/router"
)

// @title Finca Lechera API
// @version 1.0
// @description Registro de animales y producción de leche.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	if err := run(log); err != nil {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}

func run(log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + env.String("PORT", "8080")
	shutdownTimeout, err := env.Duration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return err
	}

	dbCfg, err := pg.ConfigFromEnv()
	if err != nil {
		return err
	}

	swagger, err := env.Bool("SWAGGER_ENABLED", true)
	if err != nil {
		return err
	}

	opts := router.Options{Logger: log, DisableSwagger: !swagger}

	// Sin DATABASE_URL => modo dev in-memory
	if dbCfg.Enabled() {
		db, err := pg.Open(ctx, dbCfg)
		if err != nil {
			return err
		}
		defer db.Close()
		opts.DB = db
	}

	if path := env.String("ANIMALES_SEED_FILE", ""); path != "" {
		items, err := seed.LoadFile(path)
		if err != nil {
			return err
		}
		opts.Seed = items
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           router.NewRouter(opts),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", map[string]any{"addr": addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
