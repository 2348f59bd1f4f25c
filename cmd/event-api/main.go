package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusapi/internal/config"
	"campusapi/internal/http-server/router"
	"campusapi/internal/lib/eventid"
	"campusapi/internal/lib/logger"
	"campusapi/internal/lib/logger/sl"
	"campusapi/internal/models"
	"campusapi/internal/storage/jsonfile"
	"campusapi/internal/storage/records"
	"campusapi/internal/storage/setup"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad(
		config.DefaultStoragePath("data/events.json"),
		config.PortFromEnv("PORT"),
	)

	log := logger.New(cfg.Env, os.Stdout)

	log.Info("starting event api",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
	)
	log.Debug("debug messages are enabled")

	backend, closer, err := setup.Open[models.Event](cfg, "events", jsonfile.WithCreateIfMissing())
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	handler := router.Events(log, records.New[models.Event](backend), eventid.New(), reg)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address()))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	if err = closer.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("application stopped")
}
