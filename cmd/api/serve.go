package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	eventsHttp "calendar-events/internal/events/adapters/http/fiber"
	eventsUsecase "calendar-events/internal/events/core/usecase"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	c, log, err := loadRuntime()
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"version": c.BuildVersion,
		"commit":  c.BuildHash,
		"built":   c.BuildTime,
	}).Info("starting calendar-events")

	// Repository
	eventRepository, closeStore, err := openStore(c, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.WithError(err).Warn("failed to close store")
		}
	}()

	// Usecase
	eventUC := eventsUsecase.NewEventUseCase(eventRepository, log)

	// HTTP (Fiber) app + handlers
	app := eventsHttp.NewApp(eventsHttp.AppConfig{
		AllowedOrigins: c.AllowedOrigins(),
		EnableDocs:     true,
	}, log, eventsHttp.NewEventHandler(eventUC))

	// Graceful shutdown
	srvErr := make(chan error, 1)
	go func() {
		srvErr <- app.Listen(c.Addr())
	}()

	log.WithField("addr", c.Addr()).Info("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-srvErr:
		if err != nil {
			log.WithError(err).Error("fiber stopped")
			return err
		}
		return nil
	case <-quit:
	}

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.WithError(err).Error("fiber shutdown error")
	}

	log.Info("server exiting")
	return nil
}
