package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/meron6/authsvc/internal/config"
)

// Run wires the engine and keeps it alive until the process is told to
// stop. Transport is the embedding caller's concern; the service exposes
// the container's AuthSvc and credential helpers, nothing more.
func Run(cfg *config.Config) error {
	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if container.RedisClient != nil {
		if err := container.RedisClient.Ping(context.Background()).Err(); err != nil {
			return err
		}
	}

	container.Logger.Info("auth service ready",
		"session_backend", cfg.SessionBackend,
		"session_duration", cfg.SessionDuration.String())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	container.Logger.Info("shutting down")
	return nil
}
