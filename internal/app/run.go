package app

import (
	"context"
	"sync"
	"time"

	"github.com/dracula-tv/media-backend/internal/logger"
	"github.com/dracula-tv/media-backend/internal/model"
)

const shutdownTimeout = 10 * time.Second

// Run serves s until ctx is cancelled, then shuts it down gracefully.
func Run(ctx context.Context, logger *logger.Logger, s model.Server, sl model.SecurityLayer) {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := s.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", s.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}
