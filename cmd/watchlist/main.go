package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	httpctx "github.com/dracula-tv/media-backend/internal/api/http/context"
	"github.com/dracula-tv/media-backend/internal/api/http/router"
	httpserver "github.com/dracula-tv/media-backend/internal/api/http/server"
	"github.com/dracula-tv/media-backend/internal/app"
	"github.com/dracula-tv/media-backend/internal/config"
	"github.com/dracula-tv/media-backend/internal/logger"
	"github.com/dracula-tv/media-backend/internal/repository/postgres"
	"github.com/dracula-tv/media-backend/internal/server"
	"github.com/dracula-tv/media-backend/internal/service"
	"github.com/dracula-tv/media-backend/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel).With("service", "watchlist")

	if cfg.JWT.Secret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	watchlistService := service.NewWatchlist(postgres.NewWatchlistRepository(db.DB), logger)

	gin.SetMode(gin.ReleaseMode)
	r := router.New(token.NewJWT(cfg.JWT.Secret), httpctx.NewManager(), cfg.CORS.AllowedOrigins, logger)
	r.SetHealthCheck(db.Ping)
	httpServer := httpserver.NewHTTPServer(
		r.Watchlist(watchlistService),
		cfg.HTTP.ListenAddr(":8002"),
		cfg.HTTP.ReadTimeout,
		cfg.HTTP.WriteTimeout,
	)

	logAppVersion()

	app.Run(ctx, logger, httpServer, server.NewSecurityLayer(cfg.HTTP))
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
