package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "github.com/dracula-tv/media-backend/internal/api/http/context"
	"github.com/dracula-tv/media-backend/internal/api/http/router"
	httpserver "github.com/dracula-tv/media-backend/internal/api/http/server"
	"github.com/dracula-tv/media-backend/internal/app"
	"github.com/dracula-tv/media-backend/internal/config"
	"github.com/dracula-tv/media-backend/internal/logger"
	"github.com/dracula-tv/media-backend/internal/model"
	"github.com/dracula-tv/media-backend/internal/password"
	"github.com/dracula-tv/media-backend/internal/ratelimit"
	"github.com/dracula-tv/media-backend/internal/repository/postgres"
	"github.com/dracula-tv/media-backend/internal/server"
	"github.com/dracula-tv/media-backend/internal/service"
	storage "github.com/dracula-tv/media-backend/internal/storage/minio"
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
	logger := logger.New(cfg.LogLevel).With("service", "account")

	if cfg.JWT.Secret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	avatars, err := storage.NewClient(ctx, minioClient, storage.Options{
		Bucket:         cfg.Storage.Bucket,
		UploadExpiry:   cfg.Storage.UploadExpiry,
		DownloadExpiry: cfg.Storage.DownloadExpiry,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	var limiter model.AttemptLimiter = ratelimit.Noop{}
	if cfg.Redis.URL != "" {
		redisClient, err := ratelimit.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			logger.Fatal("failed to connect to redis", "error", err)
		}
		defer redisClient.Close()
		limiter = ratelimit.NewRedis(redisClient, cfg.Redis.MaxAttempts, cfg.Redis.Window)
	} else {
		logger.Warn("REDIS_URL is not set, password change attempts are not limited")
	}

	hasher := password.NewHasher(password.Params{
		N:       cfg.Scrypt.N,
		R:       cfg.Scrypt.R,
		P:       cfg.Scrypt.P,
		KeyLen:  cfg.Scrypt.KeyLen,
		SaltLen: cfg.Scrypt.SaltLen,
	})

	accountService := service.NewAccount(
		postgres.NewUserRepository(db.DB),
		postgres.NewCredentialRepository(db.DB),
		avatars,
		limiter,
		hasher,
		logger,
	)

	gin.SetMode(gin.ReleaseMode)
	r := router.New(token.NewJWT(cfg.JWT.Secret), httpctx.NewManager(), cfg.CORS.AllowedOrigins, logger)
	r.SetHealthCheck(db.Ping)
	httpServer := httpserver.NewHTTPServer(
		r.Account(accountService),
		cfg.HTTP.ListenAddr(":8001"),
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
