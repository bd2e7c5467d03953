package api

import (
	"context"
	"fmt"
	"time"

	"kanban/internal/app/config"
	"kanban/internal/app/dsn"
	"kanban/internal/app/handler"
	"kanban/internal/app/middleware"
	"kanban/internal/app/redis"
	"kanban/internal/app/repository"
	"kanban/internal/app/storage"
	"kanban/internal/app/token"
	"kanban/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const startupTimeout = 15 * time.Second

// StartServer собирает зависимости и блокируется, пока работает HTTP-сервер.
// Redis и MinIO необязательны: без них недоступны logout и изображения карточек.
func StartServer(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	dsnStr, err := dsn.FromConfig(cfg.Database)
	if err != nil {
		return err
	}
	repo, err := repository.New(cfg.Database.Driver, dsnStr)
	if err != nil {
		return fmt.Errorf("ошибка инициализации репозитория: %w", err)
	}
	defer repo.Close()

	tokens := token.NewService(cfg.JWT.Secret, cfg.JWT.ExpiresIn, cfg.JWT.Issuer)

	var (
		blacklist middleware.Blacklist
		revoker   handler.TokenRevoker
	)
	if cfg.Redis.Host != "" {
		redisClient, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		blacklist, revoker = redisClient, redisClient
	} else {
		logrus.Warn("redis is not configured, token revocation disabled")
	}

	var images handler.ImageStore
	if cfg.MinIO.Endpoint != "" {
		minioClient, err := storage.NewMinIOClient(ctx, cfg.MinIO)
		if err != nil {
			return err
		}
		images = minioClient
	} else {
		logrus.Warn("minio is not configured, card images disabled")
	}

	router, err := NewRouter(cfg)
	if err != nil {
		return err
	}

	authHandler := handler.NewAuthHandler(repo, tokens, revoker)
	apiHandler := handler.NewAPIHandler(repo, images, authHandler)

	app := pkg.NewApp(
		cfg,
		router,
		apiHandler,
		middleware.NewAuthMiddleware(repo, tokens, blacklist),
		middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
	)
	return app.RunApp()
}

// NewRouter без настроенных прокси IP клиента берётся только из адреса соединения,
// иначе лимит на /login обходится подменой X-Forwarded-For
func NewRouter(cfg *config.Config) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(gin.Recovery(), middleware.Logger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	if len(cfg.CORS.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))

	return r, nil
}
