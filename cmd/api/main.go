package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"customer-api/internal/core/auth"
	"customer-api/internal/core/cache"
	"customer-api/internal/core/config"
	"customer-api/internal/core/database"
	"customer-api/internal/core/logger"
	"customer-api/internal/core/server"
	"customer-api/internal/domain"
	"customer-api/internal/repo"
	"customer-api/internal/transport/http/handler"
	"customer-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.Build(logger.Options{
		Level:       cfg.Log.Level,
		JSON:        cfg.Log.JSON,
		AddCaller:   true,
		Development: !cfg.Log.JSON,
		Rotate: logger.FileRotate{
			Enable:     cfg.Log.Rotate.Enable,
			Filename:   cfg.Log.Rotate.Filename,
			MaxSizeMB:  cfg.Log.Rotate.MaxSizeMB,
			MaxBackups: cfg.Log.Rotate.MaxBackups,
			MaxAgeDays: cfg.Log.Rotate.MaxAgeDays,
			Compress:   cfg.Log.Rotate.Compress,
		},
	})
	defer cleanup()

	if cfg.JWT.Secret == "" {
		log.Fatal("jwt secret is required (APP_JWT_SECRET)")
	}

	// 数据库（失败直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	// 建表（幂等，无迁移机制）
	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// JWT
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	// 可选 redis 缓存
	var profileCache *cache.Cache
	if cfg.Redis.Addr != "" {
		profileCache = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	userStore := repo.NewUserRepo(db)
	h := handler.NewUserHandler(userStore, jwter, profileCache, log)

	r := router.NewAPIEngine(log, h, jwter, router.Options{
		DebugUserList: cfg.Debug.UserList,
	})
	if cfg.Debug.UserList {
		log.Warn("debug user listing endpoint is ENABLED, do not run this in production")
	}

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("customer api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
	)

	// 异步启动
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("customer api start FAILED", zap.Error(err))
		}
	}()
	log.Info("customer api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("customer api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.New(database.Opts{
		Driver:             cfg.DB.Driver,
		Path:               cfg.DB.Path,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
