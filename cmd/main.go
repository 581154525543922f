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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-newsroom/config"
	"github.com/oksasatya/go-newsroom/internal/application"
	"github.com/oksasatya/go-newsroom/internal/container"
	"github.com/oksasatya/go-newsroom/internal/infrastructure/search"
	"github.com/oksasatya/go-newsroom/internal/interface/middleware"
	"github.com/oksasatya/go-newsroom/internal/router"
	"github.com/oksasatya/go-newsroom/pkg/helpers"
	"github.com/oksasatya/go-newsroom/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
	logger.Info("server exited properly")
}

// run owns every client it opens, so deferred closes happen on startup errors too.
func run(cfg *config.Config, logger *logrus.Logger) error {
	if cfg.UsingDefaultSecret() {
		logger.Warn("JWT_SECRET not set; tokens are signed with the public fallback secret")
	}

	ctx := context.Background()

	store, closeStore, err := container.OpenStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeStore()

	snap, err := store.Load(ctx)
	switch {
	case err != nil:
		return fmt.Errorf("store unreachable: %w", err)
	case snap.Degraded():
		helpers.LogWarn(logger, "store document could not be loaded; the next write will replace it", snap.Cause,
			logrus.Fields{"backend": store.BackendName(), "status": snap.Status})
	default:
		logger.WithFields(logrus.Fields{
			"backend": store.BackendName(),
			"status":  snap.Status,
			"users":   len(snap.Data.Users),
			"news":    len(snap.Data.News),
		}).Info("store loaded")
	}

	// Elasticsearch (optional)
	es, err := helpers.NewESClient(helpers.ESOptions{
		Addrs:    cfg.ESAddrs(),
		Username: cfg.ElasticsearchUser,
		Password: cfg.ElasticsearchPass,
	})
	if err != nil {
		return fmt.Errorf("init elasticsearch client: %w", err)
	}
	if es != nil {
		idx := search.NewNewsIndex(es, cfg.ESNewsIndex, logger)
		if err := idx.EnsureIndex(ctx); err != nil {
			helpers.LogWarn(logger, "news index not ready; search falls back to a scan", err, nil)
		}
		container.SetNewsIndex(idx)
		n, err := application.NewNewsService(store, helpers.RealClock{}, idx).ReindexAll(ctx)
		if err != nil {
			helpers.LogWarn(logger, "news index backfill incomplete; search falls back to a scan", err,
				logrus.Fields{"indexed": n})
		} else {
			logger.WithField("indexed", n).Info("news index backfilled")
		}
	}

	// RabbitMQ publisher for email jobs (optional)
	if cfg.MailSendEnabled {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			return fmt.Errorf("connect to rabbitmq: %w", err)
		}
		defer pub.Close()
		container.SetPublisher(pub)
	}

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetStore(store)
	container.SetClock(helpers.RealClock{})

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		r.Use(middleware.AccessLog(logger))
	}
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsCfg.AllowOrigins) > 0 {
		r.Use(cors.New(corsCfg))
	}

	reg := router.NewRegistry(r, "/api")
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	serveErr := make(chan error, 1)
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Errorf("server forced to shutdown: %v", err)
	}
	return nil
}
