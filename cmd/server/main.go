package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"prom_map/internal/config"
	"prom_map/internal/logger"
	"prom_map/internal/routes"
)

func main() {
	cfg := config.Load()

	// Initialize structured logging to file
	accessLog := logger.Setup(cfg.Log)
	gin.SetMode(cfg.HTTP.GinMode)

	if err := config.InitDB(cfg.Database); err != nil {
		logrus.WithError(err).Fatal("database initialization failed")
	}

	r := routes.SetupRouter(routes.Options{
		DB:          config.GetDB(),
		BasePath:    cfg.HTTP.BasePath,
		AdminSecret: cfg.HTTP.AdminSecret,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		AccessLog:   accessLog,
	})
	if cfg.HTTP.AdminSecret == "" {
		logrus.Warn("ADMIN_JWT_SECRET is empty: /admin routes are unauthenticated")
	}

	srv := &http.Server{Addr: cfg.HTTP.Addr, Handler: r}
	go func() {
		logrus.Infof("server running at %s", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
	logrus.Info("server stopped")
}
