package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/varun-k1411/gipl-quality-alert/config"
	"github.com/varun-k1411/gipl-quality-alert/internal/api/handler"
	"github.com/varun-k1411/gipl-quality-alert/internal/api/router"
	"github.com/varun-k1411/gipl-quality-alert/internal/render"
	"github.com/varun-k1411/gipl-quality-alert/internal/repository"
	"github.com/varun-k1411/gipl-quality-alert/internal/service"
	"github.com/varun-k1411/gipl-quality-alert/pkg/database"
	applogger "github.com/varun-k1411/gipl-quality-alert/pkg/logger"
)

func main() {
	// 1. load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}

	// 2. initialize logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting up",
		zap.Int("port", cfg.Server.Port),
		zap.String("store_backend", cfg.Store.Backend),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. open the NC register store
	var db *gorm.DB
	var ncRepo repository.NCRecordRepository
	switch cfg.Store.Backend {
	case "postgres":
		db, err = database.NewDB(&cfg.Database, logger)
		if err != nil {
			logger.Fatal("database connect failed", zap.Error(err))
		}
		sqlDB, err := db.DB()
		if err != nil {
			logger.Fatal("get underlying sql.DB failed", zap.Error(err))
		}
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			logger.Fatal("database migration failed", zap.Error(err))
		}
		ncRepo = repository.NewGormNCRecordRepo(db)
		logger.Info("postgres register ready")
	default:
		ncRepo, err = repository.NewCSVNCRecordRepo(cfg.Store.CSVPath)
		if err != nil {
			logger.Fatal("open csv register failed", zap.Error(err))
		}
		logger.Info("csv register ready", zap.String("path", cfg.Store.CSVPath))
	}

	// 4. load master data and open the image buckets
	masters, err := repository.LoadMasters(cfg.Data.MasterDir)
	if err != nil {
		logger.Fatal("load master data failed", zap.Error(err))
	}
	images, err := repository.NewFSImageStore(&cfg.Data)
	if err != nil {
		logger.Fatal("prepare image directories failed", zap.Error(err))
	}

	// 5. renderer with fonts and logo
	renderer := render.NewRenderer(&cfg.Alert, &cfg.Render, logger)

	// 6. dependency injection: Repository -> Service -> Handler
	repo := &repository.Repository{
		NCRecord: ncRepo,
		Master:   masters,
		Images:   images,
	}
	svc := service.NewService(cfg, repo, renderer, logger)
	h := handler.NewHandler(svc)

	// 7. routes
	engine := router.Setup(cfg, h, logger)

	// 8. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 9. wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	logger.Info("server stopped")
}
