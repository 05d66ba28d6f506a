package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"field-service-api/internal/config"
	"field-service-api/internal/handler"
	"field-service-api/internal/repository"
	"field-service-api/internal/service"
	"field-service-api/pkg/telegram"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetServerConfig()
	logrus.Info("Config initialized...")

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true, // SQLite limitation
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	// Foreign key enforcement must be switched on per connection in SQLite.
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		logrus.Infof("Warning: Failed to enable foreign keys: %v", err)
	}

	workerRepo, err := repository.NewGormWorkerRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create worker repository")
	}

	jobRepo, err := repository.NewGormJobRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create job repository")
	}

	settingsRepo, err := repository.NewGormCompanySettingsRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create company settings repository")
	}

	// Availability caching is optional; without Redis every request is a
	// fresh computation, which is still sub-millisecond per worker.
	var cache *service.AvailabilityCache
	if cfg.CacheEnabled {
		cache, err = service.NewAvailabilityCache(
			cfg.RedisAddr,
			cfg.RedisPassword,
			cfg.RedisDB,
			time.Duration(cfg.CacheTTLSeconds)*time.Second,
		)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to connect availability cache")
		}
		logrus.Info("Availability cache enabled")
	}

	availabilityService := service.NewAvailabilityService(
		workerRepo,
		jobRepo,
		settingsRepo,
		cache,
		service.ParseErrorFail,
	)

	workerService := service.NewWorkerService(workerRepo, availabilityService)

	var notifier service.Notifier
	if cfg.TelegramToken != "" {
		client, err := telegram.NewClient(cfg.TelegramToken, cfg.DispatchChatID)
		if err != nil {
			logrus.Fatal("Failed to create Telegram client:", err)
		}
		logrus.Infof("Dispatch notifications authorized on account %s", client.Bot.Self.UserName)
		notifier = client
	}

	jobService := service.NewJobService(jobRepo, workerRepo, availabilityService, notifier)

	router := gin.Default()
	apiHandler := handler.NewHandler(workerService, jobService, availabilityService, settingsRepo)
	apiHandler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logrus.Infof("Server started on %s. Press Ctrl+C to stop.", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal("Server error:", err)
		}
	}()

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Infof("Error shutting down server: %v", err)
	}

	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Server stopped gracefully")
}
